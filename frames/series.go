package frames

import (
	"fmt"

	"github.com/atomforge/atomforge/structure"
)

// Series is an in-memory Producer: an ordered, appendable sequence of
// snapshots with optional string labels as frame keys. Each access
// returns a fresh copy, so callers can mutate results freely.
//
// Series is not safe for concurrent mutation; concurrent reads are safe
// once appends have stopped.
type Series struct {
	snapshots []*structure.Structure
	labels    map[string]int
}

// NewSeries builds a Series over the given snapshots, copying each.
func NewSeries(snapshots ...*structure.Structure) *Series {
	s := &Series{labels: make(map[string]int)}
	for _, snap := range snapshots {
		s.Append(snap)
	}

	return s
}

// Append copies snap onto the end of the series and returns its frame
// index.
func (s *Series) Append(snap *structure.Structure) int {
	s.snapshots = append(s.snapshots, snap.Copy())

	return len(s.snapshots) - 1
}

// Label registers name as a frame key for frame. Later registrations of
// the same name overwrite earlier ones.
func (s *Series) Label(name string, frame int) {
	s.labels[name] = frame
}

// NumStructures returns the number of snapshots appended so far.
func (s *Series) NumStructures() int { return len(s.snapshots) }

// Structure returns a copy of the snapshot at frame. With wrapAtoms set,
// positions are folded into the primary cell along periodic axes; a
// snapshot whose cell is singular is returned unwrapped (the series is
// treated as non-periodic for that frame).
func (s *Series) Structure(frame int, wrapAtoms bool) (*structure.Structure, error) {
	snap := s.snapshots[frame].Copy()
	if wrapAtoms {
		if err := snap.Wrap(); err != nil {
			return s.snapshots[frame].Copy(), nil
		}
	}

	return snap, nil
}

// TranslateFrame maps a registered string label to its frame index.
// Unknown labels and non-string keys fail with ErrNoTranslation.
func (s *Series) TranslateFrame(key any) (int, error) {
	name, ok := key.(string)
	if !ok {
		return 0, fmt.Errorf("frames: series keys are strings, got %T: %w", key, ErrNoTranslation)
	}
	frame, ok := s.labels[name]
	if !ok {
		return 0, fmt.Errorf("frames: unknown series label %q: %w", name, ErrNoTranslation)
	}

	return frame, nil
}

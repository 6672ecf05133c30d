package frames

import (
	"fmt"
	"iter"

	"github.com/atomforge/atomforge/structure"
)

// Accessor adapts any Producer to the uniform frame-access contract:
// negative-index normalization, bounds checking, key translation, and
// lazy iteration live here once, not in every producer.
//
// An Accessor is stateless beyond its Producer reference; failed calls
// never corrupt it, and repeated calls with valid frames are idempotent
// unless the producer's own state changed in between.
type Accessor struct {
	p Producer
}

// NewAccessor wraps p. A nil Producer yields an Accessor whose
// NumStructures is 0 and whose Get always fails with ErrFrameRange.
func NewAccessor(p Producer) *Accessor {
	return &Accessor{p: p}
}

// NumStructures returns the producer's current frame count (0 for a nil
// producer).
func (a *Accessor) NumStructures() int {
	if a.p == nil {
		return 0
	}

	return a.p.NumStructures()
}

// Get retrieves the structure at frame. Negative frames count from the
// end: effective index = frame + NumStructures(). Returns ErrFrameRange
// (with the requested frame and the valid half-open range in the message)
// when the effective index falls outside [0, NumStructures()).
// Complexity: O(1) plus the producer's per-frame cost.
func (a *Accessor) Get(frame int, opts ...Option) (*structure.Structure, error) {
	cfg := newConfig(opts...)
	n := a.NumStructures()
	idx := frame
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return nil, fmt.Errorf("frames: frame %d out of range [-%d, %d): %w", frame, n, n, ErrFrameRange)
	}

	return a.p.Structure(idx, cfg.wrapAtoms)
}

// GetByKey retrieves a structure by an arbitrary frame key. Integer-typed
// keys route straight to Get; any other key goes through the producer's
// Translator. Returns ErrNoTranslation (naming the key) when the producer
// does not translate keys, and wraps the producer's own translation error
// (still naming the key) when it does but the key is unknown.
func (a *Accessor) GetByKey(key any, opts ...Option) (*structure.Structure, error) {
	switch k := key.(type) {
	case int:
		return a.Get(k, opts...)
	case int8:
		return a.Get(int(k), opts...)
	case int16:
		return a.Get(int(k), opts...)
	case int32:
		return a.Get(int(k), opts...)
	case int64:
		return a.Get(int(k), opts...)
	}
	t, ok := a.p.(Translator)
	if !ok {
		return nil, fmt.Errorf("frames: frame key %v is not an integer and the producer does not translate keys: %w", key, ErrNoTranslation)
	}
	idx, err := t.TranslateFrame(key)
	if err != nil {
		return nil, fmt.Errorf("frames: translate frame key %v: %w", key, err)
	}

	return a.Get(idx, opts...)
}

// Iter returns a lazy, finite, restartable sequence over all frames in
// order 0..NumStructures()-1, each element obtained via Get. Every
// traversal re-reads NumStructures() at its start, so a producer that
// grew or shrank between traversals is reflected. Per-frame producer
// errors are yielded alongside a nil structure; iteration continues
// unless the caller stops.
func (a *Accessor) Iter(opts ...Option) iter.Seq2[*structure.Structure, error] {
	return func(yield func(*structure.Structure, error) bool) {
		n := a.NumStructures()
		for i := 0; i < n; i++ {
			if !yield(a.Get(i, opts...)) {
				return
			}
		}
	}
}

package frames

import (
	"errors"

	"github.com/atomforge/atomforge/structure"
)

// Sentinel errors for frame access.
var (
	// ErrFrameRange indicates a frame index outside [0, NumStructures())
	// after negative-index normalization.
	ErrFrameRange = errors.New("frames: frame out of range")

	// ErrNoTranslation indicates a non-integer frame key was given and the
	// producer does not implement Translator, or the key is unknown to it.
	ErrNoTranslation = errors.New("frames: frame key not translatable")
)

// Producer is implemented by anything holding or computing one or more
// structures: a single-snapshot holder, a relaxation trajectory, an
// on-the-fly generator.
//
// NumStructures may return 0, e.g. for a computation that has not run
// yet. Structure is called with a frame already normalized to
// [0, NumStructures()) and need not re-check bounds. Producers that are
// non-periodic or do not implement wrapping ignore wrapAtoms silently.
type Producer interface {
	// NumStructures returns the number of frames currently available.
	NumStructures() int

	// Structure computes or retrieves frame's snapshot. wrapAtoms requests
	// that positions be folded into the primary periodic cell.
	Structure(frame int, wrapAtoms bool) (*structure.Structure, error)
}

// Translator is optionally implemented by Producers that map non-integer
// frame keys to integer indices. TranslateFrame returns an error for
// unknown keys; wrapping ErrNoTranslation lets callers branch uniformly.
type Translator interface {
	TranslateFrame(key any) (int, error)
}

// Option configures a single access or iteration call.
type Option func(*config)

type config struct {
	wrapAtoms bool
}

func newConfig(opts ...Option) config {
	cfg := config{wrapAtoms: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWrapAtoms controls whether returned positions are folded into the
// primary periodic cell. Default: true. Producers without periodic
// wrapping ignore the flag.
func WithWrapAtoms(wrap bool) Option {
	return func(c *config) { c.wrapAtoms = wrap }
}

package surface

import (
	"errors"

	"github.com/atomforge/atomforge/structure"
)

// ErrUnknownSurfaceType indicates a surface type with no registered
// generator.
var ErrUnknownSurfaceType = errors.New("surface: unknown surface type")

// Options configures a single surface build. The zero value of a field
// means "generator default" where one exists (C, Thickness, Kind);
// Size and LatticeConstant have no defaults and are validated by the
// generators.
type Options struct {
	// Size is the (nx, ny, nz) repeat: lateral repeats and layer count.
	Size [3]int

	// Vacuum is the empty height added to the cell, in the same length
	// unit as the lattice constant.
	Vacuum float64

	// Center splits the vacuum evenly above and below the slab instead of
	// stacking it all above the top layer.
	Center bool

	// PBC is applied to the finished slab.
	PBC structure.PBC

	// LatticeConstant is the cubic or basal lattice constant a.
	LatticeConstant float64

	// C is the hexagonal height for hcp surfaces; zero selects the ideal
	// ratio.
	C float64

	// Thickness is the X-X separation for mx2 surfaces; zero selects the
	// generator default.
	Thickness float64

	// Kind is the mx2 polytype, "2H" (default) or "1T".
	Kind string

	// Root selects the √root surface cell for the *_root surface types.
	Root int

	// Orthogonal doubles hexagonal surface cells into their rectangular
	// equivalents where the family supports it.
	Orthogonal bool
}

// DefaultOptions returns the baseline: a 1×1×1 slab with 1.0 of vacuum
// stacked above the top layer and full periodicity.
func DefaultOptions() Options {
	return Options{
		Size:   [3]int{1, 1, 1},
		Vacuum: 1.0,
		PBC:    structure.AllPeriodic,
	}
}

// GenParams is the resolved parameter set handed to a Generator: the
// caller's Options plus the species symbol, with Centered telling the
// generator whether to center its slab in the vacuum.
type GenParams struct {
	Symbol          string
	Size            [3]int
	LatticeConstant float64
	C               float64
	Thickness       float64
	Kind            string
	Root            int
	Orthogonal      bool
	Vacuum          float64
	Centered        bool
}

// Generator builds one named surface family. A generator returns the
// slab bottom-anchored and vacuum-free unless Centered is set, in which
// case it centers the slab itself.
type Generator func(GenParams) (*structure.Structure, error)

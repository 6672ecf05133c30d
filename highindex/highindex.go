package highindex

import (
	"errors"
	"fmt"
	"sort"

	"github.com/atomforge/atomforge/lattice"
	"github.com/atomforge/atomforge/structure"
	"github.com/atomforge/atomforge/surface"
)

// Sentinel errors for microfacet composition.
var (
	// ErrStepNotInTerrace indicates no symmetry equivalent of the step
	// orientation lies in the terrace plane.
	ErrStepNotInTerrace = errors.New("highindex: step orientation has no equivalent in the terrace plane")

	// ErrKinkNotInTerrace indicates no symmetry equivalent of the kink
	// orientation lies in the terrace plane.
	ErrKinkNotInTerrace = errors.New("highindex: kink orientation has no equivalent in the terrace plane")

	// ErrDegenerate indicates a zero orientation vector or a facet
	// combination whose composed Miller index vanishes.
	ErrDegenerate = errors.New("highindex: degenerate facet combination")
)

// Params describes a high-index surface in microfacet notation.
type Params struct {
	// Element is the species symbol.
	Element string

	// Bravais is the crystal family; must be cubic.
	Bravais lattice.Bravais

	// LatticeConstant is the cubic lattice constant a.
	LatticeConstant float64

	// Terrace, Step and Kink are the facet orientations. StepDown is the
	// downward step direction closing the facet circuit. All four must be
	// non-zero.
	Terrace, Step, Kink, StepDown [3]int

	// LengthTerrace, LengthStep and LengthKink are the facet lengths in
	// atomic rows. Zero selects 3, 3 and 1 respectively.
	LengthTerrace, LengthStep, LengthKink int

	// Layers is the slab thickness for Build, in repeats of the re-based
	// surface cell. Zero selects 60.
	Layers int

	// Vacuum is the empty height stacked above the slab. Zero selects 10.
	Vacuum float64
}

func (p Params) withDefaults() Params {
	if p.LengthTerrace == 0 {
		p.LengthTerrace = 3
	}
	if p.LengthStep == 0 {
		p.LengthStep = 3
	}
	if p.LengthKink == 0 {
		p.LengthKink = 1
	}
	if p.Layers == 0 {
		p.Layers = 60
	}
	if p.Vacuum == 0 {
		p.Vacuum = 10
	}

	return p
}

func dotI(a, b [3]int) int {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func crossI(a, b [3]int) [3]int {
	return [3]int{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func scaleI(c int, v [3]int) [3]int {
	return [3]int{c * v[0], c * v[1], c * v[2]}
}

func addI(a, b [3]int) [3]int {
	return [3]int{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// equivalents returns the distinct images of v under the full cubic
// point group, sorted lexicographically. The fixed order makes every
// "first matching equivalent" selection below reproducible.
func equivalents(v [3]int) [][3]int {
	seen := make(map[[3]int]bool)
	for _, m := range lattice.CubicRotations() {
		seen[lattice.RotateVec(m, v)] = true
	}
	out := make([][3]int, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for k := 0; k < 3; k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}

		return false
	})

	return out
}

func validate(p Params) error {
	if !p.Bravais.Cubic() {
		return fmt.Errorf("highindex: bravais lattice %q: %w", p.Bravais, lattice.ErrNotCubic)
	}
	for _, v := range [][3]int{p.Terrace, p.Step, p.Kink, p.StepDown} {
		if v == [3]int{} {
			return fmt.Errorf("highindex: zero orientation vector: %w", ErrDegenerate)
		}
	}
	if p.LengthTerrace < 0 || p.LengthStep < 0 || p.LengthKink < 0 {
		return fmt.Errorf("highindex: facet lengths (%d,%d,%d): %w",
			p.LengthTerrace, p.LengthStep, p.LengthKink, lattice.ErrBadSize)
	}

	return nil
}

// Info composes the effective Miller index of the high-index surface
// described by p, along with the kink and step orientations actually
// used: the first symmetry equivalents compatible with the terrace
// plane. The result depends only on p, never on prior calls.
func Info(p Params) (hkl, kink, step [3]int, err error) {
	p = p.withDefaults()
	if err := validate(p); err != nil {
		return [3]int{}, [3]int{}, [3]int{}, err
	}

	var finKink [3]int
	found := false
	for _, e := range equivalents(p.Kink) {
		if dotI(e, p.Terrace) == 0 {
			finKink = e
			found = true
			break
		}
	}
	if !found {
		return [3]int{}, [3]int{}, [3]int{}, fmt.Errorf(
			"highindex: kink %v on terrace %v: %w", p.Kink, p.Terrace, ErrKinkNotInTerrace)
	}

	stepEquivalents := equivalents(p.Step)
	inTerrace := false
	for _, e := range stepEquivalents {
		if dotI(e, p.Terrace) == 0 {
			inTerrace = true
			break
		}
	}
	if !inTerrace {
		return [3]int{}, [3]int{}, [3]int{}, fmt.Errorf(
			"highindex: step %v on terrace %v: %w", p.Step, p.Terrace, ErrStepNotInTerrace)
	}

	// The step is picked from the full equivalent list by handedness
	// against the chosen kink, not from the in-terrace subset.
	var finStep [3]int
	found = false
	for _, e := range stepEquivalents {
		if dotI(crossI(finKink, e), p.Terrace) > 0 {
			finStep = e
			found = true
			break
		}
	}
	if !found {
		return [3]int{}, [3]int{}, [3]int{}, fmt.Errorf(
			"highindex: step %v against kink %v: %w", p.Step, finKink, ErrDegenerate)
	}

	vec1 := addI(scaleI(p.LengthStep, finStep), scaleI(p.LengthKink, finKink))
	vec2 := addI(scaleI(p.LengthTerrace, finKink), p.StepDown)
	hi := crossI(p.Terrace, crossI(vec1, vec2))
	if hi == [3]int{} {
		return [3]int{}, [3]int{}, [3]int{}, fmt.Errorf(
			"highindex: facets of terrace %v compose to the zero index: %w", p.Terrace, ErrDegenerate)
	}
	g := gcd(gcd(hi[0], hi[1]), hi[2])
	hi = [3]int{hi[0] / g, hi[1] / g, hi[2] / g}

	return hi, finKink, finStep, nil
}

// Build composes the Miller index via Info and realizes it as a slab:
// p.Layers repeats of the re-based surface cell, bottom-anchored, with
// p.Vacuum stacked above the top layer.
func Build(p Params) (*structure.Structure, error) {
	p = p.withDefaults()
	hkl, _, _, err := Info(p)
	if err != nil {
		return nil, err
	}
	bulk, err := lattice.Cubic(p.Element, p.Bravais, p.LatticeConstant)
	if err != nil {
		return nil, err
	}

	opts := surface.DefaultOptions()
	opts.Vacuum = p.Vacuum

	return surface.SurfaceHKL(bulk, hkl, p.Layers, &opts)
}

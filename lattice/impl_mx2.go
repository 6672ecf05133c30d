package lattice

import (
	"fmt"
	"math"

	"github.com/atomforge/atomforge/structure"
)

// parseMX2 splits a transition-metal dichalcogenide formula like "MoS2"
// into the metal and chalcogen symbols. The formula must be exactly two
// element symbols with a trailing 2.
func parseMX2(formula string) (string, string, error) {
	bad := func() (string, string, error) {
		return "", "", fmt.Errorf("lattice: formula %q: %w", formula, ErrBadFormula)
	}

	element := func(s string) (string, string, bool) {
		if len(s) == 0 || s[0] < 'A' || s[0] > 'Z' {
			return "", "", false
		}
		n := 1
		if len(s) > 1 && s[1] >= 'a' && s[1] <= 'z' {
			n = 2
		}

		return s[:n], s[n:], true
	}

	m, rest, ok := element(formula)
	if !ok {
		return bad()
	}
	x, rest, ok := element(rest)
	if !ok || rest != "2" {
		return bad()
	}

	return m, x, nil
}

func mx2Spec(m, x string, a, thickness float64, kind string) (slabSpec, error) {
	lowerX := layerSite{fx: 1.0 / 3, fy: 1.0 / 3, species: 1}
	if kind == "1T" {
		lowerX = layerSite{fx: 2.0 / 3, fy: 2.0 / 3, species: 1}
	} else if kind != "2H" {
		return slabSpec{}, fmt.Errorf("lattice: mx2 polytype %q: %w", kind, ErrBadKind)
	}

	return slabSpec{
		cellA:   [2]float64{a, 0},
		cellB:   [2]float64{a / 2, a * math.Sqrt(3) / 2},
		symbols: []string{m, x},
		layers: []slabLayer{
			{dz: thickness, sites: []layerSite{lowerX}},
			{dz: thickness / 2, sites: []layerSite{{fx: 0, fy: 0, species: 0}}},
			{dz: thickness / 2, sites: []layerSite{{fx: 1.0 / 3, fy: 1.0 / 3, species: 1}}},
		},
	}, nil
}

// Mx2 builds a transition-metal dichalcogenide slab from a formula like
// "MoS2": X-M-X trilayers on a hexagonal cell of side a, size[2] counting
// trilayers. Zero thickness defaults to 3.19 and an empty kind to "2H";
// "1T" selects the octahedral polytype.
func Mx2(formula string, size [3]int, a, thickness float64, kind string) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}
	m, x, err := parseMX2(formula)
	if err != nil {
		return nil, err
	}
	if thickness == 0 {
		thickness = 3.19
	}
	if kind == "" {
		kind = "2H"
	}
	spec, err := mx2Spec(m, x, a, thickness, kind)
	if err != nil {
		return nil, err
	}

	return stackSlab(spec, size[0], size[1], 3*size[2])
}

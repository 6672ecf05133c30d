package lattice

import (
	"fmt"
	"math"

	"github.com/atomforge/atomforge/structure"
)

// idealC returns c, substituting the ideal ratio a·√(8/3) for zero.
func idealC(a, c float64) (float64, error) {
	if c < 0 {
		return 0, fmt.Errorf("lattice: lattice constant c=%v: %w", c, ErrLatticeConstant)
	}
	if c == 0 {
		c = a * math.Sqrt(8.0/3.0)
	}

	return c, nil
}

func hcp0001Spec(symbol string, a, c float64) slabSpec {
	return slabSpec{
		cellA:   [2]float64{a, 0},
		cellB:   [2]float64{a / 2, a * math.Sqrt(3) / 2},
		symbols: []string{symbol},
		layers: []slabLayer{
			{dz: c / 2, sites: []layerSite{{fx: 0, fy: 0}}},
			{dz: c / 2, sites: []layerSite{{fx: 2.0 / 3, fy: 2.0 / 3}}},
		},
	}
}

// hcp(10-10): a rectangular a × c cell, cycling four layers with
// alternating short and long gaps along the surface normal.
func hcp10m10Spec(symbol string, a, c float64) slabSpec {
	short := a / (2 * math.Sqrt(3))
	long := a / math.Sqrt(3)

	return slabSpec{
		cellA:   [2]float64{a, 0},
		cellB:   [2]float64{0, c},
		symbols: []string{symbol},
		layers: []slabLayer{
			{dz: short, sites: []layerSite{{fx: 0, fy: 0}}},
			{dz: long, sites: []layerSite{{fx: 0, fy: 0.5}}},
			{dz: short, sites: []layerSite{{fx: 0.5, fy: 0}}},
			{dz: long, sites: []layerSite{{fx: 0.5, fy: 0.5}}},
		},
	}
}

// Hcp0001 builds an hcp(0001) slab: a hexagonal cell of side a in AB
// stacking with spacing c/2. A zero c selects the ideal ratio. With
// orthogonal set the cell is doubled into its rectangular equivalent.
func Hcp0001(symbol string, size [3]int, a, c float64, orthogonal bool) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}
	c, err := idealC(a, c)
	if err != nil {
		return nil, err
	}
	spec := hcp0001Spec(symbol, a, c)
	if orthogonal {
		spec = orthogonalHex(spec)
	}

	return stackSlab(spec, size[0], size[1], size[2])
}

// Hcp10m10 builds an hcp(10-10) slab in its rectangular a × c cell.
// A zero c selects the ideal ratio.
func Hcp10m10(symbol string, size [3]int, a, c float64) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}
	c, err := idealC(a, c)
	if err != nil {
		return nil, err
	}

	return stackSlab(hcp10m10Spec(symbol, a, c), size[0], size[1], size[2])
}

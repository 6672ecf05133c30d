package lattice

import (
	"math"

	"github.com/atomforge/atomforge/structure"
)

func fcc100Spec(symbol string, a float64) slabSpec {
	d := a / math.Sqrt2

	return slabSpec{
		cellA:   [2]float64{d, 0},
		cellB:   [2]float64{0, d},
		symbols: []string{symbol},
		layers: []slabLayer{
			{dz: a / 2, sites: []layerSite{{fx: 0, fy: 0}}},
			{dz: a / 2, sites: []layerSite{{fx: 0.5, fy: 0.5}}},
		},
	}
}

func fcc110Spec(symbol string, a float64) slabSpec {
	d := a / math.Sqrt2

	return slabSpec{
		cellA:   [2]float64{d, 0},
		cellB:   [2]float64{0, a},
		symbols: []string{symbol},
		layers: []slabLayer{
			{dz: a * math.Sqrt2 / 4, sites: []layerSite{{fx: 0, fy: 0}}},
			{dz: a * math.Sqrt2 / 4, sites: []layerSite{{fx: 0.5, fy: 0.5}}},
		},
	}
}

func fcc111Spec(symbol string, a float64) slabSpec {
	d := a / math.Sqrt2

	return slabSpec{
		cellA:   [2]float64{d, 0},
		cellB:   [2]float64{d / 2, d * math.Sqrt(3) / 2},
		symbols: []string{symbol},
		layers: []slabLayer{
			{dz: a / math.Sqrt(3), sites: []layerSite{{fx: 0, fy: 0}}},
			{dz: a / math.Sqrt(3), sites: []layerSite{{fx: 2.0 / 3, fy: 2.0 / 3}}},
			{dz: a / math.Sqrt(3), sites: []layerSite{{fx: 1.0 / 3, fy: 1.0 / 3}}},
		},
	}
}

// Fcc100 builds an fcc(100) slab: size[2] layers of a square d × d cell
// (d = a/√2) in AB stacking with spacing a/2.
func Fcc100(symbol string, size [3]int, a float64) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}

	return stackSlab(fcc100Spec(symbol, a), size[0], size[1], size[2])
}

// Fcc110 builds an fcc(110) slab: a rectangular d × a cell in AB
// stacking with spacing a·√2/4.
func Fcc110(symbol string, size [3]int, a float64) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}

	return stackSlab(fcc110Spec(symbol, a), size[0], size[1], size[2])
}

// Fcc111 builds an fcc(111) slab: a hexagonal cell of side a/√2 in ABC
// stacking with spacing a/√3. With orthogonal set the cell is doubled
// into its rectangular equivalent.
func Fcc111(symbol string, size [3]int, a float64, orthogonal bool) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}
	spec := fcc111Spec(symbol, a)
	if orthogonal {
		spec = orthogonalHex(spec)
	}

	return stackSlab(spec, size[0], size[1], size[2])
}

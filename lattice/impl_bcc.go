package lattice

import (
	"math"

	"github.com/atomforge/atomforge/structure"
)

func bcc100Spec(symbol string, a float64) slabSpec {
	return slabSpec{
		cellA:   [2]float64{a, 0},
		cellB:   [2]float64{0, a},
		symbols: []string{symbol},
		layers: []slabLayer{
			{dz: a / 2, sites: []layerSite{{fx: 0, fy: 0}}},
			{dz: a / 2, sites: []layerSite{{fx: 0.5, fy: 0.5}}},
		},
	}
}

// bcc(110) in the rectangular a × a·√2 cell: each layer carries the
// centered pair, the next layer sits shifted by half a cell edge.
func bcc110Spec(symbol string, a float64) slabSpec {
	return slabSpec{
		cellA:   [2]float64{a, 0},
		cellB:   [2]float64{0, a * math.Sqrt2},
		symbols: []string{symbol},
		layers: []slabLayer{
			{dz: a / math.Sqrt2, sites: []layerSite{{fx: 0, fy: 0}, {fx: 0.5, fy: 0.5}}},
			{dz: a / math.Sqrt2, sites: []layerSite{{fx: 0.5, fy: 0}, {fx: 0, fy: 0.5}}},
		},
	}
}

func bcc111Spec(symbol string, a float64) slabSpec {
	d := a * math.Sqrt2

	return slabSpec{
		cellA:   [2]float64{d, 0},
		cellB:   [2]float64{d / 2, d * math.Sqrt(3) / 2},
		symbols: []string{symbol},
		layers: []slabLayer{
			{dz: a * math.Sqrt(3) / 6, sites: []layerSite{{fx: 0, fy: 0}}},
			{dz: a * math.Sqrt(3) / 6, sites: []layerSite{{fx: 2.0 / 3, fy: 2.0 / 3}}},
			{dz: a * math.Sqrt(3) / 6, sites: []layerSite{{fx: 1.0 / 3, fy: 1.0 / 3}}},
		},
	}
}

// Bcc100 builds a bcc(100) slab: an a × a cell in AB stacking with
// spacing a/2.
func Bcc100(symbol string, size [3]int, a float64) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}

	return stackSlab(bcc100Spec(symbol, a), size[0], size[1], size[2])
}

// Bcc110 builds a bcc(110) slab in its rectangular a × a·√2 cell with
// two sites per layer and spacing a/√2.
func Bcc110(symbol string, size [3]int, a float64) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}

	return stackSlab(bcc110Spec(symbol, a), size[0], size[1], size[2])
}

// Bcc111 builds a bcc(111) slab: a hexagonal cell of side a·√2 in ABC
// stacking with spacing a·√3/6. With orthogonal set the cell is doubled
// into its rectangular equivalent.
func Bcc111(symbol string, size [3]int, a float64, orthogonal bool) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}
	spec := bcc111Spec(symbol, a)
	if orthogonal {
		spec = orthogonalHex(spec)
	}

	return stackSlab(spec, size[0], size[1], size[2])
}

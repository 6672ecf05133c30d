package lattice

import (
	"math"

	"github.com/atomforge/atomforge/structure"
)

func diamond100Spec(symbol string, a float64) slabSpec {
	d := a / math.Sqrt2

	return slabSpec{
		cellA:   [2]float64{d, 0},
		cellB:   [2]float64{0, d},
		symbols: []string{symbol},
		layers: []slabLayer{
			{dz: a / 4, sites: []layerSite{{fx: 0, fy: 0}}},
			{dz: a / 4, sites: []layerSite{{fx: 0.5, fy: 0}}},
			{dz: a / 4, sites: []layerSite{{fx: 0.5, fy: 0.5}}},
			{dz: a / 4, sites: []layerSite{{fx: 0, fy: 0.5}}},
		},
	}
}

// diamond(111) stacks bilayers: a short a·√3/12 gap inside each bilayer,
// a 3× longer gap between bilayers, cycling through the three hexagonal
// registries.
func diamond111Spec(symbol string, a float64) slabSpec {
	d := a / math.Sqrt2
	u := a * math.Sqrt(3) / 12

	return slabSpec{
		cellA:   [2]float64{d, 0},
		cellB:   [2]float64{d / 2, d * math.Sqrt(3) / 2},
		symbols: []string{symbol},
		layers: []slabLayer{
			{dz: u, sites: []layerSite{{fx: 0, fy: 0}}},
			{dz: 3 * u, sites: []layerSite{{fx: 0, fy: 0}}},
			{dz: u, sites: []layerSite{{fx: 2.0 / 3, fy: 2.0 / 3}}},
			{dz: 3 * u, sites: []layerSite{{fx: 2.0 / 3, fy: 2.0 / 3}}},
			{dz: u, sites: []layerSite{{fx: 1.0 / 3, fy: 1.0 / 3}}},
			{dz: 3 * u, sites: []layerSite{{fx: 1.0 / 3, fy: 1.0 / 3}}},
		},
	}
}

// Diamond100 builds a diamond(100) slab: a square d × d cell (d = a/√2)
// cycling four registries with spacing a/4.
func Diamond100(symbol string, size [3]int, a float64) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}

	return stackSlab(diamond100Spec(symbol, a), size[0], size[1], size[2])
}

// Diamond111 builds a diamond(111) slab of hexagonal bilayers; size[2]
// counts individual layers, two per bilayer.
func Diamond111(symbol string, size [3]int, a float64) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}

	return stackSlab(diamond111Spec(symbol, a), size[0], size[1], size[2])
}

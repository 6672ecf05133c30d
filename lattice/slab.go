package lattice

import (
	"fmt"
	"math"

	"github.com/atomforge/atomforge/structure"
)

// layerSite is one lateral site of a layer, in fractional coordinates of
// the 2D surface cell. species indexes slabSpec.symbols.
type layerSite struct {
	fx, fy  float64
	species int
}

// slabLayer is one layer of the stacking cycle. dz is the vertical gap
// between this layer and the one below it; for the cycle's first layer
// dz is the closing gap to the previous cycle.
type slabLayer struct {
	dz    float64
	sites []layerSite
}

// slabSpec is a closed-form slab family: a 2D surface cell (cellA,
// cellB), a stacking cycle of layers, and the species table.
type slabSpec struct {
	cellA, cellB [2]float64
	layers       []slabLayer
	symbols      []string
}

// stackSlab realizes a slabSpec as a bottom-anchored raw slab: nz layers
// stacked from z = 0, then repeated nx × ny laterally. The cell's third
// vector closes the stacking cycle, so the raw slab tiles along z.
func stackSlab(spec slabSpec, nx, ny, nz int) (*structure.Structure, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("lattice: size (%d,%d,%d): %w", nx, ny, nz, ErrBadSize)
	}

	var symbols []string
	var positions [][3]float64
	period := len(spec.layers)
	z := 0.0
	for k := 0; k < nz; k++ {
		layer := spec.layers[k%period]
		if k > 0 {
			z += layer.dz
		}
		for _, site := range layer.sites {
			symbols = append(symbols, spec.symbols[site.species])
			positions = append(positions, [3]float64{
				site.fx*spec.cellA[0] + site.fy*spec.cellB[0],
				site.fx*spec.cellA[1] + site.fy*spec.cellB[1],
				z,
			})
		}
	}
	cellZ := z + spec.layers[nz%period].dz
	cell := structure.Cell{
		{spec.cellA[0], spec.cellA[1], 0},
		{spec.cellB[0], spec.cellB[1], 0},
		{0, 0, cellZ},
	}

	column, err := structure.New(symbols, positions, cell, structure.AllPeriodic)
	if err != nil {
		return nil, err
	}

	return column.Repeat(nx, ny, 1)
}

// orthogonalHex converts a 60° hexagonal spec (cellA = (d, 0),
// cellB = (d/2, d·√3/2)) into the doubled orthogonal cell
// (d, 0) × (0, d·√3), emitting two sites per hexagonal site.
func orthogonalHex(spec slabSpec) slabSpec {
	out := spec
	d := spec.cellA[0]
	out.cellA = [2]float64{d, 0}
	out.cellB = [2]float64{0, d * math.Sqrt(3)}
	out.layers = make([]slabLayer, len(spec.layers))
	for i, layer := range spec.layers {
		sites := make([]layerSite, 0, 2*len(layer.sites))
		for _, site := range layer.sites {
			fx := wrapFrac(site.fx + site.fy/2)
			fy := wrapFrac(site.fy / 2)
			sites = append(sites,
				layerSite{fx: fx, fy: fy, species: site.species},
				layerSite{fx: wrapFrac(fx + 0.5), fy: wrapFrac(fy + 0.5), species: site.species},
			)
		}
		out.layers[i] = slabLayer{dz: layer.dz, sites: sites}
	}

	return out
}

func wrapFrac(f float64) float64 {
	f -= math.Floor(f + 1e-10)
	if f < 0 {
		f = 0
	}

	return f
}

// CenterVacuum pads s with vacuum on both sides along z and centers the
// atoms: the cell's third vector becomes (0, 0, thickness + 2·vacuum)
// and every position shifts so the lowest site sits at z = vacuum.
func CenterVacuum(s *structure.Structure, vacuum float64) {
	minZ, maxZ := s.MinZ(), s.MaxZ()
	cell := s.Cell()
	cell[2] = [3]float64{0, 0, maxZ - minZ + 2*vacuum}
	s.SetCell(cell)
	s.Translate([3]float64{0, 0, vacuum - minZ})
}

func checkSizeA(size [3]int, a float64) error {
	if size[0] < 1 || size[1] < 1 || size[2] < 1 {
		return fmt.Errorf("lattice: size (%d,%d,%d): %w", size[0], size[1], size[2], ErrBadSize)
	}
	if a <= 0 {
		return fmt.Errorf("lattice: lattice constant %v: %w", a, ErrLatticeConstant)
	}

	return nil
}

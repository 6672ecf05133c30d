package surface

import (
	"fmt"

	"github.com/atomforge/atomforge/lattice"
	"github.com/atomforge/atomforge/structure"
)

// family adapts a raw slab constructor into a Generator: build, then
// center in the vacuum when asked.
func family(build func(GenParams) (*structure.Structure, error)) Generator {
	return func(p GenParams) (*structure.Structure, error) {
		slab, err := build(p)
		if err != nil {
			return nil, err
		}
		if p.Centered {
			lattice.CenterVacuum(slab, p.Vacuum)
		}

		return slab, nil
	}
}

// fcc211Slab goes through the generic Miller-index engine: size[2]
// layers of the re-based (211) cell, repeated laterally.
func fcc211Slab(p GenParams) (*structure.Structure, error) {
	if p.Size[0] < 1 || p.Size[1] < 1 {
		return nil, fmt.Errorf("surface: size (%d,%d,%d): %w", p.Size[0], p.Size[1], p.Size[2], lattice.ErrBadSize)
	}
	bulk, err := lattice.Cubic(p.Symbol, lattice.FCC, p.LatticeConstant)
	if err != nil {
		return nil, err
	}
	slab, err := lattice.SurfaceHKL(bulk, [3]int{2, 1, 1}, p.Size[2])
	if err != nil {
		return nil, err
	}

	return slab.Repeat(p.Size[0], p.Size[1], 1)
}

func defaultGenerators() map[string]Generator {
	return map[string]Generator{
		"fcc100": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Fcc100(p.Symbol, p.Size, p.LatticeConstant)
		}),
		"fcc110": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Fcc110(p.Symbol, p.Size, p.LatticeConstant)
		}),
		"fcc111": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Fcc111(p.Symbol, p.Size, p.LatticeConstant, p.Orthogonal)
		}),
		"fcc211": family(fcc211Slab),
		"bcc100": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Bcc100(p.Symbol, p.Size, p.LatticeConstant)
		}),
		"bcc110": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Bcc110(p.Symbol, p.Size, p.LatticeConstant)
		}),
		"bcc111": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Bcc111(p.Symbol, p.Size, p.LatticeConstant, p.Orthogonal)
		}),
		"diamond100": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Diamond100(p.Symbol, p.Size, p.LatticeConstant)
		}),
		"diamond111": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Diamond111(p.Symbol, p.Size, p.LatticeConstant)
		}),
		"hcp0001": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Hcp0001(p.Symbol, p.Size, p.LatticeConstant, p.C, p.Orthogonal)
		}),
		"hcp10m10": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Hcp10m10(p.Symbol, p.Size, p.LatticeConstant, p.C)
		}),
		"mx2": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Mx2(p.Symbol, p.Size, p.LatticeConstant, p.Thickness, p.Kind)
		}),
		"fcc111_root": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Fcc111Root(p.Symbol, p.Size, p.LatticeConstant, p.Root)
		}),
		"bcc111_root": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Bcc111Root(p.Symbol, p.Size, p.LatticeConstant, p.Root)
		}),
		"hcp0001_root": family(func(p GenParams) (*structure.Structure, error) {
			return lattice.Hcp0001Root(p.Symbol, p.Size, p.LatticeConstant, p.C, p.Root)
		}),
	}
}

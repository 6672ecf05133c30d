package lattice

import (
	"fmt"
	"math"

	"github.com/atomforge/atomforge/structure"
)

// Cubic builds the conventional cubic cell of the given family with
// lattice constant a: 1 site for sc, 2 for bcc, 4 for fcc, 8 for diamond.
// Returns ErrNotCubic for hcp and ErrLatticeConstant for a <= 0.
func Cubic(symbol string, b Bravais, a float64) (*structure.Structure, error) {
	if !b.Cubic() {
		return nil, fmt.Errorf("lattice: bravais lattice %q: %w", b, ErrNotCubic)
	}
	if a <= 0 {
		return nil, fmt.Errorf("lattice: lattice constant %v: %w", a, ErrLatticeConstant)
	}

	var frac [][3]float64
	switch b {
	case SC:
		frac = [][3]float64{{0, 0, 0}}
	case FCC:
		frac = [][3]float64{
			{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0},
		}
	case BCC:
		frac = [][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}}
	case Diamond:
		frac = [][3]float64{
			{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0},
			{0.25, 0.25, 0.25}, {0.25, 0.75, 0.75}, {0.75, 0.25, 0.75}, {0.75, 0.75, 0.25},
		}
	}

	symbols := make([]string, len(frac))
	positions := make([][3]float64, len(frac))
	for i, f := range frac {
		symbols[i] = symbol
		positions[i] = [3]float64{f[0] * a, f[1] * a, f[2] * a}
	}
	cell := structure.Cell{{a, 0, 0}, {0, a, 0}, {0, 0, a}}

	return structure.New(symbols, positions, cell, structure.AllPeriodic)
}

// Hexagonal builds the two-site hcp primitive cell with basal constant a
// and height c. A zero c selects the ideal ratio c = a·√(8/3).
// Returns ErrLatticeConstant for a <= 0 or c < 0.
func Hexagonal(symbol string, a, c float64) (*structure.Structure, error) {
	if a <= 0 {
		return nil, fmt.Errorf("lattice: lattice constant %v: %w", a, ErrLatticeConstant)
	}
	if c < 0 {
		return nil, fmt.Errorf("lattice: lattice constant c=%v: %w", c, ErrLatticeConstant)
	}
	if c == 0 {
		c = a * math.Sqrt(8.0/3.0)
	}

	cell := structure.Cell{
		{a, 0, 0},
		{-a / 2, a * math.Sqrt(3) / 2, 0},
		{0, 0, c},
	}
	s, err := structure.New([]string{symbol, symbol}, [][3]float64{{0, 0, 0}, {0, 0, 0}}, cell, structure.AllPeriodic)
	if err != nil {
		return nil, err
	}
	if err := s.SetFractional([][3]float64{{0, 0, 0}, {1.0 / 3, 2.0 / 3, 0.5}}); err != nil {
		return nil, err
	}

	return s, nil
}

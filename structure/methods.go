package structure

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Copy returns an independent deep copy of s.
// Complexity: O(n).
func (s *Structure) Copy() *Structure {
	c, _ := New(s.symbols, s.positions, s.cell, s.pbc)

	return c
}

// Translate shifts every position by d in place.
// Complexity: O(n).
func (s *Structure) Translate(d [3]float64) {
	for i := range s.positions {
		s.positions[i][0] += d[0]
		s.positions[i][1] += d[1]
		s.positions[i][2] += d[2]
	}
}

// MaxZ returns the maximum Cartesian z-coordinate over all sites, or 0
// for an empty Structure.
// Complexity: O(n).
func (s *Structure) MaxZ() float64 {
	if len(s.positions) == 0 {
		return 0
	}
	z := s.positions[0][2]
	for _, p := range s.positions[1:] {
		if p[2] > z {
			z = p[2]
		}
	}

	return z
}

// MinZ returns the minimum Cartesian z-coordinate over all sites, or 0
// for an empty Structure.
// Complexity: O(n).
func (s *Structure) MinZ() float64 {
	if len(s.positions) == 0 {
		return 0
	}
	z := s.positions[0][2]
	for _, p := range s.positions[1:] {
		if p[2] < z {
			z = p[2]
		}
	}

	return z
}

// cellMatrix returns the cell as a gonum dense matrix with lattice
// vectors as rows.
func (s *Structure) cellMatrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		s.cell[0][0], s.cell[0][1], s.cell[0][2],
		s.cell[1][0], s.cell[1][1], s.cell[1][2],
		s.cell[2][0], s.cell[2][1], s.cell[2][2],
	})
}

// Fractional returns the scaled (fractional) positions: f·cell = position
// for each site, solved with the lattice vectors as cell rows.
// Returns ErrSingularCell when the cell is not invertible.
// Complexity: O(n) after one 3×3 inversion.
func (s *Structure) Fractional() ([][3]float64, error) {
	var inv mat.Dense
	if err := inv.Inverse(s.cellMatrix()); err != nil {
		return nil, ErrSingularCell
	}
	out := make([][3]float64, len(s.positions))
	for i, p := range s.positions {
		for a := 0; a < 3; a++ {
			out[i][a] = p[0]*inv.At(0, a) + p[1]*inv.At(1, a) + p[2]*inv.At(2, a)
		}
	}

	return out, nil
}

// SetFractional replaces all positions from scaled coordinates: position
// i becomes f[i]·cell. The number of sites must not change.
// Complexity: O(n).
func (s *Structure) SetFractional(f [][3]float64) error {
	if len(f) != len(s.positions) {
		return ErrSpeciesMismatch
	}
	for i, fr := range f {
		for a := 0; a < 3; a++ {
			s.positions[i][a] = fr[0]*s.cell[0][a] + fr[1]*s.cell[1][a] + fr[2]*s.cell[2][a]
		}
	}

	return nil
}

// Wrap folds positions into the primary cell along the periodic axes,
// leaving non-periodic axes untouched. Requires an invertible cell;
// returns ErrSingularCell otherwise.
// Complexity: O(n).
func (s *Structure) Wrap() error {
	frac, err := s.Fractional()
	if err != nil {
		return err
	}
	for i := range frac {
		for a := 0; a < 3; a++ {
			if s.pbc[a] {
				frac[i][a] -= math.Floor(frac[i][a])
			}
		}
	}

	return s.SetFractional(frac)
}

// Repeat returns the (nx × ny × nz) supercell: sites replicated by every
// integer combination of the lattice vectors, cell scaled accordingly.
// Returns ErrBadRepeat for non-positive counts.
// Complexity: O(n·nx·ny·nz).
func (s *Structure) Repeat(nx, ny, nz int) (*Structure, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, ErrBadRepeat
	}
	total := s.Len() * nx * ny * nz
	symbols := make([]string, 0, total)
	positions := make([][3]float64, 0, total)
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				var shift [3]float64
				for a := 0; a < 3; a++ {
					shift[a] = float64(ix)*s.cell[0][a] +
						float64(iy)*s.cell[1][a] +
						float64(iz)*s.cell[2][a]
				}
				for i, p := range s.positions {
					symbols = append(symbols, s.symbols[i])
					positions = append(positions, [3]float64{
						p[0] + shift[0], p[1] + shift[1], p[2] + shift[2],
					})
				}
			}
		}
	}
	cell := s.cell
	for a := 0; a < 3; a++ {
		cell[0][a] *= float64(nx)
		cell[1][a] *= float64(ny)
		cell[2][a] *= float64(nz)
	}

	return New(symbols, positions, cell, s.pbc)
}

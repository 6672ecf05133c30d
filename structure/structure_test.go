package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomforge/atomforge/structure"
)

func cubicCell(a float64) structure.Cell {
	return structure.Cell{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
}

// TestNew_SpeciesMismatch rejects unequal symbol and position counts.
func TestNew_SpeciesMismatch(t *testing.T) {
	_, err := structure.New(
		[]string{"Cu", "Cu"}, [][3]float64{{0, 0, 0}},
		cubicCell(3.6), structure.AllPeriodic,
	)
	assert.ErrorIs(t, err, structure.ErrSpeciesMismatch)
}

// TestNew_DeepCopies: mutating the inputs after New must not affect the
// Structure, and accessor slices are fresh copies.
func TestNew_DeepCopies(t *testing.T) {
	symbols := []string{"Cu"}
	positions := [][3]float64{{1, 2, 3}}
	s, err := structure.New(symbols, positions, cubicCell(3.6), structure.AllPeriodic)
	require.NoError(t, err)

	symbols[0] = "Au"
	positions[0][0] = 99
	assert.Equal(t, "Cu", s.Symbol(0))
	assert.Equal(t, [3]float64{1, 2, 3}, s.Position(0))

	got := s.Positions()
	got[0][1] = 99
	assert.Equal(t, [3]float64{1, 2, 3}, s.Position(0), "accessor returns a copy")
}

// TestCopy_Independent: a copy does not share storage with the original.
func TestCopy_Independent(t *testing.T) {
	s, err := structure.New(
		[]string{"Cu"}, [][3]float64{{0, 0, 0}},
		cubicCell(3.6), structure.AllPeriodic,
	)
	require.NoError(t, err)

	c := s.Copy()
	c.Translate([3]float64{1, 0, 0})
	assert.Equal(t, [3]float64{0, 0, 0}, s.Position(0))
	assert.Equal(t, [3]float64{1, 0, 0}, c.Position(0))
}

// TestFractional_RoundTrip: positions -> fractional -> positions.
func TestFractional_RoundTrip(t *testing.T) {
	cell := structure.Cell{{4, 0, 0}, {2, 3, 0}, {0, 0, 5}}
	s, err := structure.New(
		[]string{"Cu", "O"}, [][3]float64{{1, 1, 1}, {3, 2, 4}},
		cell, structure.AllPeriodic,
	)
	require.NoError(t, err)

	frac, err := s.Fractional()
	require.NoError(t, err)
	require.NoError(t, s.SetFractional(frac))
	assert.InDelta(t, 1, s.Position(0)[0], 1e-12)
	assert.InDelta(t, 4, s.Position(1)[2], 1e-12)
}

// TestFractional_SingularCell fails on a non-invertible cell.
func TestFractional_SingularCell(t *testing.T) {
	s, err := structure.New(
		[]string{"Cu"}, [][3]float64{{0, 0, 0}},
		structure.Cell{{1, 0, 0}, {2, 0, 0}, {0, 0, 1}},
		structure.AllPeriodic,
	)
	require.NoError(t, err)

	_, err = s.Fractional()
	assert.ErrorIs(t, err, structure.ErrSingularCell)
	assert.ErrorIs(t, s.Wrap(), structure.ErrSingularCell)
}

// TestWrap_PeriodicAxesOnly folds only where the pbc flag is set.
func TestWrap_PeriodicAxesOnly(t *testing.T) {
	s, err := structure.New(
		[]string{"Cu"}, [][3]float64{{4.5, -1, 7}},
		cubicCell(4), structure.PBC{true, true, false},
	)
	require.NoError(t, err)

	require.NoError(t, s.Wrap())
	p := s.Position(0)
	assert.InDelta(t, 0.5, p[0], 1e-12, "x wraps into [0, a)")
	assert.InDelta(t, 3.0, p[1], 1e-12, "negative y wraps up")
	assert.InDelta(t, 7.0, p[2], 1e-12, "non-periodic z is untouched")
}

// TestRepeat_CountsAndCell: site count and cell scale with the repeats.
func TestRepeat_CountsAndCell(t *testing.T) {
	s, err := structure.New(
		[]string{"Cu", "O"}, [][3]float64{{0, 0, 0}, {1, 1, 1}},
		cubicCell(4), structure.AllPeriodic,
	)
	require.NoError(t, err)

	super, err := s.Repeat(2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, super.Len())
	assert.InDelta(t, 8, super.Cell()[0][0], 1e-12)
	assert.InDelta(t, 12, super.Cell()[1][1], 1e-12)
	assert.InDelta(t, 4, super.Cell()[2][2], 1e-12)

	// First block keeps the original sites, later blocks shift by cell
	// vectors.
	assert.Equal(t, [3]float64{0, 0, 0}, super.Position(0))
	assert.Equal(t, [3]float64{4, 0, 0}, super.Position(2))

	_, err = s.Repeat(0, 1, 1)
	assert.ErrorIs(t, err, structure.ErrBadRepeat)
}

// TestMinMaxZ on a tilted set of sites, and the empty-structure zeros.
func TestMinMaxZ(t *testing.T) {
	s, err := structure.New(
		[]string{"A", "B", "C"},
		[][3]float64{{0, 0, 2.5}, {0, 0, -1}, {0, 0, 0.5}},
		cubicCell(4), structure.AllPeriodic,
	)
	require.NoError(t, err)
	assert.Equal(t, 2.5, s.MaxZ())
	assert.Equal(t, -1.0, s.MinZ())

	empty, err := structure.New(nil, nil, cubicCell(4), structure.AllPeriodic)
	require.NoError(t, err)
	assert.Zero(t, empty.MaxZ())
	assert.Zero(t, empty.MinZ())
}

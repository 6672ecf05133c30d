package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomforge/atomforge/lattice"
)

// TestFcc100_Geometry pins the fcc(100) cell and layer positions for a
// two-layer slab.
func TestFcc100_Geometry(t *testing.T) {
	const a = 4.0
	d := a / math.Sqrt2

	slab, err := lattice.Fcc100("Cu", [3]int{1, 1, 2}, a)
	require.NoError(t, err)
	require.Equal(t, 2, slab.Len())

	cell := slab.Cell()
	assert.InDelta(t, d, cell[0][0], 1e-12)
	assert.InDelta(t, d, cell[1][1], 1e-12)
	assert.InDelta(t, a, cell[2][2], 1e-12, "two layers close one cubic period")

	assert.InDelta(t, 0, slab.Position(0)[2], 1e-12, "slab is bottom-anchored")
	p := slab.Position(1)
	assert.InDelta(t, d/2, p[0], 1e-12)
	assert.InDelta(t, d/2, p[1], 1e-12)
	assert.InDelta(t, a/2, p[2], 1e-12)
}

// TestFcc111_Stacking checks layer spacing a/√3 and the closing cell gap
// of a three-layer hexagonal slab.
func TestFcc111_Stacking(t *testing.T) {
	const a = 4.0
	h := a / math.Sqrt(3)

	slab, err := lattice.Fcc111("Cu", [3]int{1, 1, 3}, a, false)
	require.NoError(t, err)
	require.Equal(t, 3, slab.Len())

	for i := 0; i < 3; i++ {
		assert.InDelta(t, float64(i)*h, slab.Position(i)[2], 1e-12, "layer %d height", i)
	}
	assert.InDelta(t, 3*h, slab.Cell()[2][2], 1e-12, "cell closes the ABC cycle")

	d := a / math.Sqrt2
	cell := slab.Cell()
	assert.InDelta(t, d, cell[0][0], 1e-12)
	assert.InDelta(t, d/2, cell[1][0], 1e-12)
	assert.InDelta(t, d*math.Sqrt(3)/2, cell[1][1], 1e-12)
}

// TestFcc111_Orthogonal verifies the doubled rectangular cell carries two
// sites per layer.
func TestFcc111_Orthogonal(t *testing.T) {
	const a = 4.0
	d := a / math.Sqrt2

	slab, err := lattice.Fcc111("Cu", [3]int{1, 1, 2}, a, true)
	require.NoError(t, err)
	assert.Equal(t, 4, slab.Len(), "two sites per layer in the orthogonal cell")

	cell := slab.Cell()
	assert.InDelta(t, d, cell[0][0], 1e-12)
	assert.InDelta(t, 0, cell[1][0], 1e-12)
	assert.InDelta(t, d*math.Sqrt(3), cell[1][1], 1e-12)
}

// TestBcc110_CenteredLayers checks the two-site rectangular bcc(110)
// layers and their spacing a/√2.
func TestBcc110_CenteredLayers(t *testing.T) {
	const a = 3.0

	slab, err := lattice.Bcc110("Fe", [3]int{1, 1, 2}, a)
	require.NoError(t, err)
	require.Equal(t, 4, slab.Len())

	cell := slab.Cell()
	assert.InDelta(t, a, cell[0][0], 1e-12)
	assert.InDelta(t, a*math.Sqrt2, cell[1][1], 1e-12)
	assert.InDelta(t, a*math.Sqrt2, cell[2][2], 1e-12, "two layers close one period")

	assert.InDelta(t, 0, slab.Position(1)[2], 1e-12, "centered partner shares the layer")
	assert.InDelta(t, a/math.Sqrt2, slab.Position(2)[2], 1e-12)
}

// TestDiamond111_Bilayers checks the short/long gap alternation.
func TestDiamond111_Bilayers(t *testing.T) {
	const a = 5.43
	u := a * math.Sqrt(3) / 12

	slab, err := lattice.Diamond111("Si", [3]int{1, 1, 4}, a)
	require.NoError(t, err)
	require.Equal(t, 4, slab.Len())

	assert.InDelta(t, 0, slab.Position(0)[2], 1e-12)
	assert.InDelta(t, 3*u, slab.Position(1)[2], 1e-12, "bilayer partner shares the registry")
	assert.InDelta(t, 4*u, slab.Position(2)[2], 1e-12, "short gap to the next registry")
	assert.InDelta(t, 7*u, slab.Position(3)[2], 1e-12)
}

// TestHcp0001_IdealRatio checks AB stacking at c/2 with the ideal c.
func TestHcp0001_IdealRatio(t *testing.T) {
	const a = 3.2
	c := a * math.Sqrt(8.0 / 3.0)

	slab, err := lattice.Hcp0001("Mg", [3]int{2, 2, 2}, a, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 8, slab.Len(), "2x2 lateral repeat of two layers")
	assert.InDelta(t, c, slab.Cell()[2][2], 1e-12)
}

// TestMx2_Trilayer checks the X-M-X ordering, default thickness, and
// species parsed from the formula.
func TestMx2_Trilayer(t *testing.T) {
	slab, err := lattice.Mx2("MoS2", [3]int{1, 1, 1}, 3.18, 0, "")
	require.NoError(t, err)
	require.Equal(t, 3, slab.Len())

	assert.Equal(t, []string{"S", "Mo", "S"}, slab.Symbols())
	assert.InDelta(t, 0, slab.Position(0)[2], 1e-12)
	assert.InDelta(t, 3.19/2, slab.Position(1)[2], 1e-12, "metal plane at half thickness")
	assert.InDelta(t, 3.19, slab.Position(2)[2], 1e-12)
	assert.InDelta(t, 2*3.19, slab.Cell()[2][2], 1e-12, "trilayer gap equals the thickness")
}

// TestMx2_Polytypes distinguishes 2H and 1T by the lower chalcogen site.
func TestMx2_Polytypes(t *testing.T) {
	h2, err := lattice.Mx2("MoS2", [3]int{1, 1, 1}, 3.18, 3.19, "2H")
	require.NoError(t, err)
	t1, err := lattice.Mx2("MoS2", [3]int{1, 1, 1}, 3.18, 3.19, "1T")
	require.NoError(t, err)
	assert.NotEqual(t, h2.Position(0), t1.Position(0), "polytypes differ in the bottom X registry")
	assert.Equal(t, h2.Position(2), t1.Position(2), "top X registry is shared")

	_, err = lattice.Mx2("MoS2", [3]int{1, 1, 1}, 3.18, 3.19, "3R")
	assert.ErrorIs(t, err, lattice.ErrBadKind)
}

// TestMx2_BadFormula rejects formulas that are not exactly M X 2.
func TestMx2_BadFormula(t *testing.T) {
	for _, formula := range []string{"MoS", "MoS3", "mos2", "Mo2S2", ""} {
		_, err := lattice.Mx2(formula, [3]int{1, 1, 1}, 3.18, 3.19, "2H")
		assert.ErrorIs(t, err, lattice.ErrBadFormula, "formula %q must be rejected", formula)
	}
}

// TestSlab_BadArguments covers size and lattice-constant validation.
func TestSlab_BadArguments(t *testing.T) {
	_, err := lattice.Fcc100("Cu", [3]int{0, 1, 1}, 4.0)
	assert.ErrorIs(t, err, lattice.ErrBadSize)

	_, err = lattice.Bcc111("Fe", [3]int{1, 1, -2}, 3.0, false)
	assert.ErrorIs(t, err, lattice.ErrBadSize)

	_, err = lattice.Hcp10m10("Mg", [3]int{1, 1, 4}, 0, 0)
	assert.ErrorIs(t, err, lattice.ErrLatticeConstant)
}

// TestCenterVacuum pads both sides and anchors the slab at z = vacuum.
func TestCenterVacuum(t *testing.T) {
	slab, err := lattice.Fcc100("Cu", [3]int{1, 1, 2}, 4.0)
	require.NoError(t, err)

	lattice.CenterVacuum(slab, 5.0)
	assert.InDelta(t, 5.0, slab.MinZ(), 1e-12)
	assert.InDelta(t, 7.0, slab.MaxZ(), 1e-12)
	assert.InDelta(t, 12.0, slab.Cell()[2][2], 1e-12, "thickness plus vacuum on both sides")
}

// TestSlab_Deterministic: equal inputs give bit-identical slabs.
func TestSlab_Deterministic(t *testing.T) {
	a, err := lattice.Fcc111("Cu", [3]int{3, 2, 5}, 3.61, true)
	require.NoError(t, err)
	b, err := lattice.Fcc111("Cu", [3]int{3, 2, 5}, 3.61, true)
	require.NoError(t, err)
	assert.Equal(t, a.Symbols(), b.Symbols())
	assert.Equal(t, a.Positions(), b.Positions())
	assert.Equal(t, a.Cell(), b.Cell())
}

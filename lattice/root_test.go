package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomforge/atomforge/lattice"
)

// TestFcc111Root_CellAndCount: the √3 cell triples the atom count and
// scales the surface vectors by √3, with the first vector along x.
func TestFcc111Root_CellAndCount(t *testing.T) {
	const a = 4.05
	d := a / math.Sqrt2

	slab, err := lattice.Fcc111Root("Al", [3]int{1, 1, 2}, a, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, slab.Len(), "three primitive cells per root-3 cell, two layers")

	cell := slab.Cell()
	assert.InDelta(t, d*math.Sqrt(3), cell[0][0], 1e-9)
	assert.InDelta(t, 0, cell[0][1], 1e-9, "first cell vector rotated onto x")
	lenB := math.Hypot(cell[1][0], cell[1][1])
	assert.InDelta(t, d*math.Sqrt(3), lenB, 1e-9, "root cell stays hexagonal")
}

// TestRootSurface_RootOne keeps the primitive cell.
func TestRootSurface_RootOne(t *testing.T) {
	prim, err := lattice.Fcc111("Al", [3]int{1, 1, 3}, 4.05, false)
	require.NoError(t, err)

	rooted, err := lattice.RootSurface(prim, 1)
	require.NoError(t, err)
	assert.Equal(t, prim.Len(), rooted.Len())
	assert.InDelta(t, prim.Cell()[0][0], rooted.Cell()[0][0], 1e-9)
}

// TestRootSurface_InvalidRoot: 2 is not expressible as i² + ij + j².
func TestRootSurface_InvalidRoot(t *testing.T) {
	prim, err := lattice.Fcc111("Al", [3]int{1, 1, 1}, 4.05, false)
	require.NoError(t, err)

	for _, root := range []int{2, 5, 6, 0, -3} {
		_, err := lattice.RootSurface(prim, root)
		assert.ErrorIs(t, err, lattice.ErrInvalidRoot, "root %d", root)
	}
}

// TestRootSurface_NotHexagonal rejects rectangular slabs.
func TestRootSurface_NotHexagonal(t *testing.T) {
	square, err := lattice.Fcc100("Al", [3]int{1, 1, 2}, 4.05)
	require.NoError(t, err)

	_, err = lattice.RootSurface(square, 3)
	assert.ErrorIs(t, err, lattice.ErrNotHexagonal)
}

// TestRootVariants_CountScaling checks atom counts across the three
// rooted families and valid roots 3, 4, 7.
func TestRootVariants_CountScaling(t *testing.T) {
	for _, root := range []int{3, 4, 7} {
		slab, err := lattice.Bcc111Root("Fe", [3]int{1, 1, 3}, 2.87, root)
		require.NoError(t, err, "root %d", root)
		assert.Equal(t, 3*root, slab.Len(), "root %d", root)
	}

	slab, err := lattice.Hcp0001Root("Mg", [3]int{2, 1, 2}, 3.2, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 2*1*2*4, slab.Len(), "lateral repeat times layers times root")
}

// TestFcc111Root_Deterministic: equal inputs give identical slabs.
func TestFcc111Root_Deterministic(t *testing.T) {
	a, err := lattice.Fcc111Root("Al", [3]int{2, 2, 3}, 4.05, 7)
	require.NoError(t, err)
	b, err := lattice.Fcc111Root("Al", [3]int{2, 2, 3}, 4.05, 7)
	require.NoError(t, err)
	assert.Equal(t, a.Positions(), b.Positions())
	assert.Equal(t, a.Symbols(), b.Symbols())
}

package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/atomforge/atomforge/structure"
)

const hklTol = 1e-10

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func axpy(out *[3]float64, c float64, v [3]float64) {
	out[0] += c * v[0]
	out[1] += c * v[1]
	out[2] += c * v[2]
}

// extGCD returns Bézout coefficients (x, y) with a·x + b·y = gcd(a, b).
func extGCD(a, b int) (int, int) {
	if b == 0 {
		return 1, 0
	}
	x, y := extGCD(b, a%b)

	return y, x - (a/b)*y
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// surfaceBasis finds an integer change of basis (c1, c2, c3) for the
// bulk cell such that c1 and c2 span the (h k l) plane and c3 completes
// a right-handed cell of determinant ±1.
func surfaceBasis(cell structure.Cell, hkl [3]int) [3][3]int {
	h, k, l := hkl[0], hkl[1], hkl[2]

	switch {
	case k == 0 && l == 0:
		return [3][3]int{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}}
	case h == 0 && l == 0:
		return [3][3]int{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}
	case h == 0 && k == 0:
		return [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	}

	p, q := extGCD(k, l)
	a1, a2, a3 := cell[0], cell[1], cell[2]

	// k1, k2 measure how parallel (p, q) combinations are to the in-plane
	// direction l·a2 − k·a3; shifting (p, q) along (l, −k) minimizes the
	// skew of c3.
	var t, ref [3]float64
	axpy(&ref, float64(l), a2)
	axpy(&ref, float64(-k), a3)

	axpy(&t, float64(p*k), a1)
	axpy(&t, float64(-p*h), a2)
	axpy(&t, float64(q*l), a1)
	axpy(&t, float64(-q*h), a3)
	k1 := dot(t, ref)

	t = [3]float64{}
	axpy(&t, float64(l*k), a1)
	axpy(&t, float64(-l*h), a2)
	axpy(&t, float64(-k*l), a1)
	axpy(&t, float64(k*h), a3)
	k2 := dot(t, ref)

	if math.Abs(k2) > hklTol {
		i := -int(math.RoundToEven(k1 / k2))
		p += i * l
		q -= i * k
	}

	a, b := extGCD(p*k+q*l, h)

	c1 := [3]int{p*k + q*l, -p * h, -q * h}
	g := gcd(l, k)
	c2 := [3]int{0, l / g, -k / g}
	c3 := [3]int{b, a * p, a * q}

	return [3][3]int{c1, c2, c3}
}

// SurfaceHKL cuts a slab with surface normal (h k l) out of a periodic
// bulk cell: the bulk is re-based onto an integer surface basis, stacked
// to the requested layer count, and rotated into standard orientation
// with the surface normal along z. The result is a bottom-anchored raw
// slab, periodic in x and y only. layers counts repeats of the re-based
// cell, not atomic monolayers.
//
// Returns ErrZeroMiller for (0 0 0), ErrBadLayers for layers < 1, and
// structure.ErrSingularCell for a degenerate bulk cell.
func SurfaceHKL(bulk *structure.Structure, hkl [3]int, layers int) (*structure.Structure, error) {
	if hkl == [3]int{} {
		return nil, fmt.Errorf("lattice: miller index (0 0 0): %w", ErrZeroMiller)
	}
	if layers < 1 {
		return nil, fmt.Errorf("lattice: %d layers: %w", layers, ErrBadLayers)
	}

	cell := bulk.Cell()
	basis := surfaceBasis(cell, hkl)

	frac, err := bulk.Fractional()
	if err != nil {
		return nil, err
	}

	// Re-express fractional coordinates in the surface basis and fold them
	// into its unit cell.
	bm := mat.NewDense(3, 3, []float64{
		float64(basis[0][0]), float64(basis[0][1]), float64(basis[0][2]),
		float64(basis[1][0]), float64(basis[1][1]), float64(basis[1][2]),
		float64(basis[2][0]), float64(basis[2][1]), float64(basis[2][2]),
	})
	var inv mat.Dense
	if err := inv.Inverse(bm); err != nil {
		return nil, structure.ErrSingularCell
	}
	newFrac := make([][3]float64, len(frac))
	for i, f := range frac {
		for a := 0; a < 3; a++ {
			v := f[0]*inv.At(0, a) + f[1]*inv.At(1, a) + f[2]*inv.At(2, a)
			newFrac[i][a] = v - math.Floor(v+hklTol)
		}
	}

	var newCell structure.Cell
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for m := 0; m < 3; m++ {
				newCell[i][j] += float64(basis[i][m]) * cell[m][j]
			}
		}
	}

	surf, err := structure.New(bulk.Symbols(), make([][3]float64, bulk.Len()), newCell, structure.AllPeriodic)
	if err != nil {
		return nil, err
	}
	if err := surf.SetFractional(newFrac); err != nil {
		return nil, err
	}
	surf, err = surf.Repeat(1, 1, layers)
	if err != nil {
		return nil, err
	}

	// Squash the stacking vector onto the surface normal, keeping
	// positions fixed, then rotate into standard orientation.
	c := surf.Cell()
	n := cross(c[0], c[1])
	scale := dot(c[2], n) / dot(n, n)
	c[2] = [3]float64{scale * n[0], scale * n[1], scale * n[2]}
	surf.SetCell(c)

	la1 := math.Sqrt(dot(c[0], c[0]))
	proj := dot(c[0], c[1]) / la1
	std := structure.Cell{
		{la1, 0, 0},
		{proj, math.Sqrt(dot(c[1], c[1]) - proj*proj), 0},
		{0, 0, math.Sqrt(dot(c[2], c[2]))},
	}
	frac, err = surf.Fractional()
	if err != nil {
		return nil, err
	}
	surf.SetCell(std)
	if err := surf.SetFractional(frac); err != nil {
		return nil, err
	}

	surf.SetPBC(structure.PBC{true, true, false})
	if err := surf.Wrap(); err != nil {
		return nil, err
	}

	return surf, nil
}

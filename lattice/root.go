package lattice

import (
	"fmt"
	"math"
	"sort"

	"github.com/atomforge/atomforge/structure"
)

const rootTol = 1e-6

// rootCellVector finds integer coefficients (i, j) of the 60° hexagonal
// basis with i² + ij + j² = root, i.e. a surface-cell vector of squared
// length root (in units of the primitive cell edge).
func rootCellVector(root int) (int, int, error) {
	for i := 1; i*i <= root; i++ {
		for j := 0; j <= i; j++ {
			if i*i+i*j+j*j == root {
				return i, j, nil
			}
		}
	}

	return 0, 0, fmt.Errorf("lattice: root %d: %w", root, ErrInvalidRoot)
}

func hexagonalCell(cell structure.Cell) bool {
	d := math.Hypot(cell[0][0], cell[0][1])
	d2 := math.Hypot(cell[1][0], cell[1][1])
	if d == 0 || math.Abs(d-d2) > rootTol*d {
		return false
	}
	if math.Abs(cell[0][2]) > rootTol || math.Abs(cell[1][2]) > rootTol {
		return false
	}
	if math.Abs(cell[2][0]) > rootTol || math.Abs(cell[2][1]) > rootTol {
		return false
	}
	cos := (cell[0][0]*cell[1][0] + cell[0][1]*cell[1][1]) / (d * d2)

	return math.Abs(cos-0.5) <= rootTol
}

type rootSite struct {
	pos    [3]float64
	symbol string
}

// RootSurface re-bases a hexagonal slab onto the √root × √root surface
// cell: the cell vector (i, j) with i² + ij + j² = root and its 60°
// rotation span the new cell, which is then rotated so its first vector
// lies along x. The slab must carry a 60° hexagonal surface cell
// (ErrNotHexagonal otherwise); roots with no lattice vector of matching
// length fail with ErrInvalidRoot.
func RootSurface(slab *structure.Structure, root int) (*structure.Structure, error) {
	if root < 1 {
		return nil, fmt.Errorf("lattice: root %d: %w", root, ErrInvalidRoot)
	}
	cell := slab.Cell()
	if !hexagonalCell(cell) {
		return nil, fmt.Errorf("lattice: cell %v: %w", cell, ErrNotHexagonal)
	}
	i, j, err := rootCellVector(root)
	if err != nil {
		return nil, err
	}

	a1 := [2]float64{cell[0][0], cell[0][1]}
	a2 := [2]float64{cell[1][0], cell[1][1]}
	c1 := [2]float64{float64(i)*a1[0] + float64(j)*a2[0], float64(i)*a1[1] + float64(j)*a2[1]}
	c2 := [2]float64{float64(-j)*a1[0] + float64(i+j)*a2[0], float64(-j)*a1[1] + float64(i+j)*a2[1]}

	// Inverse of the 2D row-vector cell (c1; c2).
	det := c1[0]*c2[1] - c1[1]*c2[0]
	inv := [2][2]float64{
		{c2[1] / det, -c1[1] / det},
		{-c2[0] / det, c1[0] / det},
	}

	// Sweep primitive-lattice translations of every site into the new
	// cell, deduplicating on wrapped fractional coordinates.
	span := i + j + 2
	seen := make(map[[4]int64]bool)
	var sites []rootSite
	for idx := 0; idx < slab.Len(); idx++ {
		p := slab.Position(idx)
		sym := slab.Symbol(idx)
		for m := -span; m <= span; m++ {
			for n := -span; n <= span; n++ {
				x := p[0] + float64(m)*a1[0] + float64(n)*a2[0]
				y := p[1] + float64(m)*a1[1] + float64(n)*a2[1]
				f1 := wrapFrac(x*inv[0][0] + y*inv[1][0])
				f2 := wrapFrac(x*inv[0][1] + y*inv[1][1])
				// Modulo folds a fraction that rounds up to exactly 1 back
				// onto 0.
				key := [4]int64{
					int64(math.Round(f1*1e6)) % 1e6,
					int64(math.Round(f2*1e6)) % 1e6,
					int64(math.Round(p[2] * 1e6)),
					symbolKey(sym),
				}
				if seen[key] {
					continue
				}
				seen[key] = true
				sites = append(sites, rootSite{
					pos:    [3]float64{f1*c1[0] + f2*c2[0], f1*c1[1] + f2*c2[1], p[2]},
					symbol: sym,
				})
			}
		}
	}

	// Rotate the new cell so c1 points along +x.
	angle := math.Atan2(c1[1], c1[0])
	sin, cos := math.Sin(-angle), math.Cos(-angle)
	rot := func(v [2]float64) [2]float64 {
		return [2]float64{v[0]*cos - v[1]*sin, v[0]*sin + v[1]*cos}
	}
	c1, c2 = rot(c1), rot(c2)
	for k := range sites {
		xy := rot([2]float64{sites[k].pos[0], sites[k].pos[1]})
		sites[k].pos[0], sites[k].pos[1] = xy[0], xy[1]
	}

	sort.Slice(sites, func(p, q int) bool {
		a, b := sites[p], sites[q]
		if math.Abs(a.pos[2]-b.pos[2]) > rootTol {
			return a.pos[2] < b.pos[2]
		}
		if math.Abs(a.pos[1]-b.pos[1]) > rootTol {
			return a.pos[1] < b.pos[1]
		}
		if math.Abs(a.pos[0]-b.pos[0]) > rootTol {
			return a.pos[0] < b.pos[0]
		}

		return a.symbol < b.symbol
	})

	symbols := make([]string, len(sites))
	positions := make([][3]float64, len(sites))
	for k, s := range sites {
		symbols[k] = s.symbol
		positions[k] = s.pos
	}
	newCell := structure.Cell{
		{c1[0], c1[1], 0},
		{c2[0], c2[1], 0},
		cell[2],
	}

	return structure.New(symbols, positions, newCell, slab.PBC())
}

func symbolKey(sym string) int64 {
	var h int64
	for _, r := range sym {
		h = h*131 + int64(r)
	}

	return h
}

// Fcc111Root builds an fcc(111) slab on the √root surface cell:
// a primitive hexagonal column of size[2] layers is re-based via
// RootSurface, then repeated size[0] × size[1] laterally.
func Fcc111Root(symbol string, size [3]int, a float64, root int) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}
	prim, err := Fcc111(symbol, [3]int{1, 1, size[2]}, a, false)
	if err != nil {
		return nil, err
	}
	rooted, err := RootSurface(prim, root)
	if err != nil {
		return nil, err
	}

	return rooted.Repeat(size[0], size[1], 1)
}

// Bcc111Root is Fcc111Root for the bcc(111) surface.
func Bcc111Root(symbol string, size [3]int, a float64, root int) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}
	prim, err := Bcc111(symbol, [3]int{1, 1, size[2]}, a, false)
	if err != nil {
		return nil, err
	}
	rooted, err := RootSurface(prim, root)
	if err != nil {
		return nil, err
	}

	return rooted.Repeat(size[0], size[1], 1)
}

// Hcp0001Root is Fcc111Root for the hcp(0001) surface; a zero c selects
// the ideal ratio.
func Hcp0001Root(symbol string, size [3]int, a, c float64, root int) (*structure.Structure, error) {
	if err := checkSizeA(size, a); err != nil {
		return nil, err
	}
	prim, err := Hcp0001(symbol, [3]int{1, 1, size[2]}, a, c, false)
	if err != nil {
		return nil, err
	}
	rooted, err := RootSurface(prim, root)
	if err != nil {
		return nil, err
	}

	return rooted.Repeat(size[0], size[1], 1)
}

package structure

import "errors"

// Sentinel errors for structure operations.
var (
	// ErrSpeciesMismatch indicates the number of species symbols differs
	// from the number of positions.
	ErrSpeciesMismatch = errors.New("structure: species and position counts differ")

	// ErrSingularCell indicates a scaled-position operation was requested
	// but the cell matrix is not invertible.
	ErrSingularCell = errors.New("structure: cell is singular")

	// ErrBadRepeat indicates a non-positive supercell repeat count.
	ErrBadRepeat = errors.New("structure: repeat counts must be positive")
)

// Cell is a 3×3 lattice-vector matrix; row i is lattice vector i.
type Cell [3][3]float64

// PBC holds the per-axis periodic-boundary flags.
type PBC [3]bool

// AllPeriodic is the default periodicity: periodic along all three axes.
var AllPeriodic = PBC{true, true, true}

// Structure is an immutable-per-snapshot record of atomic sites, a cell,
// and periodicity flags. Producers return fresh copies; consumers must not
// assume two calls share memory.
type Structure struct {
	symbols   []string
	positions [][3]float64
	cell      Cell
	pbc       PBC
}

// New constructs a Structure, deep-copying symbols and positions.
// Returns ErrSpeciesMismatch when len(symbols) != len(positions).
// Complexity: O(n).
func New(symbols []string, positions [][3]float64, cell Cell, pbc PBC) (*Structure, error) {
	if len(symbols) != len(positions) {
		return nil, ErrSpeciesMismatch
	}
	s := &Structure{
		symbols:   make([]string, len(symbols)),
		positions: make([][3]float64, len(positions)),
		cell:      cell,
		pbc:       pbc,
	}
	copy(s.symbols, symbols)
	copy(s.positions, positions)

	return s, nil
}

// Len returns the number of atomic sites.
func (s *Structure) Len() int { return len(s.positions) }

// Symbols returns a copy of the species symbols in site order.
func (s *Structure) Symbols() []string {
	out := make([]string, len(s.symbols))
	copy(out, s.symbols)

	return out
}

// Symbol returns the species symbol of site i.
func (s *Structure) Symbol(i int) string { return s.symbols[i] }

// Positions returns a copy of the Cartesian positions in site order.
func (s *Structure) Positions() [][3]float64 {
	out := make([][3]float64, len(s.positions))
	copy(out, s.positions)

	return out
}

// Position returns the Cartesian position of site i.
func (s *Structure) Position(i int) [3]float64 { return s.positions[i] }

// Cell returns the 3×3 lattice-vector matrix.
func (s *Structure) Cell() Cell { return s.cell }

// SetCell replaces the cell. Positions are left untouched; callers owning
// the Structure apply any accompanying position adjustment themselves.
func (s *Structure) SetCell(c Cell) { s.cell = c }

// PBC returns the periodic-boundary flags.
func (s *Structure) PBC() PBC { return s.pbc }

// SetPBC replaces the periodic-boundary flags.
func (s *Structure) SetPBC(p PBC) { s.pbc = p }

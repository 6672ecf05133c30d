package lattice

import (
	"errors"
	"fmt"

	"github.com/atomforge/atomforge/citation"
)

// Sentinel errors for lattice generation.
var (
	// ErrUnknownBravais indicates a crystal-family name outside the fixed
	// vocabulary.
	ErrUnknownBravais = errors.New("lattice: unknown bravais lattice")

	// ErrNotCubic indicates a cubic-only operation was asked of a
	// non-cubic family.
	ErrNotCubic = errors.New("lattice: bravais lattice is not cubic")

	// ErrNotHexagonal indicates a slab without a 60° hexagonal surface
	// cell was passed to a root-surface operation.
	ErrNotHexagonal = errors.New("lattice: slab cell is not hexagonal")

	// ErrLatticeConstant indicates a non-positive lattice constant.
	ErrLatticeConstant = errors.New("lattice: lattice constant must be positive")

	// ErrBadSize indicates a non-positive slab size count.
	ErrBadSize = errors.New("lattice: size counts must be positive")

	// ErrBadLayers indicates a non-positive layer count.
	ErrBadLayers = errors.New("lattice: layer count must be positive")

	// ErrZeroMiller indicates the (0,0,0) Miller index.
	ErrZeroMiller = errors.New("lattice: miller index must be non-zero")

	// ErrInvalidRoot indicates no surface-cell vector with the requested
	// squared length exists.
	ErrInvalidRoot = errors.New("lattice: root index is not realizable on this surface")

	// ErrBadFormula indicates an MX2 formula that does not parse as one
	// metal and one chalcogen symbol.
	ErrBadFormula = errors.New("lattice: cannot parse MX2 formula")

	// ErrBadKind indicates an MX2 polytype outside {2H, 1T}.
	ErrBadKind = errors.New("lattice: unknown mx2 polytype")
)

// Bravais identifies a crystal family from the fixed, case-sensitive
// vocabulary {sc, fcc, bcc, diamond, hcp}.
type Bravais int

const (
	// SC is the simple cubic lattice.
	SC Bravais = iota
	// FCC is the face-centered cubic lattice.
	FCC
	// BCC is the body-centered cubic lattice.
	BCC
	// Diamond is the diamond cubic lattice (fcc with a two-atom basis).
	Diamond
	// HCP is the hexagonal close-packed lattice.
	HCP
)

// String returns the canonical lower-case family name.
func (b Bravais) String() string {
	switch b {
	case SC:
		return "sc"
	case FCC:
		return "fcc"
	case BCC:
		return "bcc"
	case Diamond:
		return "diamond"
	case HCP:
		return "hcp"
	}

	return "unknown"
}

// ParseBravais resolves a case-sensitive family name.
// Returns ErrUnknownBravais (naming the input) for anything else.
func ParseBravais(name string) (Bravais, error) {
	switch name {
	case "sc":
		return SC, nil
	case "fcc":
		return FCC, nil
	case "bcc":
		return BCC, nil
	case "diamond":
		return Diamond, nil
	case "hcp":
		return HCP, nil
	}

	return 0, fmt.Errorf("lattice: bravais lattice %q: %w", name, ErrUnknownBravais)
}

// Cubic reports whether the family is one of the cubic lattices.
func (b Bravais) Cubic() bool {
	return b == SC || b == FCC || b == BCC || b == Diamond
}

// Publication returns the attribution record for the slab-construction
// algorithms adapted here (the Atomic Simulation Environment).
func Publication() citation.Record {
	return citation.Record{
		Key:     "ase-2017",
		Title:   "The atomic simulation environment—a Python library for working with atoms",
		Authors: "A. H. Larsen et al.",
		Journal: "Journal of Physics: Condensed Matter 29, 273002",
		Year:    2017,
		DOI:     "10.1088/1361-648X/aa680e",
	}
}

// Package structure defines the Structure value object shared by every
// builder and producer in atomforge: an ordered list of atomic sites
// (species symbol + Cartesian position), a 3×3 cell whose rows are the
// lattice vectors, and per-axis periodic-boundary flags.
//
// What:
//
//   - New validates and deep-copies its inputs; Structures never alias
//     caller memory.
//   - Accessors (Symbols, Positions, Cell, PBC) return copies; the
//     documented mutators (SetCell, SetPBC, Translate) exist for builders
//     operating on Structures they constructed themselves.
//   - Fractional and Wrap require an invertible cell; everything else
//     works on an arbitrary (even zero) cell.
//   - Repeat produces the (nx × ny × nz) supercell.
//
// Why:
//
//   - Slab builders post-process raw generator output (vacuum, centering,
//     PBC), and frame producers hand out per-snapshot copies; both need a
//     small value type with explicit copy semantics rather than a shared
//     mutable container.
//
// Errors:
//
//   - ErrSpeciesMismatch: symbol and position counts differ.
//   - ErrSingularCell: a scaled-position operation was requested on a
//     non-invertible cell.
//   - ErrBadRepeat: a non-positive repeat count.
package structure

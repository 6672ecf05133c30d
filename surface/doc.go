// Package surface builds finite surface slabs by name or by Miller
// index, on top of the lattice generators.
//
// What:
//
//   - Surface(symbol, surfaceType, opts) dispatches a named generator
//     ("fcc111", "bcc110", "hcp0001", "mx2", "fcc111_root", ...) and
//     applies the vacuum policy.
//   - SurfaceHKL(bulk, hkl, layers, opts) cuts an arbitrary-index slab
//     out of a periodic bulk cell.
//   - Builder carries the generator table and the citation registry;
//     WithGenerator extends the vocabulary, WithCitations redirects
//     attribution. The package-level functions use a shared default
//     Builder wired to citation.Default().
//
// Vacuum policy:
//
//   - Uncentered (default): the slab stays bottom-anchored and the cell
//     height becomes MaxZ + Vacuum, so all vacuum sits above the top
//     layer.
//   - Centered: vacuum is split evenly above and below. Named generators
//     center during generation; SurfaceHKL centers by shifting the built
//     slab to the cell midplane.
//
// Every successful build registers the slab-algorithm citation exactly
// once per registry; failed builds register nothing.
//
// Errors:
//
//   - ErrUnknownSurfaceType: a surface type outside the generator table;
//     the error names the offending type.
//   - Generator errors (lattice.ErrBadSize, lattice.ErrLatticeConstant,
//     lattice.ErrZeroMiller, ...) pass through unwrapped.
package surface

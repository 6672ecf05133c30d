// Package lattice generates bulk crystal cells and raw surface slabs —
// the "lattice generator" collaborator consumed by the surface and
// highindex packages.
//
// What:
//
//   - Bravais names the supported crystal families (sc, fcc, bcc,
//     diamond, hcp); Cubic and Hexagonal build conventional bulk cells.
//   - Closed-form slab families: Fcc100/110/111, Bcc100/110/111,
//     Diamond100/111, Hcp0001, Hcp10m10, Mx2, plus the root-cell variants
//     Fcc111Root, Bcc111Root, Hcp0001Root.
//   - SurfaceHKL is the generic engine: a slab with an arbitrary integer
//     Miller-index normal, built by re-basing the bulk cell onto a
//     surface basis found with extended-GCD arithmetic.
//   - CubicRotations exposes the 48 signed-permutation point-group
//     matrices used for symmetry-equivalent orientations.
//   - CenterVacuum pads a slab with vacuum on both sides and centers it.
//
// Conventions:
//
//   - Raw slabs are vacuum-free and bottom-anchored: the lowest atomic
//     layer sits at z = 0 and the cell's third vector is (0, 0, h) with h
//     the bulk stacking period, so a raw slab tiles seamlessly along z.
//   - Hexagonal surface cells use the 60° convention: a1 = (d, 0),
//     a2 = (d/2, d·√3/2). Orthogonal variants double the cell to
//     (d, 0) × (0, d·√3) with two sites per hexagonal site.
//   - Lattice constants are explicit; no element-default table exists at
//     this layer.
//
// Determinism:
//
//   - Every generator emits sites in a fixed order (layer-major, then
//     lateral row-major); equal inputs produce bit-identical slabs.
//
// Errors:
//
//   - ErrUnknownBravais, ErrNotCubic, ErrNotHexagonal: family mismatches.
//   - ErrLatticeConstant: non-positive lattice constant.
//   - ErrBadSize, ErrBadLayers: non-positive size or layer counts.
//   - ErrZeroMiller: the (0,0,0) Miller index.
//   - ErrInvalidRoot: a root index with no matching surface-cell vector.
//   - ErrBadFormula, ErrBadKind: an MX2 formula that does not parse, or
//     a polytype outside {2H, 1T}.
//
// The slab-construction algorithms follow the Atomic Simulation
// Environment's build module; Publication returns the record to cite.
package lattice

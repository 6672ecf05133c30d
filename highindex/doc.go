// Package highindex composes high-index (stepped and kinked) surface
// orientations from microfacet notation: a terrace plane decorated with
// step and kink facets of given lengths.
//
// What:
//
//   - Info resolves a Params set into the effective Miller index of the
//     composed surface plus the symmetry-equivalent kink and step
//     orientations that lie in the terrace plane.
//   - Build realizes the composed orientation as a slab through the
//     Miller-index surface engine, bottom-anchored with all vacuum above
//     the top layer.
//
// How:
//
//	The kink and step inputs are expanded into their 48 cubic
//	symmetry equivalents (deterministically ordered), filtered to the
//	terrace plane, and combined with the facet lengths into two lattice
//	vectors whose double cross product with the terrace normal gives the
//	composed Miller index, reduced by its gcd.
//
// Defaults:
//
//	Zero facet lengths select (terrace, step, kink) = (3, 3, 1); zero
//	Layers selects 60; zero Vacuum selects 10. The four orientation
//	vectors have no defaults and must be non-zero.
//
// Errors:
//
//   - ErrKinkNotInTerrace, ErrStepNotInTerrace: no symmetry equivalent
//     of the kink or step lies in the terrace plane.
//   - ErrDegenerate: a zero orientation vector, or a combination whose
//     composed index vanishes.
//   - lattice.ErrNotCubic: a non-cubic crystal family.
package highindex

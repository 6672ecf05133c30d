// Package atomforge builds atomic-scale structural models — bulk crystals,
// low-index surfaces, and stepped/kinked high-Miller-index surfaces — and
// gives any producer of one-or-more atomic configurations a uniform,
// frame-indexed access contract.
//
// 🚀 What is atomforge?
//
//	A deterministic, in-memory structure-building library:
//		• structure/ — the Structure value object: species, positions, 3×3 cell, PBC flags
//		• frames/    — frame-indexed access to any multi-structure producer
//		• lattice/   — bulk cells, closed-form slab generators, the generic
//		               by-Miller-index engine, and the cubic point group
//		• surface/   — named surface families with a uniform vacuum/centering policy
//		• highindex/ — terrace/step/kink microfacet composition (Van Hove–Somorjai)
//		• citation/  — idempotent attribution registry for the generator algorithms
//
// ✨ Why choose atomforge?
//
//   - Deterministic — same inputs always produce bit-identical slabs
//   - Value semantics — builders return fresh Structures and never mutate inputs
//   - Explicit errors — sentinel errors everywhere, errors.Is-friendly, no panics
//
// Quick ASCII example, a three-layer fcc(100) slab with vacuum above:
//
//	    ·  ·  ·  ·      vacuum
//	    ●  ●  ●  ●   ← surface layer (z = z_max)
//	     ●  ●  ●  ●
//	    ●  ●  ●  ●   ← bottom layer anchored near z = 0
//
// Dive into the per-package doc.go files for contracts, errors, and
// complexity notes.
//
//	go get github.com/atomforge/atomforge
package atomforge

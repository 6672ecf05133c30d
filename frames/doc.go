// Package frames gives any producer of N ≥ 0 structures a uniform,
// frame-indexed access contract, with negative-index and out-of-range
// semantics fixed in one place instead of re-implemented per producer.
//
// What:
//
//   - Producer is the capability set a multi-structure holder implements:
//     NumStructures and per-frame Structure computation.
//   - Translator is the optional extension for producers that accept
//     non-integer frame keys (names, timestamps, ...).
//   - Accessor wraps any Producer and adds index normalization (negative
//     frames count from the end), bounds checking, key translation, and
//     lazy restartable iteration.
//   - Series is a ready-made in-memory Producer with optional string
//     labels and periodic-wrap support.
//
// Why:
//
//   - Single-snapshot holders, trajectory holders, and on-the-fly
//     generators all answer "give me structure k" — centralizing the
//     off-by-one and negative-index arithmetic removes N copies of the
//     same bug.
//
// Concurrency:
//
//   - Accessor holds no state beyond the Producer reference. Concurrent
//     use is safe exactly when the Producer's own per-frame computation
//     is reentrant; producers must document their thread-safety.
//
// Errors:
//
//   - ErrFrameRange: frame, after negative-index normalization, outside
//     [0, NumStructures()).
//   - ErrNoTranslation: a non-integer frame key with no producer-supplied
//     translation.
package frames

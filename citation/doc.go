// Package citation accumulates attribution records for the external
// algorithms a structure-building call relied on.
//
// What:
//
//   - Record identifies one publication (key, title, authors, journal, year, DOI).
//   - Registry is a mutex-guarded, additive, idempotent set of Records.
//   - Default() returns the single process-lifetime registry; builders take
//     any Registry so tests can assert on registration without touching
//     shared state.
//
// Why:
//
//   - Slab generators adapt published crystallographic algorithms; callers
//     producing scientific output need the citations that a successful
//     build implies.
//
// Concurrency:
//
//   - Registry methods are safe for concurrent use. Add is idempotent per
//     Record.Key, so repeated registration from many builds is harmless.
package citation

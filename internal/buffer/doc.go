// Package buffer is the thread-safe facade over the piece-table core: it
// wraps internal/piecetree.Tree with a single-writer/multi-reader lock,
// routes batch edits through internal/applier, tracks a monotonic
// revision, and exposes a Snapshot type for lock-free reads of a point in
// time.
//
// Buffer is the package most callers outside this module should import;
// internal/piecetree, internal/applier, and internal/indent are the
// pieces it composes and are usable standalone by anything that needs
// finer control.
package buffer

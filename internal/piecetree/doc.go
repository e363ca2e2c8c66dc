// Package piecetree implements the text-buffer core: an immutable original
// buffer, an append-only change buffer, and a red-black tree of Piece
// descriptors augmented with per-node subtree byte size and subtree
// line-feed count (the order-statistic fields size_left/lf_left).
//
// The tree supports O(log n) positional lookups by byte offset or by
// (line, column), O(log n + k) range reads, and incremental edits that
// never rewrite bytes already written to either buffer.
//
// Tree is not safe for concurrent use; callers that need concurrent access
// should guard it with their own lock (see the buffer package for a
// ready-made single-writer/multi-reader wrapper).
package piecetree

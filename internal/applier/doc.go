// Package applier implements the edit-operation applier that sits on top
// of the piece-table tree: it validates a batch of ranged replacements,
// orders them to make bottom-up application safe, executes them against
// a tree, and produces the inverse operations and content-change events
// an undo stack or a view needs.
//
// The package depends only on the small Buffer interface, not on
// internal/piecetree directly, so it can be tested against a fake and
// reused against any tree implementation that satisfies the contract.
package applier

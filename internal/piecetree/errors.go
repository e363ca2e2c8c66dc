package piecetree

import "errors"

// Errors surfaced at the piece-tree boundary. Overlapping-range detection
// is an applier-level concern (see internal/applier); the core only ever
// rejects out-of-range offsets, ranges, and positions.
var (
	// ErrInvalidOffset indicates an offset is negative or greater than the
	// total byte length of the document.
	ErrInvalidOffset = errors.New("piecetree: offset out of range")

	// ErrInvalidRange indicates a range whose start is after its end, or
	// whose end falls outside the document.
	ErrInvalidRange = errors.New("piecetree: invalid range")

	// ErrInvalidPosition indicates a (line, column) position with a
	// nonpositive line or column number, or a line number beyond the
	// document's line count.
	ErrInvalidPosition = errors.New("piecetree: invalid position")
)

package buffer

import (
	"fmt"
	"sync/atomic"
)

// ByteOffset represents a 0-based byte position in the buffer.
type ByteOffset = int64

// Point represents a 1-based line and column position: line 1 is the
// document's first line, column 1 is the position immediately before
// its first byte.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Column != other.Column {
		if p.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// IsOrigin returns true if this is the document's first position (1:1).
func (p Point) IsOrigin() bool {
	return p.Line == 1 && p.Column == 1
}

// RevisionID uniquely identifies a buffer revision; every successful
// mutation advances it.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID generates a new, process-wide unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

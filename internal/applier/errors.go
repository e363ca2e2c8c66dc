package applier

import "errors"

var (
	// ErrOverlappingRanges is returned when two edit operations in the
	// same batch touch overlapping ranges. The buffer is left unmodified.
	ErrOverlappingRanges = errors.New("applier: overlapping ranges")

	// ErrInvalidRange is returned when an operation's range has its end
	// before its start. A position outside the document is rejected with
	// the error the Buffer's GetOffsetAt returns for it.
	ErrInvalidRange = errors.New("applier: invalid range")
)

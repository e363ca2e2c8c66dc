package piecetree

// piece is an immutable-shaped descriptor (its lineStarts vector is
// privately mutable only by the tree code that owns it, never shared
// between pieces) referencing a contiguous byte range of either the
// original buffer or the change buffer, plus the per-line byte-length
// metadata needed to answer line queries without rescanning bytes.
//
// Invariants:
//   - length == sum(lineStarts)
//   - lineFeedCnt == lineStarts.count() - 1
//   - length >= 0; a piece with length == 0 must be unlinked, not retained.
type piece struct {
	isOriginal  bool
	offset      int
	length      int
	lineFeedCnt int
	lineStarts  *prefixSumVector
}

// isEmpty reports whether this piece carries no bytes and should be elided.
func (p piece) isEmpty() bool {
	return p.length <= 0
}

// computeLineStarts scans chunk for '\n' and returns the line-feed count
// and the per-line byte length. Every entry includes its trailing '\n'
// except the last, which holds whatever trailing fragment follows the
// final newline (possibly empty, possibly the whole chunk if chunk has no
// newline at all).
//
// This is the only routine in the package that interprets raw bytes of the
// change buffer; every other operation in the tree is offset arithmetic
// over already-computed line-length vectors.
func computeLineStarts(chunk string) (lineFeedCount int, perLineLengths []int) {
	lineStart := 0
	for i := 0; i < len(chunk); i++ {
		if chunk[i] == '\n' {
			perLineLengths = append(perLineLengths, i-lineStart+1)
			lineStart = i + 1
			lineFeedCount++
		}
	}
	perLineLengths = append(perLineLengths, len(chunk)-lineStart)
	return lineFeedCount, perLineLengths
}

// newPiece builds a piece from a raw chunk of text, computing its line
// metadata directly. Used when a chunk must be scanned (e.g. text newly
// appended to the change buffer).
func newPiece(isOriginal bool, offset int, chunk string) piece {
	lfCnt, lineLengths := computeLineStarts(chunk)
	return piece{
		isOriginal:  isOriginal,
		offset:      offset,
		length:      len(chunk),
		lineFeedCnt: lfCnt,
		lineStarts:  newPrefixSumVector(lineLengths),
	}
}

// newPieceFromLineStarts builds a piece directly from precomputed per-line
// lengths, with no byte scanning. Used for the initial piece over the
// original buffer, whose line-start offsets are supplied by the caller
// (typically a text-source loader that already scanned the raw bytes)
// rather than recomputed here.
func newPieceFromLineStarts(isOriginal bool, offset, length int, lineLengths []int) piece {
	return piece{
		isOriginal:  isOriginal,
		offset:      offset,
		length:      length,
		lineFeedCnt: len(lineLengths) - 1,
		lineStarts:  newPrefixSumVector(lineLengths),
	}
}

// lineLengthsFromAbsoluteNewlines converts a list of absolute byte offsets
// of '\n' characters within text into the per-line length vector a piece
// expects, by pure arithmetic.
func lineLengthsFromAbsoluteNewlines(textLen int, newlineOffsets []int) []int {
	lengths := make([]int, 0, len(newlineOffsets)+1)
	prev := 0
	for _, nl := range newlineOffsets {
		lengths = append(lengths, nl-prev+1)
		prev = nl + 1
	}
	lengths = append(lengths, textLen-prev)
	return lengths
}

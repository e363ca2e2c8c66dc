package piecetree

import (
	"fmt"
	"strings"
)

// Tree is the piece-table document: an immutable original buffer, an
// append-only change buffer, and a red-black tree of pieces augmented
// with order-statistic summaries (sizeLeft, lfLeft) enabling O(log n)
// positional queries.
//
// Tree is not safe for concurrent use; wrap it in a lock if more than one
// goroutine needs access (see the buffer package).
type Tree struct {
	root    *node
	nilNode *node

	original string
	changes  []byte
}

// InitialText describes the document a Tree is constructed from: the
// text itself, plus (optionally) the absolute byte offsets of every '\n'
// in it. Supplying lineStartOffsets lets the constructor build the initial
// piece's per-line-length vector by pure arithmetic instead of scanning
// the (potentially large) original buffer — mirroring a text-source
// loader that already carries this array from its own scan of the raw
// buffer. If lineStartOffsets is nil, it is computed by a single scan.
type InitialText struct {
	Text             string
	LineStartOffsets []int
}

// New constructs a Tree from the given initial text.
func New(initial InitialText) *Tree {
	t := &Tree{nilNode: newSentinel()}
	t.root = t.nilNode

	if len(initial.Text) == 0 {
		return t
	}

	var lineLengths []int
	if initial.LineStartOffsets != nil {
		lineLengths = lineLengthsFromAbsoluteNewlines(len(initial.Text), initial.LineStartOffsets)
	} else {
		_, lineLengths = computeLineStarts(initial.Text)
	}

	t.original = initial.Text
	p := newPieceFromLineStarts(true, 0, len(initial.Text), lineLengths)
	t.insertRight(nil, p)
	return t
}

// NewFromString constructs a Tree from a plain string, scanning it once
// for line starts.
func NewFromString(s string) *Tree {
	return New(InitialText{Text: s})
}

// Len returns the total byte length of the document.
func (t *Tree) Len() int {
	return t.subtreeBytes(t.root)
}

// GetLineCount returns 1 + the total line-feed count across every piece,
// computed along the tree's rightmost spine.
func (t *Tree) GetLineCount() int {
	return 1 + t.subtreeLF(t.root)
}

// pieceText returns the substring of the owning buffer that n's piece
// references.
func (t *Tree) pieceText(n *node) string {
	if n.piece.isOriginal {
		return t.original[n.piece.offset : n.piece.offset+n.piece.length]
	}
	return string(t.changes[n.piece.offset : n.piece.offset+n.piece.length])
}

// nodeAt locates the piece containing byteOffset, returning the node and
// the remainder (the offset within that piece's bytes, 0 <= remainder <=
// piece.length). On ties at a piece boundary it returns the preceding
// node with remainder == its piece length, which both supports the
// append-coalescing fast path in Insert and gives GetValueInRange a
// consistent inclusive-end convention.
func (t *Tree) nodeAt(offset int) (*node, int) {
	x := t.root
	for !t.isSentinel(x) {
		switch {
		case x.sizeLeft > offset:
			x = x.left
		case x.sizeLeft+x.piece.length >= offset:
			return x, offset - x.sizeLeft
		default:
			offset -= x.sizeLeft + x.piece.length
			x = x.right
		}
	}
	return nil, 0
}

// getOffsetOfLineStart returns the absolute byte offset of the start of
// lineNumber (1-based). ok is false if lineNumber exceeds the document's
// line count.
func (t *Tree) getOffsetOfLineStart(lineNumber int) (offset int, ok bool) {
	if lineNumber <= 1 {
		return 0, true
	}
	targetLF := lineNumber - 2
	x := t.root
	for !t.isSentinel(x) {
		switch {
		case x.lfLeft > targetLF:
			x = x.left
		case x.lfLeft+x.piece.lineFeedCnt > targetLF:
			offset += x.sizeLeft
			li := targetLF - x.lfLeft
			offset += x.piece.lineStarts.getAccumulatedValue(li)
			return offset, true
		default:
			targetLF -= x.lfLeft + x.piece.lineFeedCnt
			offset += x.sizeLeft + x.piece.length
			x = x.right
		}
	}
	return 0, false
}

// lineFeedsBefore returns the number of '\n' bytes strictly before offset.
func (t *Tree) lineFeedsBefore(offset int) int {
	x := t.root
	remaining := offset
	lf := 0
	for !t.isSentinel(x) {
		switch {
		case x.sizeLeft > remaining:
			x = x.left
		case x.sizeLeft+x.piece.length >= remaining:
			lf += x.lfLeft
			within := remaining - x.sizeLeft
			li, _ := x.piece.lineStarts.getIndexOf(within)
			return lf + li
		default:
			lf += x.lfLeft + x.piece.lineFeedCnt
			remaining -= x.sizeLeft + x.piece.length
			x = x.right
		}
	}
	return lf
}

// lineLength returns the byte length of lineNumber's content, not
// counting its trailing '\n' (the last line never has one).
func (t *Tree) lineLength(lineNumber int) (int, bool) {
	total := t.GetLineCount()
	if lineNumber < 1 || lineNumber > total {
		return 0, false
	}
	start, _ := t.getOffsetOfLineStart(lineNumber)
	if lineNumber == total {
		return t.Len() - start, true
	}
	nextStart, _ := t.getOffsetOfLineStart(lineNumber + 1)
	return nextStart - 1 - start, true
}

// GetLineLength returns the byte length of lineNumber's content (1-based),
// not counting its trailing newline.
func (t *Tree) GetLineLength(lineNumber int) (int, error) {
	n, ok := t.lineLength(lineNumber)
	if !ok {
		return 0, ErrInvalidPosition
	}
	return n, nil
}

// GetOffsetAt converts a 1-based (line, column) position to a 0-based
// byte offset. column is clamped to the line's actual length if it
// exceeds it: there are no virtual columns past end-of-line, since
// GetOffsetAt (and nodeAt2, built on the same line-start arithmetic) only
// ever resolves to a real byte in the document.
func (t *Tree) GetOffsetAt(lineNumber, column int) (int, error) {
	if lineNumber < 1 || column < 1 {
		return 0, ErrInvalidPosition
	}
	lineStart, ok := t.getOffsetOfLineStart(lineNumber)
	if !ok {
		return 0, ErrInvalidPosition
	}
	lineLen, _ := t.lineLength(lineNumber)
	col := column - 1
	if col > lineLen {
		col = lineLen
	}
	return lineStart + col, nil
}

// GetPositionAt converts a 0-based byte offset to a 1-based (line,
// column) position.
func (t *Tree) GetPositionAt(offset int) (line, column int, err error) {
	total := t.Len()
	if offset < 0 || offset > total {
		return 0, 0, ErrInvalidOffset
	}
	lineNumber := t.lineFeedsBefore(offset) + 1
	lineStart, _ := t.getOffsetOfLineStart(lineNumber)
	return lineNumber, offset - lineStart + 1, nil
}

// nodeAt2 resolves a 1-based (line, column) position to the node and
// intra-piece remainder containing it (including the successor chase
// across pieces for lines that span more than one piece, and the same
// end-of-line column clamp as GetOffsetAt) by composing GetOffsetAt
// (which already performs that chase via the line-start search) with
// nodeAt.
func (t *Tree) nodeAt2(lineNumber, column int) (*node, int, error) {
	offset, err := t.GetOffsetAt(lineNumber, column)
	if err != nil {
		return nil, 0, err
	}
	n, rem := t.nodeAt(offset)
	if n == nil {
		panic(fmt.Sprintf("piecetree: nodeAt failed for an already-validated offset %d of a %d-byte document", offset, t.Len()))
	}
	return n, rem, nil
}

// GetValueInRange returns the document text in the byte range [start, end).
func (t *Tree) GetValueInRange(start, end int) (string, error) {
	if start < 0 || end < start || end > t.Len() {
		return "", ErrInvalidRange
	}
	if start == end {
		return "", nil
	}

	startNode, startRem := t.nodeAt(start)
	endNode, endRem := t.nodeAt(end)
	if startNode == nil || endNode == nil {
		panic(fmt.Sprintf("piecetree: nodeAt failed for an already-validated range [%d,%d) of a %d-byte document", start, end, t.Len()))
	}

	if startNode == endNode {
		text := t.pieceText(startNode)
		return text[startRem:endRem], nil
	}

	var sb strings.Builder
	sb.WriteString(t.pieceText(startNode)[startRem:])
	for n := t.treeSuccessor(startNode); n != endNode && !t.isSentinel(n); n = t.treeSuccessor(n) {
		sb.WriteString(t.pieceText(n))
	}
	sb.WriteString(t.pieceText(endNode)[:endRem])
	return sb.String(), nil
}

// GetLineContent returns the text of lineNumber (1-based), not including
// its terminating newline.
func (t *Tree) GetLineContent(lineNumber int) (string, error) {
	start, ok := t.getOffsetOfLineStart(lineNumber)
	if !ok {
		return "", ErrInvalidPosition
	}
	length, ok := t.lineLength(lineNumber)
	if !ok {
		return "", ErrInvalidPosition
	}
	return t.GetValueInRange(start, start+length)
}

// GetLineMinColumn is always 1.
func (t *Tree) GetLineMinColumn(int) int { return 1 }

// GetLineMaxColumn is one past the line's last byte (GetLineLength + 1).
func (t *Tree) GetLineMaxColumn(lineNumber int) (int, error) {
	n, err := t.GetLineLength(lineNumber)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

// GetLineFirstNonWhitespaceColumn returns the 1-based column of the first
// non-whitespace byte on lineNumber, or 0 if the line is entirely
// whitespace.
func (t *Tree) GetLineFirstNonWhitespaceColumn(lineNumber int) (int, error) {
	content, err := t.GetLineContent(lineNumber)
	if err != nil {
		return 0, err
	}
	for i := 0; i < len(content); i++ {
		if !isSpaceOrTab(content[i]) {
			return i + 1, nil
		}
	}
	return 0, nil
}

// GetLineLastNonWhitespaceColumn returns one past the 1-based column of
// the last non-whitespace byte on lineNumber, or 0 if the line is
// entirely whitespace.
func (t *Tree) GetLineLastNonWhitespaceColumn(lineNumber int) (int, error) {
	content, err := t.GetLineContent(lineNumber)
	if err != nil {
		return 0, err
	}
	for i := len(content) - 1; i >= 0; i-- {
		if !isSpaceOrTab(content[i]) {
			return i + 2, nil
		}
	}
	return 0, nil
}

func isSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}

// Insert appends value to the change buffer and links it into the piece
// tree at offset, following the five structural insertion cases: append
// to the piece immediately left of offset, prepend to the piece
// immediately right, split a piece straddling offset, insert a brand-new
// node, or start the tree from empty.
func (t *Tree) Insert(offset int, value string) error {
	if value == "" {
		return nil
	}
	if offset < 0 || offset > t.Len() {
		return ErrInvalidOffset
	}

	// Case 1: empty tree.
	if t.isSentinel(t.root) {
		appendOffset := len(t.changes)
		t.changes = append(t.changes, value...)
		t.insertRight(nil, newPiece(false, appendOffset, value))
		return nil
	}

	n, remainder := t.nodeAt(offset)

	// Case 2: coalesce into the tail of the piece that already references
	// the contiguous end of the change buffer.
	if !n.piece.isOriginal && remainder == n.piece.length &&
		n.piece.offset+n.piece.length == len(t.changes) {
		t.changes = append(t.changes, value...)
		lfCnt, lineLens := computeLineStarts(value)
		lastIdx := n.piece.lineStarts.count() - 1
		n.piece.lineStarts.changeValue(lastIdx, n.piece.lineStarts.valueAt(lastIdx)+lineLens[0])
		if len(lineLens) > 1 {
			n.piece.lineStarts.insertValues(lastIdx+1, lineLens[1:])
		}
		n.piece.length += len(value)
		n.piece.lineFeedCnt += lfCnt
		t.updateMetadata(n, len(value), lfCnt)
		return nil
	}

	appendOffset := len(t.changes)
	t.changes = append(t.changes, value...)
	newPc := newPiece(false, appendOffset, value)

	switch {
	case remainder == 0:
		// Case 3: left edge of a piece.
		t.insertLeft(n, newPc)
	case remainder == n.piece.length:
		// Case 5: right edge, not eligible for coalescing.
		t.insertRight(n, newPc)
	default:
		// Case 4: strictly inside a piece — split, then link the right
		// half followed by the inserted piece, both as successors of the
		// now-truncated left half.
		t.splitAndInsert(n, remainder, newPc)
	}
	return nil
}

// splitAndInsert truncates n's piece to its first splitPos bytes, then
// links the trailing slice of the original piece and the inserted piece
// as successors, in that order, which (because insertRight always
// attaches at the anchor's immediate successor slot) produces the
// correct inorder sequence: n, inserted, trailing-slice.
func (t *Tree) splitAndInsert(n *node, splitPos int, inserted piece) {
	orig := n.piece
	li, rem := orig.lineStarts.getIndexOf(splitPos)

	leftLines := append([]int(nil), orig.lineStarts.values[:li]...)
	leftLines = append(leftLines, rem)

	rightFirst := orig.lineStarts.valueAt(li) - rem
	rightLines := append([]int{rightFirst}, orig.lineStarts.values[li+1:]...)

	leftPiece := piece{
		isOriginal: orig.isOriginal, offset: orig.offset, length: splitPos,
		lineFeedCnt: len(leftLines) - 1, lineStarts: newPrefixSumVector(leftLines),
	}
	rightPiece := piece{
		isOriginal: orig.isOriginal, offset: orig.offset + splitPos, length: orig.length - splitPos,
		lineFeedCnt: len(rightLines) - 1, lineStarts: newPrefixSumVector(rightLines),
	}

	deltaBytes := leftPiece.length - orig.length
	deltaLF := leftPiece.lineFeedCnt - orig.lineFeedCnt
	n.piece = leftPiece
	t.updateMetadata(n, deltaBytes, deltaLF)

	t.insertRight(n, rightPiece)
	t.insertRight(n, inserted)
}

// truncateHead shrinks n's piece in place to keep only its first newLen
// bytes, discarding the tail. Reports whether the piece became empty
// (callers must then rbDelete it — zero-length pieces are never kept).
func (t *Tree) truncateHead(n *node, newLen int) bool {
	orig := n.piece
	if newLen <= 0 {
		return true
	}
	if newLen >= orig.length {
		return false
	}
	li, rem := orig.lineStarts.getIndexOf(newLen)
	newLines := append([]int(nil), orig.lineStarts.values[:li]...)
	newLines = append(newLines, rem)

	newPieceVal := piece{
		isOriginal: orig.isOriginal, offset: orig.offset, length: newLen,
		lineFeedCnt: len(newLines) - 1, lineStarts: newPrefixSumVector(newLines),
	}
	deltaBytes := newPieceVal.length - orig.length
	deltaLF := newPieceVal.lineFeedCnt - orig.lineFeedCnt
	n.piece = newPieceVal
	t.updateMetadata(n, deltaBytes, deltaLF)
	return false
}

// dropHead shrinks n's piece in place to discard its first skip bytes.
// Reports whether the piece became empty.
func (t *Tree) dropHead(n *node, skip int) bool {
	orig := n.piece
	if skip >= orig.length {
		return true
	}
	if skip <= 0 {
		return false
	}
	li, rem := orig.lineStarts.getIndexOf(skip)
	newFirst := orig.lineStarts.valueAt(li) - rem
	newLines := append([]int{newFirst}, orig.lineStarts.values[li+1:]...)

	newPieceVal := piece{
		isOriginal: orig.isOriginal, offset: orig.offset + skip, length: orig.length - skip,
		lineFeedCnt: len(newLines) - 1, lineStarts: newPrefixSumVector(newLines),
	}
	deltaBytes := newPieceVal.length - orig.length
	deltaLF := newPieceVal.lineFeedCnt - orig.lineFeedCnt
	n.piece = newPieceVal
	t.updateMetadata(n, deltaBytes, deltaLF)
	return false
}

// Delete removes count bytes starting at offset, following the five
// structural deletion cases: entirely within one piece, spanning a
// prefix or suffix of a piece, spanning whole pieces in between, and the
// combination of a partial piece at each end.
func (t *Tree) Delete(offset, count int) error {
	if count == 0 {
		return nil
	}
	if offset < 0 || count < 0 || offset+count > t.Len() {
		return ErrInvalidRange
	}

	startNode, startRem := t.nodeAt(offset)
	endNode, endRem := t.nodeAt(offset + count)
	if startNode == nil || endNode == nil {
		panic(fmt.Sprintf("piecetree: nodeAt failed for an already-validated delete range [%d,%d) of a %d-byte document", offset, offset+count, t.Len()))
	}

	if startNode == endNode {
		t.deleteWithinNode(startNode, startRem, endRem)
		return nil
	}

	t.deleteAcrossNodes(startNode, startRem, endNode, endRem)
	return nil
}

// deleteWithinNode handles a delete range fully contained in one piece.
func (t *Tree) deleteWithinNode(n *node, startRem, endRem int) {
	orig := n.piece
	switch {
	case startRem == 0 && endRem == orig.length:
		t.rbDelete(n)
	case startRem == 0:
		t.dropHead(n, endRem)
	case endRem == orig.length:
		t.truncateHead(n, startRem)
	default:
		li, rem := orig.lineStarts.getIndexOf(startRem)
		leftLines := append([]int(nil), orig.lineStarts.values[:li]...)
		leftLines = append(leftLines, rem)
		leftPiece := piece{
			isOriginal: orig.isOriginal, offset: orig.offset, length: startRem,
			lineFeedCnt: len(leftLines) - 1, lineStarts: newPrefixSumVector(leftLines),
		}

		li2, rem2 := orig.lineStarts.getIndexOf(endRem)
		rightFirst := orig.lineStarts.valueAt(li2) - rem2
		rightLines := append([]int{rightFirst}, orig.lineStarts.values[li2+1:]...)
		rightPiece := piece{
			isOriginal: orig.isOriginal, offset: orig.offset + endRem, length: orig.length - endRem,
			lineFeedCnt: len(rightLines) - 1, lineStarts: newPrefixSumVector(rightLines),
		}

		deltaBytes := leftPiece.length - orig.length
		deltaLF := leftPiece.lineFeedCnt - orig.lineFeedCnt
		n.piece = leftPiece
		t.updateMetadata(n, deltaBytes, deltaLF)

		if !rightPiece.isEmpty() {
			t.insertRight(n, rightPiece)
		}
	}
}

// deleteAcrossNodes handles a delete range spanning more than one piece:
// the start node's tail and the end node's head are shrunk, every node
// strictly between them is unlinked, and either end node is unlinked too
// if it collapsed to zero length.
func (t *Tree) deleteAcrossNodes(startNode *node, startRem int, endNode *node, endRem int) {
	var interior []*node
	for n := t.treeSuccessor(startNode); n != endNode && !t.isSentinel(n); n = t.treeSuccessor(n) {
		interior = append(interior, n)
	}

	startEmpty := t.truncateHead(startNode, startRem)
	endEmpty := t.dropHead(endNode, endRem)

	for _, n := range interior {
		t.rbDelete(n)
	}
	if endEmpty {
		t.rbDelete(endNode)
	}
	if startEmpty {
		t.rbDelete(startNode)
	}
}

// Validate walks the tree confirming its invariants: sizeLeft/lfLeft
// augmentation, piece line-start consistency, and standard red-black
// coloring/black-height rules. It is a debug-only routine; callers
// should gate it behind tests or an explicit diagnostic mode, not run it
// on every mutation in production.
func (t *Tree) Validate() error {
	if t.isSentinel(t.root) {
		return nil
	}
	if t.root.color != black {
		return fmt.Errorf("piecetree: root is not black")
	}
	_, err := t.validateNode(t.root)
	return err
}

func (t *Tree) validateNode(n *node) (blackHeight int, err error) {
	if t.isSentinel(n) {
		return 1, nil
	}

	if n.color == red {
		if n.left.color == red || n.right.color == red {
			return 0, fmt.Errorf("piecetree: red node has a red child")
		}
	}

	if n.piece.length <= 0 {
		return 0, fmt.Errorf("piecetree: node carries a non-positive length piece (%d)", n.piece.length)
	}
	if n.piece.length != n.piece.lineStarts.total() {
		return 0, fmt.Errorf("piecetree: piece length %d != sum(lineStarts) %d", n.piece.length, n.piece.lineStarts.total())
	}
	if n.piece.lineFeedCnt+1 != n.piece.lineStarts.count() {
		return 0, fmt.Errorf("piecetree: lineFeedCnt+1 (%d) != lineStarts length (%d)", n.piece.lineFeedCnt+1, n.piece.lineStarts.count())
	}

	wantSizeLeft := t.subtreeBytes(n.left)
	if n.sizeLeft != wantSizeLeft {
		return 0, fmt.Errorf("piecetree: sizeLeft mismatch: have %d want %d", n.sizeLeft, wantSizeLeft)
	}
	wantLFLeft := t.subtreeLF(n.left)
	if n.lfLeft != wantLFLeft {
		return 0, fmt.Errorf("piecetree: lfLeft mismatch: have %d want %d", n.lfLeft, wantLFLeft)
	}

	leftHeight, err := t.validateNode(n.left)
	if err != nil {
		return 0, err
	}
	rightHeight, err := t.validateNode(n.right)
	if err != nil {
		return 0, err
	}
	if leftHeight != rightHeight {
		return 0, fmt.Errorf("piecetree: black-height mismatch (%d vs %d)", leftHeight, rightHeight)
	}

	height := leftHeight
	if n.color == black {
		height++
	}
	return height, nil
}

package buffer

import (
	"fmt"
	"io"
	"sync"

	"github.com/keystorm-labs/piecetext/internal/applier"
	"github.com/keystorm-labs/piecetext/internal/indent"
	"github.com/keystorm-labs/piecetext/internal/piecetree"
	"github.com/keystorm-labs/piecetext/internal/textsource"
)

// Buffer is a thread-safe facade over a piece-table tree: it guards the
// otherwise single-threaded, non-reentrant core with a
// single-writer/multi-reader lock, tracks a monotonic revision, and
// fans out content-change events through a Notifier.
type Buffer struct {
	mu   sync.RWMutex
	tree *piecetree.Tree

	revision RevisionID
	eol      string
	bom      string

	insertSpaces bool
	tabSize      int

	notifier *applier.Notifier
}

// NewBuffer creates an empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	return newBuffer(piecetree.New(piecetree.InitialText{}), opts)
}

// NewBufferFromString creates a buffer whose initial content is s.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	return newBuffer(piecetree.NewFromString(s), opts)
}

// NewBufferFromSource creates a buffer from a text-source boundary
// object, reusing its precomputed line-start offsets instead of
// rescanning the text, and adopting its EOL/BOM metadata.
func NewBufferFromSource(src textsource.Source, opts ...Option) *Buffer {
	tree := piecetree.New(piecetree.InitialText{Text: src.Text, LineStartOffsets: src.LineStarts})
	all := append([]Option{WithLineEnding(src.EOL), WithBOM(src.BOM)}, opts...)
	return newBuffer(tree, all)
}

// NewBufferFromReader reads r fully and constructs a buffer from it.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffer: reading source: %w", err)
	}
	text := string(data)
	all := append([]Option{WithDetectedLineEnding(text)}, opts...)
	return newBuffer(piecetree.NewFromString(text), all), nil
}

func newBuffer(tree *piecetree.Tree, opts []Option) *Buffer {
	b := &Buffer{
		tree:     tree,
		revision: NewRevisionID(),
		eol:      "\n",
		tabSize:  4,
		notifier: applier.NewNotifier(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Revision returns the buffer's current revision ID.
func (b *Buffer) Revision() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// LineEnding returns the buffer's recorded serialization EOL convention.
func (b *Buffer) LineEnding() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.eol
}

// Subscribe registers obs to receive content-change event batches
// produced by future ApplyEdits calls.
func (b *Buffer) Subscribe(obs applier.Observer) *applier.Subscription {
	return b.notifier.Subscribe(obs)
}

// Len returns the total byte length of the document.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tree.Len()
}

// LineCount returns the document's line count.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tree.GetLineCount()
}

// Text returns the document's full content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, _ := b.tree.GetValueInRange(0, b.tree.Len())
	return s
}

// TextRange returns the content in the byte range [start, end).
func (b *Buffer) TextRange(start, end int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tree.GetValueInRange(start, end)
}

// LineText returns the content of lineNumber (1-based), excluding its
// terminating newline.
func (b *Buffer) LineText(lineNumber int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tree.GetLineContent(lineNumber)
}

// LineLen returns the byte length of lineNumber's content.
func (b *Buffer) LineLen(lineNumber int) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tree.GetLineLength(lineNumber)
}

// OffsetToPoint converts a 0-based byte offset to a 1-based (line, column).
func (b *Buffer) OffsetToPoint(offset int) (Point, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	line, col, err := b.tree.GetPositionAt(offset)
	if err != nil {
		return Point{}, err
	}
	return Point{Line: line, Column: col}, nil
}

// PointToOffset converts a 1-based (line, column) to a 0-based byte offset.
func (b *Buffer) PointToOffset(p Point) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tree.GetOffsetAt(p.Line, p.Column)
}

// LineStartOffset returns the byte offset of the start of lineNumber.
func (b *Buffer) LineStartOffset(lineNumber int) (int, error) {
	return b.PointToOffset(Point{Line: lineNumber, Column: 1})
}

// GetLineLastNonWhitespaceColumnGraphemes returns the same "one past the
// last non-whitespace byte" column as the tree's byte-based
// GetLineLastNonWhitespaceColumn, but counted in grapheme clusters rather
// than bytes, for callers that render cursors at user-perceived character
// boundaries.
func (b *Buffer) GetLineLastNonWhitespaceColumnGraphemes(lineNumber int) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	byteColumn, err := b.tree.GetLineLastNonWhitespaceColumn(lineNumber)
	if err != nil {
		return 0, err
	}
	if byteColumn == 0 {
		return 0, nil
	}
	content, err := b.tree.GetLineContent(lineNumber)
	if err != nil {
		return 0, err
	}
	return GraphemeColumn(content, byteColumn-1), nil
}

// LineEndOffset returns the byte offset one past lineNumber's last byte
// (not including its terminating newline).
func (b *Buffer) LineEndOffset(lineNumber int) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	length, err := b.tree.GetLineLength(lineNumber)
	if err != nil {
		return 0, err
	}
	start, err := b.tree.GetOffsetAt(lineNumber, 1)
	if err != nil {
		return 0, err
	}
	return start + length, nil
}

// Insert inserts text at offset.
func (b *Buffer) Insert(offset int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.tree.Insert(offset, text); err != nil {
		return err
	}
	b.revision = NewRevisionID()
	return nil
}

// Delete removes count bytes starting at offset.
func (b *Buffer) Delete(offset, count int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.tree.Delete(offset, count); err != nil {
		return err
	}
	b.revision = NewRevisionID()
	return nil
}

// Replace replaces the count bytes at offset with text.
func (b *Buffer) Replace(offset, count int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if count > 0 {
		if err := b.tree.Delete(offset, count); err != nil {
			return err
		}
	}
	if text != "" {
		if err := b.tree.Insert(offset, text); err != nil {
			return err
		}
	}
	b.revision = NewRevisionID()
	return nil
}

// ApplyEditsResult extends the applier's line/column-based result with a
// byte-offset Change/Edit per reverse edit, suitable for an undo stack
// that operates in the buffer's own Range vocabulary (see edit.go)
// instead of the applier's line/column PositionRange.
type ApplyEditsResult struct {
	applier.ApplyEditsResult
	UndoChanges []Change
}

// UndoEdits converts UndoChanges to the plain Edit form a caller would
// feed back through Buffer.ApplyEdits (via its own PositionRange
// conversion) or a lower-level Insert/Delete/Replace to undo the batch.
// Every returned range addresses the post-batch content, in ascending
// order, so applying them one at a time with Insert/Delete/Replace must
// start from the last one.
func (r ApplyEditsResult) UndoEdits() []Edit {
	edits := make([]Edit, len(r.UndoChanges))
	for i, c := range r.UndoChanges {
		edits[i] = c.ToEdit()
	}
	return edits
}

// ApplyEdits validates, orders, and executes a batch of ranged
// replacements as a single atomic operation, then notifies subscribers
// with the resulting content-change events.
func (b *Buffer) ApplyEdits(ops []applier.EditOperation, recordTrimAutoWhitespace bool) (ApplyEditsResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	result, err := applier.ApplyEdits(b.tree, ops, recordTrimAutoWhitespace)
	if err != nil {
		return ApplyEditsResult{}, err
	}
	b.revision = NewRevisionID()
	b.notifier.Notify(result.Changes)

	undoChanges := make([]Change, 0, len(result.ReverseEdits))
	for _, r := range result.ReverseEdits {
		c, ok := b.reverseEditToChange(r)
		if ok {
			undoChanges = append(undoChanges, c)
		}
	}

	return ApplyEditsResult{ApplyEditsResult: result, UndoChanges: undoChanges}, nil
}

// reverseEditToChange converts one applier.ReverseEdit, which describes an
// undo operation in post-batch line/column terms, into a byte-offset
// Change describing the same operation. Called with b.mu already held and
// the tree already in its post-batch state, which is the state
// r.Range addresses.
//
// It does this by first reconstructing the Change for the edit that was
// just committed (currentRange now holds committed, having replaced
// whatever previously sat there, which r.Text restores on undo) and then
// calling Invert, rather than building the undo Change's fields by hand.
func (b *Buffer) reverseEditToChange(r applier.ReverseEdit) (Change, bool) {
	start, err := b.tree.GetOffsetAt(r.Range.StartLine, r.Range.StartColumn)
	if err != nil {
		return Change{}, false
	}
	end, err := b.tree.GetOffsetAt(r.Range.EndLine, r.Range.EndColumn)
	if err != nil {
		return Change{}, false
	}

	currentRange := NewRange(ByteOffset(start), ByteOffset(end))
	committed, err := b.tree.GetValueInRange(start, end)
	if err != nil {
		return Change{}, false
	}

	committedType := ChangeReplace
	switch {
	case r.Text == "" && committed != "":
		committedType = ChangeInsert
	case r.Text != "" && committed == "":
		committedType = ChangeDelete
	}

	committedChange := Change{
		Type:     committedType,
		Range:    currentRange,
		NewRange: currentRange,
		OldText:  r.Text,
		NewText:  committed,
	}

	undo := committedChange.Invert()
	undo.NewRange = NewRange(currentRange.Start, currentRange.Start+ByteOffset(len(r.Text)))
	return undo, true
}

// GuessIndent runs the indentation guesser over the current document.
func (b *Buffer) GuessIndent() (indent.Result, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return indent.Guess(indentReader{b.tree}, indent.Options{
		DefaultInsertSpaces: b.insertSpaces,
		DefaultTabSize:      b.tabSize,
	})
}

// indentReader adapts *piecetree.Tree's GetLineCount/GetLineContent to the
// LineCount/LineContent names indent.Reader expects.
type indentReader struct {
	tree *piecetree.Tree
}

func (r indentReader) LineCount() int { return r.tree.GetLineCount() }

func (r indentReader) LineContent(lineNumber int) (string, error) {
	return r.tree.GetLineContent(lineNumber)
}

// Validate walks the tree and confirms its invariants. Intended for
// tests and diagnostics, not production hot paths.
func (b *Buffer) Validate() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tree.Validate()
}

// Snapshot returns a read-only, independent view of the buffer's current
// content.
func (b *Buffer) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	text, _ := b.tree.GetValueInRange(0, b.tree.Len())
	return newSnapshot(text, b.revision)
}

package applier

// PositionRange is a 1-based line/column range, end-exclusive in the
// sense that (line, column) addresses the byte immediately before the
// character at that position.
type PositionRange struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// IsEmpty reports whether the range spans zero bytes.
func (r PositionRange) IsEmpty() bool {
	return r.StartLine == r.EndLine && r.StartColumn == r.EndColumn
}

// EditOperation is one ranged replacement in a batch passed to ApplyEdits.
type EditOperation struct {
	// Identifier is caller-assigned and threaded through unchanged into
	// the corresponding ReverseEdit, letting callers correlate them.
	Identifier string

	Range PositionRange
	Text  string

	// ForceMoveMarkers is threaded through to the reverse edit record;
	// the applier itself does not interpret it (marker tracking is out
	// of the core's scope).
	ForceMoveMarkers bool

	// IsAutoWhitespaceEdit marks an edit eligible for auto-whitespace
	// trimming bookkeeping when its range is empty.
	IsAutoWhitespaceEdit bool

	// SortIndex breaks ties when two operations share an end position.
	// If left at zero for more than one operation in a batch, ties break
	// on input order instead (each op's slice index is used as a
	// fallback sort index).
	SortIndex int
}

// ReverseEdit is one entry of the inverse batch a caller can apply to
// undo an ApplyEdits call.
type ReverseEdit struct {
	Identifier       string
	Range            PositionRange
	Text             string
	ForceMoveMarkers bool
}

// ContentChange is the interface implemented by every content-change
// event variant.
type ContentChange interface {
	isContentChange()
}

// LineChanged reports that lineNumber's content changed to newContent.
type LineChanged struct {
	LineNumber int
	NewContent string
}

func (LineChanged) isContentChange() {}

// LinesDeleted reports that lines [FromLineNumber, ToLineNumber]
// (inclusive, pre-edit numbering) were removed.
type LinesDeleted struct {
	FromLineNumber int
	ToLineNumber   int
}

func (LinesDeleted) isContentChange() {}

// LinesInserted reports that lines [FromLineNumber, ToLineNumber]
// (inclusive) were added, with JoinedText their content joined by "\n".
type LinesInserted struct {
	FromLineNumber int
	ToLineNumber   int
	JoinedText     string
}

func (LinesInserted) isContentChange() {}

// ApplyEditsResult is the outcome of a successful ApplyEdits call.
type ApplyEditsResult struct {
	ReverseEdits                  []ReverseEdit
	Changes                       []ContentChange
	TrimAutoWhitespaceLineNumbers []int
	MightContainRTL               bool
	MightContainNonBasicASCII     bool
}

// Buffer is the subset of the piece-table tree's contract the applier
// needs. *internal/piecetree.Tree satisfies it directly.
type Buffer interface {
	GetOffsetAt(line, column int) (int, error)
	GetPositionAt(offset int) (line, column int, err error)
	GetValueInRange(start, end int) (string, error)
	GetLineContent(line int) (string, error)
	GetLineCount() int
	Insert(offset int, value string) error
	Delete(offset, count int) error
}

// validatedEdit is the internal per-operation working record built
// during validation and reused through sorting, mutation, and event
// emission.
type validatedEdit struct {
	sortIndex            int
	identifier           string
	rng                  PositionRange
	rangeOffset          int
	rangeLength          int
	text                 string // EOL-normalized to "\n"
	lines                []string
	forceMoveMarkers     bool
	isAutoWhitespaceEdit bool
}

type autoWhitespaceCandidate struct {
	line       int
	oldContent string
}

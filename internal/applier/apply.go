package applier

import (
	"sort"
	"strings"
)

// ApplyEdits validates, orders, and executes ops against buf as a single
// batch. On success it returns the reverse edits needed to undo the
// batch, the content-change events it produced, and (when
// recordTrimAutoWhitespace is set) the line numbers whose trailing
// auto-inserted whitespace became a trim candidate.
//
// The buffer is left unmodified if validation fails (ErrOverlappingRanges
// or ErrInvalidRange).
func ApplyEdits(buf Buffer, ops []EditOperation, recordTrimAutoWhitespace bool) (ApplyEditsResult, error) {
	if len(ops) == 0 {
		return ApplyEditsResult{}, nil
	}

	validated := make([]*validatedEdit, len(ops))
	mightContainRTL := false
	mightContainNonBasicASCII := false

	for i, op := range ops {
		startOffset, err := buf.GetOffsetAt(op.Range.StartLine, op.Range.StartColumn)
		if err != nil {
			return ApplyEditsResult{}, err
		}
		endOffset, err := buf.GetOffsetAt(op.Range.EndLine, op.Range.EndColumn)
		if err != nil {
			return ApplyEditsResult{}, err
		}
		if endOffset < startOffset {
			return ApplyEditsResult{}, ErrInvalidRange
		}

		sortIndex := op.SortIndex
		if sortIndex == 0 {
			sortIndex = i
		}

		text := normalizeEOL(op.Text)
		validated[i] = &validatedEdit{
			sortIndex:            sortIndex,
			identifier:           op.Identifier,
			rng:                  op.Range,
			rangeOffset:          startOffset,
			rangeLength:          endOffset - startOffset,
			text:                 text,
			lines:                splitLines(text),
			forceMoveMarkers:     op.ForceMoveMarkers,
			isAutoWhitespaceEdit: op.IsAutoWhitespaceEdit,
		}

		if !mightContainRTL && containsRTL(op.Text) {
			mightContainRTL = true
		}
		if !mightContainNonBasicASCII && !isBasicASCII(op.Text) {
			mightContainNonBasicASCII = true
		}
	}

	sort.SliceStable(validated, func(i, j int) bool {
		return lessEndPositionAscending(validated[i], validated[j])
	})

	for i := 1; i < len(validated); i++ {
		prev, cur := validated[i-1], validated[i]
		if comparePosition(cur.rng.StartLine, cur.rng.StartColumn, prev.rng.EndLine, prev.rng.EndColumn) < 0 {
			return ApplyEditsResult{}, ErrOverlappingRanges
		}
	}

	inverse := computeInverseRanges(validated)

	var candidates []autoWhitespaceCandidate
	if recordTrimAutoWhitespace {
		for i, v := range validated {
			if v.isAutoWhitespaceEdit && v.rng.IsEmpty() {
				content, err := buf.GetLineContent(v.rng.StartLine)
				if err == nil {
					candidates = append(candidates, autoWhitespaceCandidate{line: inverse[i].StartLine, oldContent: content})
				}
			}
		}
	}

	reverseEdits := make([]ReverseEdit, len(validated))
	for i, v := range validated {
		text, err := buf.GetValueInRange(v.rangeOffset, v.rangeOffset+v.rangeLength)
		if err != nil {
			return ApplyEditsResult{}, err
		}
		reverseEdits[i] = ReverseEdit{
			Identifier:       v.identifier,
			Range:            inverse[i],
			Text:             text,
			ForceMoveMarkers: v.forceMoveMarkers,
		}
	}

	order := make([]int, len(validated))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return lessEndPositionAscending(validated[order[b]], validated[order[a]])
	})

	var changes []ContentChange
	for _, idx := range order {
		v := validated[idx]
		if v.rangeLength > 0 {
			if err := buf.Delete(v.rangeOffset, v.rangeLength); err != nil {
				return ApplyEditsResult{}, err
			}
		}
		if v.text != "" {
			if err := buf.Insert(v.rangeOffset, v.text); err != nil {
				return ApplyEditsResult{}, err
			}
		}
		changes = append(changes, emitContentChanges(buf, v)...)
	}

	var trimLines []int
	if recordTrimAutoWhitespace {
		trimLines = computeTrimAutoWhitespaceLineNumbers(buf, candidates)
	}

	return ApplyEditsResult{
		ReverseEdits:                  reverseEdits,
		Changes:                       changes,
		TrimAutoWhitespaceLineNumbers: trimLines,
		MightContainRTL:               mightContainRTL,
		MightContainNonBasicASCII:     mightContainNonBasicASCII,
	}, nil
}

func comparePosition(lineA, colA, lineB, colB int) int {
	if lineA != lineB {
		if lineA < lineB {
			return -1
		}
		return 1
	}
	switch {
	case colA < colB:
		return -1
	case colA > colB:
		return 1
	default:
		return 0
	}
}

func lessEndPositionAscending(a, b *validatedEdit) bool {
	c := comparePosition(a.rng.EndLine, a.rng.EndColumn, b.rng.EndLine, b.rng.EndColumn)
	if c != 0 {
		return c < 0
	}
	return a.sortIndex < b.sortIndex
}

// computeInverseRanges computes, for each op (in the ascending
// end-position order ApplyEdits already sorted them into), the range its
// replacement text will occupy once every earlier op in the batch has
// also been applied, so the reverse edit can later be expressed in the
// buffer's single, final post-batch coordinate space instead of each
// op's own pre-batch one.
func computeInverseRanges(ops []*validatedEdit) []PositionRange {
	result := make([]PositionRange, len(ops))

	var prevOp *validatedEdit
	prevEndLine, prevEndColumn := 0, 0

	for i, op := range ops {
		var startLine, startColumn int
		switch {
		case prevOp == nil:
			startLine, startColumn = op.rng.StartLine, op.rng.StartColumn
		case prevOp.rng.EndLine == op.rng.StartLine:
			startLine = prevEndLine
			startColumn = prevEndColumn + (op.rng.StartColumn - prevOp.rng.EndColumn)
		default:
			startLine = prevEndLine + (op.rng.StartLine - prevOp.rng.EndLine)
			startColumn = op.rng.StartColumn
		}

		var r PositionRange
		switch len(op.lines) {
		case 1:
			r = PositionRange{
				StartLine: startLine, StartColumn: startColumn,
				EndLine: startLine, EndColumn: startColumn + len(op.lines[0]),
			}
		default:
			lineCount := len(op.lines)
			endLine := startLine + lineCount - 1
			endColumn := len(op.lines[lineCount-1]) + 1
			r = PositionRange{StartLine: startLine, StartColumn: startColumn, EndLine: endLine, EndColumn: endColumn}
		}

		result[i] = r
		prevEndLine, prevEndColumn = r.EndLine, r.EndColumn
		prevOp = op
	}

	return result
}

// emitContentChanges produces the events for one already-applied
// operation, querying buf's state directly rather than hand-reconstructing
// the merged line content from the edit alone. ApplyEdits calls this right
// after applying v; because ops are applied in descending position order,
// the ops that precede v in the document have not been applied yet, so
// v's own line numbers still address the right lines.
func emitContentChanges(buf Buffer, v *validatedEdit) []ContentChange {
	startLine := v.rng.StartLine
	endLine := v.rng.EndLine
	deletedSpan := endLine - startLine
	insertedSpan := len(v.lines) - 1

	editing := deletedSpan
	if insertedSpan < editing {
		editing = insertedSpan
	}

	var changes []ContentChange
	for k := 0; k <= editing; k++ {
		lineNumber := startLine + k
		content, err := buf.GetLineContent(lineNumber)
		if err != nil {
			continue
		}
		changes = append(changes, LineChanged{LineNumber: lineNumber, NewContent: content})
	}

	switch {
	case deletedSpan > insertedSpan:
		changes = append(changes, LinesDeleted{FromLineNumber: startLine + editing + 1, ToLineNumber: endLine})
	case insertedSpan > deletedSpan:
		joined := strings.Join(v.lines[editing+1:], "\n")
		changes = append(changes, LinesInserted{
			FromLineNumber: startLine + editing + 1,
			ToLineNumber:   startLine + insertedSpan,
			JoinedText:     joined,
		})
	}

	return changes
}

// computeTrimAutoWhitespaceLineNumbers resolves the candidates recorded
// before the batch ran into the final list: sorted descending,
// deduplicated, and filtered to lines whose post-edit content changed,
// is non-empty, and is whitespace-only.
func computeTrimAutoWhitespaceLineNumbers(buf Buffer, candidates []autoWhitespaceCandidate) []int {
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].line > candidates[j].line
	})

	var result []int
	seen := map[int]bool{}
	for _, c := range candidates {
		if seen[c.line] {
			continue
		}
		seen[c.line] = true

		content, err := buf.GetLineContent(c.line)
		if err != nil {
			continue
		}
		if content == c.oldContent || content == "" || !isWhitespaceOnly(content) {
			continue
		}
		result = append(result, c.line)
	}
	return result
}

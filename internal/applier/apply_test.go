package applier

import (
	"testing"

	"github.com/keystorm-labs/piecetext/internal/piecetree"
)

func newTestBuffer(t *testing.T, text string) *piecetree.Tree {
	t.Helper()
	return piecetree.NewFromString(text)
}

func TestApplyEditsSingleInsert(t *testing.T) {
	buf := newTestBuffer(t, "hello world")

	result, err := ApplyEdits(buf, []EditOperation{
		{Range: PositionRange{StartLine: 1, StartColumn: 6, EndLine: 1, EndColumn: 6}, Text: ","},
	}, false)
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}

	got, _ := buf.GetValueInRange(0, buf.Len())
	if got != "hello, world" {
		t.Errorf("content = %q, want %q", got, "hello, world")
	}
	if len(result.ReverseEdits) != 1 {
		t.Fatalf("len(ReverseEdits) = %d, want 1", len(result.ReverseEdits))
	}
	if result.ReverseEdits[0].Text != "" {
		t.Errorf("reverse edit text = %q, want empty (pure insert)", result.ReverseEdits[0].Text)
	}
}

func TestApplyEditsReplaceRoundTrip(t *testing.T) {
	buf := newTestBuffer(t, "the quick fox")

	result, err := ApplyEdits(buf, []EditOperation{
		{Range: PositionRange{StartLine: 1, StartColumn: 5, EndLine: 1, EndColumn: 10}, Text: "slow"},
	}, false)
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}

	got, _ := buf.GetValueInRange(0, buf.Len())
	if got != "the slow fox" {
		t.Errorf("content = %q, want %q", got, "the slow fox")
	}

	undo := result.ReverseEdits[0]
	if _, err := ApplyEdits(buf, []EditOperation{
		{Range: undo.Range, Text: undo.Text, ForceMoveMarkers: undo.ForceMoveMarkers},
	}, false); err != nil {
		t.Fatalf("undo ApplyEdits: %v", err)
	}

	got, _ = buf.GetValueInRange(0, buf.Len())
	if got != "the quick fox" {
		t.Errorf("content after undo = %q, want %q", got, "the quick fox")
	}
}

func TestApplyEditsOverlapRejected(t *testing.T) {
	buf := newTestBuffer(t, "abcdef")

	_, err := ApplyEdits(buf, []EditOperation{
		{Range: PositionRange{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 4}, Text: "X"},
		{Range: PositionRange{StartLine: 1, StartColumn: 3, EndLine: 1, EndColumn: 6}, Text: "Y"},
	}, false)
	if err != ErrOverlappingRanges {
		t.Errorf("err = %v, want ErrOverlappingRanges", err)
	}

	got, _ := buf.GetValueInRange(0, buf.Len())
	if got != "abcdef" {
		t.Errorf("buffer mutated despite rejected batch: got %q", got)
	}
}

func TestApplyEditsMultipleNonOverlapping(t *testing.T) {
	buf := newTestBuffer(t, "one two three")

	_, err := ApplyEdits(buf, []EditOperation{
		{Range: PositionRange{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 4}, Text: "1"},
		{Range: PositionRange{StartLine: 1, StartColumn: 9, EndLine: 1, EndColumn: 14}, Text: "3"},
	}, false)
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}

	got, _ := buf.GetValueInRange(0, buf.Len())
	if got != "1 two 3" {
		t.Errorf("content = %q, want %q", got, "1 two 3")
	}
}

func TestApplyEditsLineChangeEvents(t *testing.T) {
	buf := newTestBuffer(t, "line one\nline two\nline three")

	result, err := ApplyEdits(buf, []EditOperation{
		{Range: PositionRange{StartLine: 2, StartColumn: 6, EndLine: 2, EndColumn: 9}, Text: "TWO"},
	}, false)
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}

	found := false
	for _, c := range result.Changes {
		if lc, ok := c.(LineChanged); ok && lc.LineNumber == 2 {
			found = true
			if lc.NewContent != "line TWO" {
				t.Errorf("LineChanged.NewContent = %q, want %q", lc.NewContent, "line TWO")
			}
		}
	}
	if !found {
		t.Errorf("no LineChanged event for line 2, got %#v", result.Changes)
	}
}

func TestApplyEditsLinesInsertedEvent(t *testing.T) {
	buf := newTestBuffer(t, "a\nb")

	result, err := ApplyEdits(buf, []EditOperation{
		{Range: PositionRange{StartLine: 1, StartColumn: 2, EndLine: 1, EndColumn: 2}, Text: "\nX\nY"},
	}, false)
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}

	var inserted *LinesInserted
	for _, c := range result.Changes {
		if li, ok := c.(LinesInserted); ok {
			inserted = &li
		}
	}
	if inserted == nil {
		t.Fatalf("no LinesInserted event, got %#v", result.Changes)
	}
	if inserted.JoinedText != "X\nY" {
		t.Errorf("JoinedText = %q, want %q", inserted.JoinedText, "X\nY")
	}
}

func TestApplyEditsLinesDeletedEvent(t *testing.T) {
	buf := newTestBuffer(t, "a\nb\nc\nd")

	result, err := ApplyEdits(buf, []EditOperation{
		{Range: PositionRange{StartLine: 1, StartColumn: 2, EndLine: 4, EndColumn: 1}, Text: ""},
	}, false)
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}

	var deleted *LinesDeleted
	for _, c := range result.Changes {
		if ld, ok := c.(LinesDeleted); ok {
			deleted = &ld
		}
	}
	if deleted == nil {
		t.Fatalf("no LinesDeleted event, got %#v", result.Changes)
	}
	if deleted.FromLineNumber != 2 || deleted.ToLineNumber != 4 {
		t.Errorf("LinesDeleted = {%d,%d}, want {2,4}", deleted.FromLineNumber, deleted.ToLineNumber)
	}
}

func TestApplyEditsEmptyBatch(t *testing.T) {
	buf := newTestBuffer(t, "unchanged")

	result, err := ApplyEdits(buf, nil, false)
	if err != nil {
		t.Fatalf("ApplyEdits(nil): %v", err)
	}
	if result.Changes != nil || result.ReverseEdits != nil {
		t.Errorf("ApplyEdits(nil) = %#v, want zero value", result)
	}
}

func TestApplyEditsMightContainRTL(t *testing.T) {
	buf := newTestBuffer(t, "hello")

	result, err := ApplyEdits(buf, []EditOperation{
		{Range: PositionRange{StartLine: 1, StartColumn: 6, EndLine: 1, EndColumn: 6}, Text: "א"},
	}, false)
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}
	if !result.MightContainRTL {
		t.Errorf("MightContainRTL = false, want true")
	}
}

func TestApplyEditsTrimAutoWhitespace(t *testing.T) {
	buf := newTestBuffer(t, "func foo() {\n  \n}")

	result, err := ApplyEdits(buf, []EditOperation{
		{Range: PositionRange{StartLine: 2, StartColumn: 1, EndLine: 2, EndColumn: 1}, Text: "  "},
		{
			Range:                PositionRange{StartLine: 2, StartColumn: 3, EndLine: 2, EndColumn: 3},
			Text:                 "",
			IsAutoWhitespaceEdit: true,
		},
	}, true)
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}

	found := false
	for _, ln := range result.TrimAutoWhitespaceLineNumbers {
		if ln == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("TrimAutoWhitespaceLineNumbers = %v, want to contain line 2", result.TrimAutoWhitespaceLineNumbers)
	}
}

package buffer

import "fmt"

// Edit is a single ranged replacement expressed in this package's own
// byte-offset Range vocabulary, as opposed to applier.EditOperation's
// line/column PositionRange. Buffer.ApplyEdits accepts the latter (since
// callers addressing a batch typically think in lines and columns) but
// hands back undo operations as Edit, since undoing a committed batch
// is naturally a byte-offset operation against the buffer's current
// content.
type Edit struct {
	Range   Range  // the span being replaced
	NewText string // the text replacing it
}

// NewEdit creates a new Edit.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// NewInsert creates an Edit that inserts text at offset.
func NewInsert(offset ByteOffset, text string) Edit {
	return Edit{
		Range:   Range{Start: offset, End: offset},
		NewText: text,
	}
}

// NewDelete creates an Edit that deletes the byte range [start, end).
func NewDelete(start, end ByteOffset) Edit {
	return Edit{
		Range:   Range{Start: start, End: end},
		NewText: "",
	}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range.String())
	}
	return fmt.Sprintf("Replace%s with %q", e.Range.String(), e.NewText)
}

// IsInsert returns true if this is a pure insertion (empty range).
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty() && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion (empty replacement).
func (e Edit) IsDelete() bool {
	return !e.Range.IsEmpty() && e.NewText == ""
}

// IsReplace returns true if this replaces existing text with new text.
func (e Edit) IsReplace() bool {
	return !e.Range.IsEmpty() && e.NewText != ""
}

// IsNoOp returns true if this edit does nothing.
func (e Edit) IsNoOp() bool {
	return e.Range.IsEmpty() && e.NewText == ""
}

// Delta returns the change in buffer length this edit would cause.
func (e Edit) Delta() ByteOffset {
	return ByteOffset(len(e.NewText)) - e.Range.Len()
}

// ChangeType categorizes the kind of replacement a Change describes.
type ChangeType uint8

const (
	ChangeInsert  ChangeType = iota // text was inserted at an empty range
	ChangeDelete                    // a non-empty range was replaced with nothing
	ChangeReplace                   // a non-empty range was replaced with other text
)

// String returns a string representation of the change type.
func (c ChangeType) String() string {
	switch c {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change is a fully self-describing record of one committed edit: the
// range it replaced, the range its replacement now occupies, and both
// the old and new text. Buffer.ApplyEdits builds one Change per
// applier.ReverseEdit in its result (see reverseEditToChange in
// buffer.go), since a ReverseEdit alone only carries the undo direction
// — a Change carries both directions and so can describe either the
// edit that was applied or, via Invert, the edit that undoes it.
type Change struct {
	Type     ChangeType
	Range    Range  // the range that was replaced
	NewRange Range  // the range the replacement text now occupies
	OldText  string // text removed by this change, if any
	NewText  string // text added by this change, if any
}

// Invert returns the Change that would undo this one: a replace inverts
// to a replace, an insert inverts to a delete of what it inserted, and a
// delete inverts to an insert of what it removed.
func (c Change) Invert() Change {
	switch c.Type {
	case ChangeInsert:
		return Change{
			Type:    ChangeDelete,
			Range:   c.NewRange,
			OldText: c.NewText,
		}
	case ChangeDelete:
		return Change{
			Type:     ChangeInsert,
			Range:    Range{Start: c.Range.Start, End: c.Range.Start},
			NewRange: c.Range,
			NewText:  c.OldText,
		}
	case ChangeReplace:
		return Change{
			Type:     ChangeReplace,
			Range:    c.NewRange,
			NewRange: c.Range,
			OldText:  c.NewText,
			NewText:  c.OldText,
		}
	default:
		return c
	}
}

// ToEdit discards Change's bookkeeping of the pre-edit state and
// returns just the replacement Buffer.Replace (or ApplyEdits) would need
// to reapply it.
func (c Change) ToEdit() Edit {
	return Edit{
		Range:   c.Range,
		NewText: c.NewText,
	}
}

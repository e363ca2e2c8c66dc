package buffer

import "testing"

func TestSnapshotLines(t *testing.T) {
	b := NewBufferFromString("a\nb\nc")
	snap := b.Snapshot()

	lines := snap.Lines()
	want := []string{"a", "b", "c"}
	if len(lines) != len(want) {
		t.Fatalf("Lines() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
	if snap.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", snap.LineCount())
	}
}

func TestSnapshotBytesAndRunes(t *testing.T) {
	snap := newSnapshot("héllo", 1)

	if string(snap.Bytes()) != "héllo" {
		t.Errorf("Bytes() = %q, want %q", snap.Bytes(), "héllo")
	}
	if len(snap.Runes()) != 5 {
		t.Errorf("len(Runes()) = %d, want 5", len(snap.Runes()))
	}
	if snap.Len() != len("héllo") {
		t.Errorf("Len() = %d, want %d", snap.Len(), len("héllo"))
	}
}

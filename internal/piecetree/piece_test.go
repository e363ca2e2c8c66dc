package piecetree

import "testing"

func TestComputeLineStarts(t *testing.T) {
	tests := []struct {
		chunk      string
		wantLF     int
		wantLens   []int
	}{
		{"", 0, []int{0}},
		{"abc", 0, []int{3}},
		{"abc\n", 1, []int{4, 0}},
		{"abc\ndef", 1, []int{4, 3}},
		{"a\nb\nc", 2, []int{2, 2, 1}},
	}
	for _, tt := range tests {
		lf, lens := computeLineStarts(tt.chunk)
		if lf != tt.wantLF {
			t.Errorf("computeLineStarts(%q) lineFeedCount = %d, want %d", tt.chunk, lf, tt.wantLF)
		}
		if len(lens) != len(tt.wantLens) {
			t.Errorf("computeLineStarts(%q) lens = %v, want %v", tt.chunk, lens, tt.wantLens)
			continue
		}
		for i := range lens {
			if lens[i] != tt.wantLens[i] {
				t.Errorf("computeLineStarts(%q) lens[%d] = %d, want %d", tt.chunk, i, lens[i], tt.wantLens[i])
			}
		}
	}
}

func TestNewPieceMetadata(t *testing.T) {
	p := newPiece(true, 5, "abc\ndef")
	if p.length != 7 {
		t.Errorf("length = %d, want 7", p.length)
	}
	if p.lineFeedCnt != 1 {
		t.Errorf("lineFeedCnt = %d, want 1", p.lineFeedCnt)
	}
	if !p.isOriginal {
		t.Errorf("isOriginal = false, want true")
	}
	if p.offset != 5 {
		t.Errorf("offset = %d, want 5", p.offset)
	}
}

func TestPieceIsEmpty(t *testing.T) {
	if !(piece{length: 0}).isEmpty() {
		t.Errorf("zero-length piece should report isEmpty() true")
	}
	if (piece{length: 1}).isEmpty() {
		t.Errorf("non-zero-length piece should report isEmpty() false")
	}
}

func TestNewPieceFromLineStarts(t *testing.T) {
	p := newPieceFromLineStarts(true, 0, 8, []int{4, 4})
	if p.lineFeedCnt != 1 {
		t.Errorf("lineFeedCnt = %d, want 1", p.lineFeedCnt)
	}
	if p.length != 8 {
		t.Errorf("length = %d, want 8", p.length)
	}
}

func TestLineLengthsFromAbsoluteNewlines(t *testing.T) {
	text := "ab\ncd\nef"
	got := lineLengthsFromAbsoluteNewlines(len(text), []int{2, 5})
	want := []int{3, 3, 2}
	if len(got) != len(want) {
		t.Fatalf("lineLengthsFromAbsoluteNewlines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lineLengthsFromAbsoluteNewlines()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

package buffer

import "testing"

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a\nb", "\n"},
		{"a\r\nb", "\r\n"},
		{"a\rb", "\r"},
		{"no newline here", "\n"},
	}
	for _, tt := range tests {
		if got := DetectLineEnding(tt.in); got != tt.want {
			t.Errorf("DetectLineEnding(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWithLineEndingOption(t *testing.T) {
	b := NewBuffer(WithLineEnding("\r\n"))
	if b.LineEnding() != "\r\n" {
		t.Errorf("LineEnding() = %q, want %q", b.LineEnding(), "\r\n")
	}
}

func TestWithBOMOption(t *testing.T) {
	b := NewBuffer(WithBOM("BOM"))
	if b.bom != "BOM" {
		t.Errorf("bom = %q, want %q", b.bom, "BOM")
	}
}

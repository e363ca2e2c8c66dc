package applier

import "testing"

func TestContainsRTL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"hello", false},
		{"", false},
		{"123 + 456", false},
		{"שלום", true},
		{"مرحبا", true},
		{"hello שלום world", true},
	}
	for _, tt := range tests {
		if got := containsRTL(tt.in); got != tt.want {
			t.Errorf("containsRTL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

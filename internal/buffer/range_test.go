package buffer

import "testing"

func TestRangeBasics(t *testing.T) {
	r := NewRange(2, 5)
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if r.IsEmpty() {
		t.Errorf("IsEmpty() = true, want false")
	}
	if !r.IsValid() {
		t.Errorf("IsValid() = false, want true")
	}
	if r.String() != "[2:5)" {
		t.Errorf("String() = %q, want %q", r.String(), "[2:5)")
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(2, 5)
	tests := []struct {
		offset ByteOffset
		want   bool
	}{
		{1, false},
		{2, true},
		{4, true},
		{5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.offset); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestRangeContainsRange(t *testing.T) {
	outer := NewRange(0, 10)
	inner := NewRange(2, 5)
	if !outer.ContainsRange(inner) {
		t.Errorf("ContainsRange: outer should contain inner")
	}
	if inner.ContainsRange(outer) {
		t.Errorf("ContainsRange: inner should not contain outer")
	}
}

func TestRangeOverlaps(t *testing.T) {
	tests := []struct {
		a, b Range
		want bool
	}{
		{NewRange(0, 5), NewRange(3, 8), true},
		{NewRange(0, 5), NewRange(5, 8), false},
		{NewRange(0, 5), NewRange(6, 8), false},
	}
	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRangeIntersect(t *testing.T) {
	a := NewRange(0, 5)
	b := NewRange(3, 8)
	got := a.Intersect(b)
	if got != (Range{Start: 3, End: 5}) {
		t.Errorf("Intersect = %v, want [3:5)", got)
	}

	disjoint := NewRange(10, 15).Intersect(NewRange(0, 5))
	if !disjoint.IsEmpty() {
		t.Errorf("Intersect of disjoint ranges = %v, want empty", disjoint)
	}
}

func TestRangeUnion(t *testing.T) {
	a := NewRange(0, 5)
	b := NewRange(3, 8)
	got := a.Union(b)
	if got != (Range{Start: 0, End: 8}) {
		t.Errorf("Union = %v, want [0:8)", got)
	}
}

func TestRangeShift(t *testing.T) {
	r := NewRange(2, 5)
	got := r.Shift(10)
	if got != (Range{Start: 12, End: 15}) {
		t.Errorf("Shift(10) = %v, want [12:15)", got)
	}
}

func TestPointRangeBasics(t *testing.T) {
	r := NewPointRange(Point{1, 1}, Point{1, 5})
	if r.IsEmpty() {
		t.Errorf("IsEmpty() = true, want false")
	}
	if !r.IsValid() {
		t.Errorf("IsValid() = false, want true")
	}
	if !r.IsSingleLine() {
		t.Errorf("IsSingleLine() = false, want true")
	}
}

func TestPointRangeMultiLine(t *testing.T) {
	r := NewPointRange(Point{1, 1}, Point{3, 1})
	if r.IsSingleLine() {
		t.Errorf("IsSingleLine() = true, want false")
	}
}

func TestPointRangeContains(t *testing.T) {
	r := NewPointRange(Point{1, 2}, Point{1, 8})
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{1, 1}, false},
		{Point{1, 2}, true},
		{Point{1, 5}, true},
		{Point{1, 8}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

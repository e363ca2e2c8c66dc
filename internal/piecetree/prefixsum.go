package piecetree

import "sort"

// prefixSumVector is a mutable sequence of non-negative integers supporting
// indexed prefix-sum search in O(log n) and edits in O(n). Each Piece owns
// one of these, indexed by line within the piece: values[i] is the byte
// length of the i-th line (including its trailing '\n', for every line but
// possibly the last).
//
// The cumulative array is recomputed lazily: edits only mark it dirty, and
// the next query rebuilds it in one pass, trading a single O(n) rebuild
// for avoiding a sums update on every individual edit.
type prefixSumVector struct {
	values []int
	sums   []int
	dirty  bool
}

// newPrefixSumVector builds a vector from the given per-line lengths.
func newPrefixSumVector(values []int) *prefixSumVector {
	v := &prefixSumVector{values: values}
	v.dirty = true
	return v
}

// count returns the number of entries.
func (v *prefixSumVector) count() int {
	return len(v.values)
}

// total returns the sum of all entries.
func (v *prefixSumVector) total() int {
	v.ensureFresh()
	if len(v.sums) == 0 {
		return 0
	}
	return v.sums[len(v.sums)-1]
}

// valueAt returns the raw (un-accumulated) value at index i.
func (v *prefixSumVector) valueAt(i int) int {
	return v.values[i]
}

// ensureFresh recomputes the cumulative sum array if it is stale.
func (v *prefixSumVector) ensureFresh() {
	if !v.dirty {
		return
	}
	v.sums = make([]int, len(v.values))
	acc := 0
	for i, val := range v.values {
		acc += val
		v.sums[i] = acc
	}
	v.dirty = false
}

// getAccumulatedValue returns Σ values[0..i], inclusive of index i.
// getAccumulatedValue(-1) is defined to be 0.
func (v *prefixSumVector) getAccumulatedValue(i int) int {
	if i < 0 {
		return 0
	}
	v.ensureFresh()
	if i >= len(v.sums) {
		return v.total()
	}
	return v.sums[i]
}

// getIndexOf returns (index, remainder) such that
// Σ values[0..index-1] <= offset < Σ values[0..index].
// If offset is at or beyond the total, it returns the last index and the
// remainder past the end of that line.
func (v *prefixSumVector) getIndexOf(offset int) (index int, remainder int) {
	v.ensureFresh()
	if len(v.sums) == 0 {
		return 0, offset
	}
	// sort.Search finds the first sums[i] > offset, which is exactly the
	// line whose accumulated range contains offset.
	i := sort.Search(len(v.sums), func(i int) bool { return v.sums[i] > offset })
	if i >= len(v.sums) {
		i = len(v.sums) - 1
		prev := 0
		if i > 0 {
			prev = v.sums[i-1]
		}
		return i, offset - prev
	}
	prev := 0
	if i > 0 {
		prev = v.sums[i-1]
	}
	return i, offset - prev
}

// changeValue sets the value at index i and marks the cache dirty.
func (v *prefixSumVector) changeValue(i int, newValue int) {
	v.values[i] = newValue
	v.dirty = true
}

// insertValues inserts vs starting at index i.
func (v *prefixSumVector) insertValues(i int, vs []int) {
	if len(vs) == 0 {
		return
	}
	tail := append([]int(nil), v.values[i:]...)
	v.values = append(v.values[:i], append(append([]int(nil), vs...), tail...)...)
	v.dirty = true
}

// removeValues removes n values starting at index i.
func (v *prefixSumVector) removeValues(i int, n int) {
	if n <= 0 {
		return
	}
	end := i + n
	if end > len(v.values) {
		end = len(v.values)
	}
	v.values = append(v.values[:i], v.values[end:]...)
	v.dirty = true
}

// clone returns a deep copy, used when a piece's lineStarts vector needs
// to be split without aliasing the original's backing array.
func (v *prefixSumVector) clone() *prefixSumVector {
	values := append([]int(nil), v.values...)
	return newPrefixSumVector(values)
}

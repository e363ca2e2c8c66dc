package buffer

import "github.com/rivo/uniseg"

// GraphemeColumn returns the 1-based column, counted in grapheme
// clusters rather than raw bytes, of the byte at byteOffsetInLine within
// lineContent. The buffer's column addressing is byte-based throughout;
// this is an additive convenience for callers rendering cursors at
// user-perceived character boundaries (combining marks, emoji sequences)
// instead of byte boundaries.
func GraphemeColumn(lineContent string, byteOffsetInLine int) int {
	if byteOffsetInLine <= 0 {
		return 1
	}
	column := 1
	state := -1
	pos := 0
	remaining := lineContent
	for len(remaining) > 0 && pos < byteOffsetInLine {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(remaining, state)
		if cluster == "" {
			break
		}
		pos += len(cluster)
		remaining = rest
		state = newState
		column++
	}
	return column
}

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	count := 0
	state := -1
	remaining := s
	for len(remaining) > 0 {
		var cluster string
		cluster, remaining, _, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		if cluster == "" {
			break
		}
		count++
	}
	return count
}

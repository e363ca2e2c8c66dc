package piecetree

import "testing"

func TestTreeSuccessorWalksInorder(t *testing.T) {
	tr := NewFromString("a")
	mustInsert(t, tr, 1, "b")
	mustInsert(t, tr, 0, "c")
	validate(t, tr)

	var got []byte
	n := tr.leftmost(tr.root)
	for !tr.isSentinel(n) {
		got = append(got, tr.pieceText(n)...)
		n = tr.treeSuccessor(n)
	}
	if string(got) != "cab" {
		t.Errorf("inorder walk via treeSuccessor produced %q, want %q", got, "cab")
	}
}

func TestTreePredecessorWalksReverseInorder(t *testing.T) {
	tr := NewFromString("a")
	mustInsert(t, tr, 1, "b")
	mustInsert(t, tr, 0, "c")
	validate(t, tr)

	var got []byte
	n := tr.rightmost(tr.root)
	for !tr.isSentinel(n) {
		got = append(got, tr.pieceText(n)...)
		n = tr.treePredecessor(n)
	}
	if string(got) != "bac" {
		t.Errorf("reverse inorder walk via treePredecessor produced %q, want %q", got, "bac")
	}
}

func TestLeftmostRightmostOfSentinelIsSentinel(t *testing.T) {
	tr := NewFromString("x")
	if !tr.isSentinel(tr.leftmost(tr.nilNode)) {
		t.Errorf("leftmost(nilNode) should be the sentinel")
	}
	if !tr.isSentinel(tr.rightmost(tr.nilNode)) {
		t.Errorf("rightmost(nilNode) should be the sentinel")
	}
}

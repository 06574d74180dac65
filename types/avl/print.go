package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Print writes an ASCII picture of the tree to w, right subtree on top.
// Each node shows its element formatted by format, height and subtree size.
// Returns height of the tree.
func (s *Set[T]) Print(w io.Writer, format func(T) string) int {
	return s.print(w, format, s.root, "", branchRoot)
}

func (s *Set[T]) print(w io.Writer, format func(T) string, v nodeIndex, prefix string, br branch) int {
	if v == none {
		return 0
	}
	n := &s.nodes[v]
	rd, ld := 0, 0
	if n.right != none {
		t := "       "
		if br == branchLeft {
			t = "|      "
		}
		rd = s.print(w, format, n.right, prefix+t, branchRight)
	}
	switch br {
	case branchRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case branchLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case branchRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%s h=%d n=%d\n", format(n.value), n.height, n.size)
	if n.left != none {
		t := "       "
		if br == branchRight {
			t = "|      "
		}
		ld = s.print(w, format, n.left, prefix+t, branchLeft)
	}
	return 1 + max(rd, ld)
}

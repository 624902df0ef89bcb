package Trees

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	brRoot branch = iota
	brLeft
	brRight
)

// print an ASCII graphic representation of the tree, one node per line with
// the right subtree above its parent. label adds the tree specific metadata
// and may be nil.
func (u *base[T, M]) print(w io.Writer, label func(*node[T, M]) string) {
	printTree(w, u.root, "", brRoot, label)
}

// internal print - returns the maximum depth of the tree
func printTree[T, M any](w io.Writer, n *node[T, M], prefix string, br branch, label func(*node[T, M]) string) int {
	if n == nil {
		return 0
	}
	rd, ld := 0, 0
	if n.r != nil {
		t := "       "
		if br == brLeft {
			t = "|      "
		}
		rd = printTree(w, n.r, prefix+t, brRight, label)
	}
	switch br {
	case brRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case brLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case brRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if label == nil {
		fmt.Fprintf(w, "%v\n", n.v)
	} else {
		fmt.Fprintf(w, "%v %s\n", n.v, label(n))
	}
	if n.l != nil {
		t := "       "
		if br == brRight {
			t = "|      "
		}
		ld = printTree(w, n.l, prefix+t, brLeft, label)
	}
	return 1 + max(rd, ld)
}

package Trees

import (
	"cmp"
	"io"
)

type color uint8

const (
	red color = iota
	black
)

func (c color) String() string {
	if c == red {
		return "R"
	}
	return "B"
}

// RBTree is a red-black tree: the root is black, a red node has no red child
// and every path from a node down to a nil child passes the same number of
// black nodes. nil children count as black.
// The height is at most 2*log2(n+1), so D is of O(log n). Compared to
// AVLTree it rotates less on Remove and is less strictly balanced.
type RBTree[T any] struct {
	base[T, color]
}

// NewRBTree for an ordered T.
func NewRBTree[T cmp.Ordered](allowDuplicates bool) *RBTree[T] {
	return NewRBTreeFunc[T](allowDuplicates, cmp.Compare[T])
}

// NewRBTreeFunc orders the items by compare, which returns a negative number
// when a<b, 0 when a==b and a positive number when a>b.
func NewRBTreeFunc[T any](allowDuplicates bool, compare func(a, b T) int) *RBTree[T] {
	return &RBTree[T]{base[T, color]{dups: allowDuplicates, cmp: compare}}
}

func isRed[T any](n *node[T, color]) bool {
	return n != nil && n.m == red
}

func isBlack[T any](n *node[T, color]) bool {
	return n == nil || n.m == black
}

// Insert [OrderedTree.Insert]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Insert(v T) error {
	n := &node[T, color]{v: v, m: red}
	if !u.insertNode(n) {
		return ErrDuplicate
	}
	u.adjustTreeAfterInsertion(n)
	return nil
}

func (u *RBTree[T]) InsertAll(vs []T) error {
	return u.insertAll(vs, u.Insert)
}

// adjustTreeAfterInsertion removes a red-red violation between the newly
// inserted red node n and its parent.
func (u *RBTree[T]) adjustTreeAfterInsertion(n *node[T, color]) {
	// the root is black, so a red parent always has a parent
	for isRed(n.p) {
		p := n.p
		g := p.p
		if p == g.l {
			if uncle := g.r; isRed(uncle) {
				p.m, uncle.m, g.m = black, black, red
				n = g
				continue
			}
			if n == p.r {
				u.rotateLeft(p)
				n, p = p, n
			}
			p.m, g.m = black, red
			u.rotateRight(g)
		} else {
			if uncle := g.l; isRed(uncle) {
				p.m, uncle.m, g.m = black, black, red
				n = g
				continue
			}
			if n == p.l {
				u.rotateRight(p)
				n, p = p, n
			}
			p.m, g.m = black, red
			u.rotateLeft(g)
		}
	}
	u.root.m = black
}

func (u *RBTree[T]) removeNode(n *node[T, color]) {
	if gone, x, parent := u.remove(n); gone.m == black {
		u.adjustTreeAfterRemoval(x, parent)
	}
}

// adjustTreeAfterRemoval restores the black height after a black node was
// detached. x is the node that took its place, which may be nil, so its
// parent is passed separately.
func (u *RBTree[T]) adjustTreeAfterRemoval(x, parent *node[T, color]) {
	for x != u.root && isBlack(x) {
		if x == parent.l {
			w := parent.r
			if isRed(w) {
				w.m, parent.m = black, red
				u.rotateLeft(parent)
				w = parent.r
			}
			if isBlack(w.l) && isBlack(w.r) {
				w.m = red
				x, parent = parent, parent.p
				continue
			}
			if isBlack(w.r) {
				w.l.m, w.m = black, red
				u.rotateRight(w)
				w = parent.r
			}
			w.m, parent.m, w.r.m = parent.m, black, black
			u.rotateLeft(parent)
		} else {
			w := parent.l
			if isRed(w) {
				w.m, parent.m = black, red
				u.rotateRight(parent)
				w = parent.l
			}
			if isBlack(w.l) && isBlack(w.r) {
				w.m = red
				x, parent = parent, parent.p
				continue
			}
			if isBlack(w.l) {
				w.r.m, w.m = black, red
				u.rotateLeft(w)
				w = parent.l
			}
			w.m, parent.m, w.l.m = parent.m, black, black
			u.rotateRight(parent)
		}
		x, parent = u.root, nil
	}
	if x != nil {
		x.m = black
	}
}

// Remove [OrderedTree.Remove]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Remove(v T) error {
	n, e := u.lookup(v)
	if e == nil {
		u.removeNode(n)
	}
	return e
}

func (u *RBTree[T]) RemoveMin() error {
	if u.root == nil {
		return ErrEmptyTree
	}
	u.removeNode(u.root.first())
	return nil
}

func (u *RBTree[T]) RemoveMax() error {
	if u.root == nil {
		return ErrEmptyTree
	}
	u.removeNode(u.root.last())
	return nil
}

// blackHeight returns the number of black nodes on every path from n down to
// a nil child, counting the nil child, or -1 if the paths disagree or a red
// node has a red child.
func blackHeight[T any](n *node[T, color]) int {
	if n == nil {
		return 1
	}
	if isRed(n) && (isRed(n.l) || isRed(n.r)) {
		return -1
	}
	lb, rb := blackHeight(n.l), blackHeight(n.r)
	if lb < 0 || lb != rb {
		return -1
	}
	if n.m == black {
		lb++
	}
	return lb
}

// Corrupt [OrderedTree.Corrupt]
// Also verifies the color rules and the black height.
// Time: O(n); Space: O(D)
func (u *RBTree[T]) Corrupt() bool {
	return u.corrupt() || isRed(u.root) || blackHeight(u.root) < 0
}

// Print an ASCII drawing of the tree to w with the color of each node.
func (u *RBTree[T]) Print(w io.Writer) {
	u.print(w, func(n *node[T, color]) string { return n.m.String() })
}

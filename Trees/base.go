package Trees

import (
	"github.com/pkg/errors"
)

// base is the ordered-tree core shared by every tree in this package. It
// holds the nodes in binary search tree order and knows nothing about
// balance; the embedding tree calls insertNode and remove and then repairs
// its own invariants starting from the nodes these return.
// The exported methods here are the read only part of OrderedTree and are
// promoted into every tree.
type base[T, M any] struct {
	root *node[T, M]
	cnt  int
	dups bool
	cmp  func(a, b T) int // negative when a<b, 0 when a==b, positive when a>b
}

// replace makes nw take old's place under parent, or the root when parent==nil.
func (u *base[T, M]) replace(parent, old, nw *node[T, M]) {
	if parent == nil {
		u.root = nw
	} else if parent.l == old {
		parent.l = nw
	} else {
		parent.r = nw
	}
	if nw != nil {
		nw.p = parent
	}
}

// rotateLeft promotes n.r into the position of n and returns it. Metadata
// isn't touched.
func (u *base[T, M]) rotateLeft(n *node[T, M]) *node[T, M] {
	pivot := n.r
	n.r = pivot.l
	if pivot.l != nil {
		pivot.l.p = n
	}
	u.replace(n.p, n, pivot)
	pivot.l, n.p = n, pivot
	return pivot
}

// rotateRight promotes n.l into the position of n and returns it. Metadata
// isn't touched.
func (u *base[T, M]) rotateRight(n *node[T, M]) *node[T, M] {
	pivot := n.l
	n.l = pivot.r
	if pivot.r != nil {
		pivot.r.p = n
	}
	u.replace(n.p, n, pivot)
	pivot.r, n.p = n, pivot
	return pivot
}

// insertNode links the detached node n in as a leaf. Equal values go to the
// right. Returns false when an equal value exists and duplicates aren't
// allowed, in which case nothing changes.
// Time: O(D); Space: O(1)
func (u *base[T, M]) insertNode(n *node[T, M]) bool {
	var parent *node[T, M]
	goLeft := false
	for cur := u.root; cur != nil; {
		c := u.cmp(n.v, cur.v)
		if c == 0 && !u.dups {
			return false
		}
		parent, goLeft = cur, c < 0
		if goLeft {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	n.p = parent
	if parent == nil {
		u.root = n
	} else if goLeft {
		parent.l = n
	} else {
		parent.r = n
	}
	u.cnt++
	return true
}

// findNode returns the first node on the search path comparing equal to v.
// Time: O(D); Space: O(1)
func (u *base[T, M]) findNode(v T) *node[T, M] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// remove unlinks n from the tree. A node with 2 children takes the value of
// its in-order successor, which is then unlinked instead. Returns the node
// physically detached, the child that took its place (possibly nil) and the
// parent of both, which is where rebalancing should start.
// Time: O(D); Space: O(1)
func (u *base[T, M]) remove(n *node[T, M]) (gone, child, parent *node[T, M]) {
	if n.l != nil && n.r != nil {
		s := n.r.first()
		n.v = s.v
		n = s
	}
	if child = n.l; child == nil {
		child = n.r
	}
	parent = n.p
	u.replace(parent, n, child)
	n.p, n.l, n.r = nil, nil, nil
	u.cnt--
	return n, child, parent
}

// lookup is findNode with the error reporting shared by the public methods.
func (u *base[T, M]) lookup(v T) (*node[T, M], error) {
	if u.root == nil {
		return nil, ErrEmptyTree
	} else if n := u.findNode(v); n != nil {
		return n, nil
	}
	return nil, ErrNotFound
}

// insertAll calls insert on each item of vs, stopping at the first error.
func (u *base[T, M]) insertAll(vs []T, insert func(T) error) error {
	if vs == nil {
		return errors.Wrap(ErrInvalidArgument, "nil slice")
	}
	for i, v := range vs {
		if e := insert(v); e != nil {
			return errors.Wrapf(e, "item %d", i)
		}
	}
	return nil
}

func (u *base[T, M]) Contains(v T) bool {
	return u.findNode(v) != nil
}

func (u *base[T, M]) Find(v T) (T, error) {
	if n, e := u.lookup(v); e != nil {
		return *new(T), e
	} else {
		return n.v, nil
	}
}

func (u *base[T, M]) FindMin() (T, error) {
	if u.root == nil {
		return *new(T), ErrEmptyTree
	}
	return u.root.first().v, nil
}

func (u *base[T, M]) FindMax() (T, error) {
	if u.root == nil {
		return *new(T), ErrEmptyTree
	}
	return u.root.last().v, nil
}

// FindNextSmaller [OrderedTree.FindNextSmaller]
// Equal duplicates are skipped.
// Time: O(D+k) where k is the number of duplicates of v; Space: O(1)
func (u *base[T, M]) FindNextSmaller(v T) (T, error) {
	n, e := u.lookup(v)
	if e != nil {
		return *new(T), e
	}
	for n = n.prev(); n != nil && u.cmp(n.v, v) == 0; n = n.prev() {
	}
	if n == nil {
		return *new(T), ErrNoNeighbour
	}
	return n.v, nil
}

// FindNextLarger [OrderedTree.FindNextLarger]
// Equal duplicates are skipped.
// Time: O(D+k) where k is the number of duplicates of v; Space: O(1)
func (u *base[T, M]) FindNextLarger(v T) (T, error) {
	n, e := u.lookup(v)
	if e != nil {
		return *new(T), e
	}
	for n = n.next(); n != nil && u.cmp(n.v, v) == 0; n = n.next() {
	}
	if n == nil {
		return *new(T), ErrNoNeighbour
	}
	return n.v, nil
}

func (u *base[T, M]) FindAll(match func(T) bool) []T {
	var res []T
	if u.root == nil || match == nil {
		return res
	}
	for n := u.root.first(); n != nil; n = n.next() {
		if match(n.v) {
			res = append(res, n.v)
		}
	}
	return res
}

func (u *base[T, M]) ToSlice() []T {
	res := make([]T, 0, u.cnt)
	if u.root != nil {
		for n := u.root.first(); n != nil; n = n.next() {
			res = append(res, n.v)
		}
	}
	return res
}

// Height [OrderedTree.Height]
// Time: O(n); Space: O(D)
func (u *base[T, M]) Height() int {
	return max(0, u.root.height())
}

func (u *base[T, M]) Clear() {
	u.root, u.cnt = nil, 0
}

func (u *base[T, M]) Count() int {
	return u.cnt
}

func (u *base[T, M]) IsEmpty() bool {
	return u.cnt == 0
}

func (u *base[T, M]) AllowsDuplicates() bool {
	return u.dups
}

package Trees

import (
	"cmp"
	"fmt"
	"io"
)

// AVLTree is a binary search tree that keeps, at every node, the heights of
// the two subtrees within 1 of each other. Each node caches the height of its
// subtree, so the additional memory cost is size(int)*n.
// The worst case height of the tree is less than 1.44*log2(n+2)-0.33, so D is
// of O(log n).
type AVLTree[T any] struct {
	base[T, int]
	rotations int // number of single rotations done so far
}

// NewAVLTree for an ordered T.
func NewAVLTree[T cmp.Ordered](allowDuplicates bool) *AVLTree[T] {
	return NewAVLTreeFunc[T](allowDuplicates, cmp.Compare[T])
}

// NewAVLTreeFunc orders the items by compare, which returns a negative number
// when a<b, 0 when a==b and a positive number when a>b.
func NewAVLTreeFunc[T any](allowDuplicates bool, compare func(a, b T) int) *AVLTree[T] {
	return &AVLTree[T]{base: base[T, int]{dups: allowDuplicates, cmp: compare}}
}

// heightOf a subtree using the cached value; a missing child is -1.
func heightOf[T any](n *node[T, int]) int {
	if n == nil {
		return -1
	}
	return n.m
}

func updateHeight[T any](n *node[T, int]) {
	n.m = 1 + max(heightOf(n.l), heightOf(n.r))
}

func (u *AVLTree[T]) rotateLeftAt(n *node[T, int]) {
	p := u.rotateLeft(n)
	updateHeight(n)
	updateHeight(p)
	u.rotations++
}

func (u *AVLTree[T]) rotateRightAt(n *node[T, int]) {
	p := u.rotateRight(n)
	updateHeight(n)
	updateHeight(p)
	u.rotations++
}

// rebalanceTreeAt walks from n up to the root refreshing the cached heights
// and rotating every node whose subtrees differ in height by 2.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) rebalanceTreeAt(n *node[T, int]) {
	for ; n != nil; n = n.p {
		updateHeight(n)
		if lh, rh := heightOf(n.l), heightOf(n.r); lh >= rh+2 {
			if heightOf(n.l.l) < heightOf(n.l.r) {
				u.rotateLeftAt(n.l)
			}
			u.rotateRightAt(n)
		} else if rh >= lh+2 {
			if heightOf(n.r.r) < heightOf(n.r.l) {
				u.rotateRightAt(n.r)
			}
			u.rotateLeftAt(n)
		}
		// after a rotation n sits below the promoted node, which n.p now
		// points to and which the next iteration revisits.
	}
}

// Insert [OrderedTree.Insert]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Insert(v T) error {
	n := &node[T, int]{v: v}
	if !u.insertNode(n) {
		return ErrDuplicate
	}
	u.rebalanceTreeAt(n)
	return nil
}

func (u *AVLTree[T]) InsertAll(vs []T) error {
	return u.insertAll(vs, u.Insert)
}

func (u *AVLTree[T]) removeNode(n *node[T, int]) {
	_, _, parent := u.remove(n)
	u.rebalanceTreeAt(parent)
}

// Remove [OrderedTree.Remove]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Remove(v T) error {
	n, e := u.lookup(v)
	if e == nil {
		u.removeNode(n)
	}
	return e
}

func (u *AVLTree[T]) RemoveMin() error {
	if u.root == nil {
		return ErrEmptyTree
	}
	u.removeNode(u.root.first())
	return nil
}

func (u *AVLTree[T]) RemoveMax() error {
	if u.root == nil {
		return ErrEmptyTree
	}
	u.removeNode(u.root.last())
	return nil
}

// Height [OrderedTree.Height]
// Read from the root's cache.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Height() int {
	return max(0, heightOf(u.root))
}

// Corrupt [OrderedTree.Corrupt]
// Also verifies the cached heights and the balance at every node.
// Time: O(n); Space: O(D)
func (u *AVLTree[T]) Corrupt() bool {
	if u.corrupt() {
		return true
	}
	var check func(*node[T, int]) bool
	check = func(n *node[T, int]) bool {
		if n == nil {
			return true
		}
		lh, rh := heightOf(n.l), heightOf(n.r)
		return check(n.l) && check(n.r) && n.m == 1+max(lh, rh) && lh-rh <= 1 && rh-lh <= 1
	}
	return !check(u.root)
}

// Print an ASCII drawing of the tree to w with the cached height of each node.
func (u *AVLTree[T]) Print(w io.Writer) {
	u.print(w, func(n *node[T, int]) string { return fmt.Sprintf("h=%d", n.m) })
}

package Trees

import (
	"cmp"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// RankTree is an unbalanced binary search tree where every node also stores
// the size of its subtree. This gives the order statistics Rank and Select
// in O(D). The additional memory cost is size(S)*n.
// S is the type used for storing the subtree sizes; it should be a wide
// upperbound for the size of the tree as it's converted to uint by Rank.
type RankTree[T any, S constraints.Unsigned] struct {
	base[T, S]
}

// NewRankTree for an ordered T.
func NewRankTree[T cmp.Ordered, S constraints.Unsigned](allowDuplicates bool) *RankTree[T, S] {
	return NewRankTreeFunc[T, S](allowDuplicates, cmp.Compare[T])
}

// NewRankTreeFunc orders the items by compare, which returns a negative
// number when a<b, 0 when a==b and a positive number when a>b.
func NewRankTreeFunc[T any, S constraints.Unsigned](allowDuplicates bool, compare func(a, b T) int) *RankTree[T, S] {
	return &RankTree[T, S]{base[T, S]{dups: allowDuplicates, cmp: compare}}
}

func sizeOf[T any, S constraints.Unsigned](n *node[T, S]) S {
	if n == nil {
		return 0
	}
	return n.m
}

// updateSizes from n up to the root.
// Time: O(D); Space: O(1)
func updateSizes[T any, S constraints.Unsigned](n *node[T, S]) {
	for ; n != nil; n = n.p {
		n.m = sizeOf(n.l) + sizeOf(n.r) + 1
	}
}

// Insert [OrderedTree.Insert]
// Time: O(D); Space: O(1)
func (u *RankTree[T, S]) Insert(v T) error {
	n := &node[T, S]{v: v, m: 1}
	if !u.insertNode(n) {
		return ErrDuplicate
	}
	updateSizes(n.p)
	return nil
}

func (u *RankTree[T, S]) InsertAll(vs []T) error {
	return u.insertAll(vs, u.Insert)
}

func (u *RankTree[T, S]) removeNode(n *node[T, S]) {
	_, _, parent := u.remove(n)
	updateSizes(parent)
}

// Remove [OrderedTree.Remove]
// Time: O(D); Space: O(1)
func (u *RankTree[T, S]) Remove(v T) error {
	n, e := u.lookup(v)
	if e == nil {
		u.removeNode(n)
	}
	return e
}

func (u *RankTree[T, S]) RemoveMin() error {
	if u.root == nil {
		return ErrEmptyTree
	}
	u.removeNode(u.root.first())
	return nil
}

func (u *RankTree[T, S]) RemoveMax() error {
	if u.root == nil {
		return ErrEmptyTree
	}
	u.removeNode(u.root.last())
	return nil
}

// Rank of v is 1 plus the number of items in the tree strictly less than v.
// So the minimum has rank 1, and all duplicates of v share one rank. v must
// be in the tree.
// Time: O(D); Space: O(1)
func (u *RankTree[T, S]) Rank(v T) (uint, error) {
	if _, e := u.lookup(v); e != nil {
		return 0, e
	}
	var ra S = 0
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			ra += sizeOf(cur.l) + 1
			cur = cur.r
		}
	}
	return uint(ra) + 1, nil
}

// Select returns the k-th smallest item, counting from 1. Fails with
// ErrOutOfRange unless 1<=k<=Count().
// Time: O(D); Space: O(1)
func (u *RankTree[T, S]) Select(k uint) (T, error) {
	if k == 0 || k > uint(u.cnt) {
		return *new(T), ErrOutOfRange
	}
	t := S(k)
	cur := u.root
	for {
		if ls := sizeOf(cur.l); t < ls+1 {
			cur = cur.l
		} else if t == ls+1 {
			return cur.v, nil
		} else {
			t -= ls + 1
			cur = cur.r
		}
	}
}

// Corrupt [OrderedTree.Corrupt]
// Also verifies the cached subtree sizes.
// Time: O(n); Space: O(D)
func (u *RankTree[T, S]) Corrupt() bool {
	if u.corrupt() {
		return true
	}
	var check func(*node[T, S]) bool
	check = func(n *node[T, S]) bool {
		return n == nil || (check(n.l) && check(n.r) && n.m == sizeOf(n.l)+sizeOf(n.r)+1)
	}
	return !check(u.root)
}

// Print an ASCII drawing of the tree to w with the subtree size of each node.
func (u *RankTree[T, S]) Print(w io.Writer) {
	u.print(w, func(n *node[T, S]) string { return fmt.Sprintf("#%d", n.m) })
}

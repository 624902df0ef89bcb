package Trees

import (
	"cmp"
	"io"
)

// BSTree is a plain binary search tree that never rebalances. Its height
// depends on the insertion order and degrades to n-1 for sorted input.
type BSTree[T any] struct {
	base[T, struct{}]
}

// NewBSTree for an ordered T.
func NewBSTree[T cmp.Ordered](allowDuplicates bool) *BSTree[T] {
	return NewBSTreeFunc[T](allowDuplicates, cmp.Compare[T])
}

// NewBSTreeFunc orders the items by compare, which returns a negative number
// when a<b, 0 when a==b and a positive number when a>b.
func NewBSTreeFunc[T any](allowDuplicates bool, compare func(a, b T) int) *BSTree[T] {
	return &BSTree[T]{base[T, struct{}]{dups: allowDuplicates, cmp: compare}}
}

// Insert [OrderedTree.Insert]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) error {
	if !u.insertNode(&node[T, struct{}]{v: v}) {
		return ErrDuplicate
	}
	return nil
}

func (u *BSTree[T]) InsertAll(vs []T) error {
	return u.insertAll(vs, u.Insert)
}

// Remove [OrderedTree.Remove]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Remove(v T) error {
	n, e := u.lookup(v)
	if e == nil {
		u.remove(n)
	}
	return e
}

func (u *BSTree[T]) RemoveMin() error {
	if u.root == nil {
		return ErrEmptyTree
	}
	u.remove(u.root.first())
	return nil
}

func (u *BSTree[T]) RemoveMax() error {
	if u.root == nil {
		return ErrEmptyTree
	}
	u.remove(u.root.last())
	return nil
}

func (u *BSTree[T]) Corrupt() bool {
	return u.corrupt()
}

// Print an ASCII drawing of the tree to w, right subtree on top.
func (u *BSTree[T]) Print(w io.Writer) {
	u.print(w, nil)
}

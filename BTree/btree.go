// Package BTree implements a multiway B-tree parameterized by its minimum
// degree t: every node but the root holds between t-1 and 2t-1 items, an
// inner node with k items has k+1 children and all leaves are at the same
// depth. Insertion splits full nodes on the way down and removal grows thin
// nodes on the way down, so both take a single pass from the root.
// Equal items are allowed and kept in insertion order relative to each other
// only as far as splits and merges preserve it.
package BTree

import (
	"cmp"
	"slices"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/pkg/errors"
)

type node[T any] struct {
	items    []T
	children []*node[T] // empty for a leaf
}

func (n *node[T]) leaf() bool {
	return len(n.children) == 0
}

// first item in the subtree rooting at n.
func (n *node[T]) first() T {
	for !n.leaf() {
		n = n.children[0]
	}
	return n.items[0]
}

// last item in the subtree rooting at n.
func (n *node[T]) last() T {
	for !n.leaf() {
		n = n.children[len(n.children)-1]
	}
	return n.items[len(n.items)-1]
}

func (n *node[T]) walk(f func(T)) {
	for i, it := range n.items {
		if !n.leaf() {
			n.children[i].walk(f)
		}
		f(it)
	}
	if !n.leaf() {
		n.children[len(n.items)].walk(f)
	}
}

// BTree holds items in order, allowing duplicates. It isn't thread safe.
type BTree[T any] struct {
	root   *node[T]
	degree int
	cnt    int
	cmp    func(a, b T) int
}

// New BTree for an ordered T with the given minimum degree, which must be at
// least 2.
func New[T cmp.Ordered](minDegree int) (*BTree[T], error) {
	return NewFunc[T](minDegree, cmp.Compare[T])
}

// NewFunc orders the items by compare, which returns a negative number when
// a<b, 0 when a==b and a positive number when a>b.
func NewFunc[T any](minDegree int, compare func(a, b T) int) (*BTree[T], error) {
	if minDegree < 2 {
		return nil, errors.Wrapf(Trees.ErrInvalidDegree, "got %d", minDegree)
	}
	return &BTree[T]{degree: minDegree, cmp: compare}, nil
}

func (u *BTree[T]) maxItems() int {
	return 2*u.degree - 1
}

// find returns the index of the first item in n that is >= v, or > v when
// upper is set, and whether the item there equals v.
func (u *BTree[T]) find(n *node[T], v T, upper bool) (index int, found bool) {
	i, j := 0, len(n.items)
	for i < j {
		h := int(uint(i+j) >> 1)
		if c := u.cmp(n.items[h], v); c < 0 || (upper && c == 0) {
			i = h + 1
		} else {
			j = h
		}
	}
	return i, i < len(n.items) && u.cmp(n.items[i], v) == 0
}

// splitChild splits the full child x.children[i] around its median, which
// moves up into x at index i.
//
// Before:
//
//	+-----------+
//	|   a   c   |
//	+--/--|--\--+
//	     x y z
//
// After:
//
//	+-----------+
//	|  a  y  c  |
//	+-/--/--\--\+
//	    x    z
func (u *BTree[T]) splitChild(x *node[T], i int) {
	t, y := u.degree, x.children[i]
	mid := y.items[t-1]
	z := &node[T]{items: make([]T, t-1, u.maxItems())}
	copy(z.items, y.items[t:])
	clear(y.items[t-1:])
	y.items = y.items[:t-1]
	if !y.leaf() {
		z.children = make([]*node[T], t, 2*t)
		copy(z.children, y.children[t:])
		clear(y.children[t:])
		y.children = y.children[:t]
	}
	x.items = slices.Insert(x.items, i, mid)
	x.children = slices.Insert(x.children, i+1, z)
}

// Insert v into the tree. Equal items go to the right of the existing ones.
// Time: O(t*log_t(n)); Space: O(1)
func (u *BTree[T]) Insert(v T) {
	if u.root == nil {
		u.root = &node[T]{items: make([]T, 0, u.maxItems())}
	} else if len(u.root.items) == u.maxItems() {
		u.root = &node[T]{items: make([]T, 0, u.maxItems()), children: []*node[T]{u.root}}
		u.splitChild(u.root, 0)
	}
	for x := u.root; ; {
		i, _ := u.find(x, v, true)
		if x.leaf() {
			x.items = slices.Insert(x.items, i, v)
			break
		}
		if len(x.children[i].items) == u.maxItems() {
			u.splitChild(x, i)
			if u.cmp(v, x.items[i]) >= 0 {
				i++
			}
		}
		x = x.children[i]
	}
	u.cnt++
}

// InsertAll items of vs in order.
func (u *BTree[T]) InsertAll(vs []T) error {
	if vs == nil {
		return errors.Wrap(Trees.ErrInvalidArgument, "nil slice")
	}
	for _, v := range vs {
		u.Insert(v)
	}
	return nil
}

// search returns the node holding v and the index of v in it.
func (u *BTree[T]) search(v T) (*node[T], int) {
	for x := u.root; x != nil; {
		i, found := u.find(x, v, false)
		if found {
			return x, i
		} else if x.leaf() {
			break
		}
		x = x.children[i]
	}
	return nil, 0
}

// Contains reports whether v is in the tree.
// Time: O(log n); Space: O(1)
func (u *BTree[T]) Contains(v T) bool {
	n, _ := u.search(v)
	return n != nil
}

// Search returns a copy of the items of the node holding v.
// Time: O(log n); Space: O(t)
func (u *BTree[T]) Search(v T) ([]T, error) {
	if u.root == nil {
		return nil, Trees.ErrEmptyTree
	}
	n, _ := u.search(v)
	if n == nil {
		return nil, Trees.ErrNotFound
	}
	return slices.Clone(n.items), nil
}

// Remove one occurrence of v. Nothing changes when v isn't in the tree.
// Time: O(t*log_t(n)); Space: O(1)
func (u *BTree[T]) Remove(v T) error {
	if u.root == nil {
		return Trees.ErrEmptyTree
	} else if !u.Contains(v) {
		return Trees.ErrNotFound
	}
	u.remove(u.root, v)
	u.cnt--
	if len(u.root.items) == 0 {
		if u.root.leaf() {
			u.root = nil
		} else {
			u.root = u.root.children[0]
		}
	}
	return nil
}

// remove v, which must be in the subtree rooting at x. Every node entered
// below x holds at least t items first, so deleting from it can't underflow.
func (u *BTree[T]) remove(x *node[T], v T) {
	t := u.degree
	for {
		i, found := u.find(x, v, false)
		if x.leaf() {
			x.items = slices.Delete(x.items, i, i+1)
			return
		}
		if found {
			if l := x.children[i]; len(l.items) >= t {
				x.items[i] = l.last()
				x, v = l, x.items[i]
			} else if r := x.children[i+1]; len(r.items) >= t {
				x.items[i] = r.first()
				x, v = r, x.items[i]
			} else {
				u.merge(x, i)
				x = l
			}
			continue
		}
		if len(x.children[i].items) < t {
			i = u.fill(x, i)
		}
		x = x.children[i]
	}
}

// fill grows x.children[i], which has t-1 items, by borrowing from a sibling
// or merging with one. Returns the index of the child now covering the range
// of the old x.children[i].
func (u *BTree[T]) fill(x *node[T], i int) int {
	t := u.degree
	switch {
	case i > 0 && len(x.children[i-1].items) >= t:
		u.borrowFromPrev(x, i)
	case i < len(x.items) && len(x.children[i+1].items) >= t:
		u.borrowFromNext(x, i)
	case i < len(x.items):
		u.merge(x, i)
	default:
		u.merge(x, i-1)
		return i - 1
	}
	return i
}

func (u *BTree[T]) borrowFromPrev(x *node[T], i int) {
	c, s := x.children[i], x.children[i-1]
	c.items = slices.Insert(c.items, 0, x.items[i-1])
	last := len(s.items) - 1
	x.items[i-1] = s.items[last]
	s.items = slices.Delete(s.items, last, last+1)
	if !c.leaf() {
		last = len(s.children) - 1
		c.children = slices.Insert(c.children, 0, s.children[last])
		s.children = slices.Delete(s.children, last, last+1)
	}
}

func (u *BTree[T]) borrowFromNext(x *node[T], i int) {
	c, s := x.children[i], x.children[i+1]
	c.items = append(c.items, x.items[i])
	x.items[i] = s.items[0]
	s.items = slices.Delete(s.items, 0, 1)
	if !c.leaf() {
		c.children = append(c.children, s.children[0])
		s.children = slices.Delete(s.children, 0, 1)
	}
}

// merge x.items[i] and x.children[i+1] into x.children[i].
func (u *BTree[T]) merge(x *node[T], i int) {
	c, s := x.children[i], x.children[i+1]
	c.items = append(append(c.items, x.items[i]), s.items...)
	c.children = append(c.children, s.children...)
	x.items = slices.Delete(x.items, i, i+1)
	x.children = slices.Delete(x.children, i+1, i+2)
}

// Min item in the tree.
func (u *BTree[T]) Min() (T, error) {
	if u.root == nil {
		return *new(T), Trees.ErrEmptyTree
	}
	return u.root.first(), nil
}

// Max item in the tree.
func (u *BTree[T]) Max() (T, error) {
	if u.root == nil {
		return *new(T), Trees.ErrEmptyTree
	}
	return u.root.last(), nil
}

func (u *BTree[T]) Count() int {
	return u.cnt
}

func (u *BTree[T]) Degree() int {
	return u.degree
}

// Height is the number of edges from the root to any leaf; 0 for an empty
// tree.
func (u *BTree[T]) Height() int {
	h := 0
	if u.root != nil {
		for x := u.root; !x.leaf(); x = x.children[0] {
			h++
		}
	}
	return h
}

// InOrder returns all the items in ascending order.
// Time: O(n); Space: O(n)
func (u *BTree[T]) InOrder() []T {
	res := make([]T, 0, u.cnt)
	if u.root != nil {
		u.root.walk(func(v T) { res = append(res, v) })
	}
	return res
}

func (u *BTree[T]) Clear() {
	u.root, u.cnt = nil, 0
}

// Corrupt returns whether the item counts, the child counts, the order of the
// items or the depth of the leaves is broken somewhere.
// Time: O(n); Space: O(log n)
func (u *BTree[T]) Corrupt() bool {
	if u.root == nil {
		return u.cnt != 0
	}
	leafDepth, seen := -1, 0
	var check func(n *node[T], depth int) bool
	check = func(n *node[T], depth int) bool {
		if len(n.items) > u.maxItems() || len(n.items) < 1 || (n != u.root && len(n.items) < u.degree-1) {
			return false
		}
		seen += len(n.items)
		if n.leaf() {
			if leafDepth < 0 {
				leafDepth = depth
			}
			return leafDepth == depth
		}
		if len(n.children) != len(n.items)+1 {
			return false
		}
		for _, c := range n.children {
			if !check(c, depth+1) {
				return false
			}
		}
		return true
	}
	if !check(u.root, 0) || seen != u.cnt {
		return true
	}
	all := u.InOrder()
	return !slices.IsSortedFunc(all, u.cmp)
}

package Trees

import "github.com/g-m-twostay/go-trees/Queues"

// Enumerator yields the items of a tree in one traversal order. The items are
// collected when the Enumerator is created, so later changes to the tree
// aren't reflected.
type Enumerator[T any] struct {
	q   Queues.ArrayQueue[T]
	cur T
}

// Next advances the Enumerator. Returns (x,true) with the next item, or
// (zero,false) once every item has been yielded.
// Time: O(1); Space: O(1)
func (e *Enumerator[T]) Next() (T, bool) {
	if v, err := e.q.Pop(); err != nil {
		e.cur = *new(T)
		return e.cur, false
	} else {
		e.cur = v
		return v, true
	}
}

// Current is the item returned by the last call to Next.
func (e *Enumerator[T]) Current() T {
	return e.cur
}

// Remaining number of items.
func (e *Enumerator[T]) Remaining() int {
	return int(e.q.Size())
}

// Reset empties the Enumerator.
func (e *Enumerator[T]) Reset() {
	e.q.Clear()
	e.cur = *new(T)
}

func newEnumerator[T, M any](root *node[T, M], cnt int, visit func(*node[T, M], Queues.ArrayQueue[T])) *Enumerator[T] {
	q := Queues.MakeArrayQueue[T](uint(cnt))
	visit(root, q)
	return &Enumerator[T]{q: q}
}

func preOrder[T, M any](n *node[T, M], q Queues.ArrayQueue[T]) {
	if n != nil {
		q.Push(n.v)
		preOrder(n.l, q)
		preOrder(n.r, q)
	}
}

func inOrder[T, M any](n *node[T, M], q Queues.ArrayQueue[T]) {
	if n != nil {
		inOrder(n.l, q)
		q.Push(n.v)
		inOrder(n.r, q)
	}
}

func postOrder[T, M any](n *node[T, M], q Queues.ArrayQueue[T]) {
	if n != nil {
		postOrder(n.l, q)
		postOrder(n.r, q)
		q.Push(n.v)
	}
}

// PreOrder [OrderedTree.PreOrder]
// Time: O(n) to build; Space: O(n)
func (u *base[T, M]) PreOrder() *Enumerator[T] {
	return newEnumerator(u.root, u.cnt, preOrder[T, M])
}

// InOrder [OrderedTree.InOrder]
// Time: O(n) to build; Space: O(n)
func (u *base[T, M]) InOrder() *Enumerator[T] {
	return newEnumerator(u.root, u.cnt, inOrder[T, M])
}

// PostOrder [OrderedTree.PostOrder]
// Time: O(n) to build; Space: O(n)
func (u *base[T, M]) PostOrder() *Enumerator[T] {
	return newEnumerator(u.root, u.cnt, postOrder[T, M])
}

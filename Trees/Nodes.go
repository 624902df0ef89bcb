package Trees

// A node in one of the trees. M is the per tree metadata: the height for
// AVLTree, the color for RBTree, the subtree size for RankTree and struct{}
// for BSTree.
// p is a back reference used for walking up the tree; only l and r own
// their subtrees.
type node[T, M any] struct {
	v       T
	p, l, r *node[T, M]
	m       M
}

// first is the leftmost node in the subtree rooting at n.
// Time: O(D); Space: O(1)
func (n *node[T, M]) first() *node[T, M] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// last is the rightmost node in the subtree rooting at n.
// Time: O(D); Space: O(1)
func (n *node[T, M]) last() *node[T, M] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// next returns the in-order successor of n, or nil if n is the last node.
// Time: O(D); Space: O(1)
func (n *node[T, M]) next() *node[T, M] {
	if n.r != nil {
		return n.r.first()
	}
	for n.p != nil && n == n.p.r {
		n = n.p
	}
	return n.p
}

// prev returns the in-order predecessor of n, or nil if n is the first node.
// Time: O(D); Space: O(1)
func (n *node[T, M]) prev() *node[T, M] {
	if n.l != nil {
		return n.l.last()
	}
	for n.p != nil && n == n.p.l {
		n = n.p
	}
	return n.p
}

// height of the subtree rooting at n counted in edges; -1 for a nil n.
// Recursive.
func (n *node[T, M]) height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.l.height(), n.r.height())
}

// sibling is the other child of n's parent.
func (n *node[T, M]) sibling() *node[T, M] {
	if n.p == nil {
		return nil
	} else if n == n.p.l {
		return n.p.r
	}
	return n.p.l
}

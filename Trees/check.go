package Trees

// corrupt checks the properties shared by every tree: parent links agree with
// child links, the in-order sequence is sorted (strictly when duplicates
// aren't allowed) and cnt matches the number of nodes.
// Time: O(n); Space: O(D)
func (u *base[T, M]) corrupt() bool {
	if u.root == nil {
		return u.cnt != 0
	}
	if u.root.p != nil {
		return true
	}
	var links func(*node[T, M]) int
	links = func(n *node[T, M]) int {
		if n == nil {
			return 0
		}
		if (n.l != nil && n.l.p != n) || (n.r != nil && n.r.p != n) {
			return -1
		}
		l, r := links(n.l), links(n.r)
		if l < 0 || r < 0 {
			return -1
		}
		return l + r + 1
	}
	if links(u.root) != u.cnt {
		return true
	}
	prev := u.root.first()
	for n := prev.next(); n != nil; prev, n = n, n.next() {
		if c := u.cmp(prev.v, n.v); c > 0 || (c == 0 && !u.dups) {
			return true
		}
	}
	return false
}

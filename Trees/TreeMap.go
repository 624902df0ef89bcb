package Trees

import (
	"cmp"
	"fmt"
	"io"
)

// Entry is a key value pair held by TreeMap.
type Entry[K, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v:%v", e.Key, e.Value)
}

// TreeMap associates values to keys kept in order. It's a RBTree of Entry
// ordered only by Entry.Key, so it has the same costs and the same handling
// of duplicate keys.
type TreeMap[K, V any] struct {
	t *RBTree[Entry[K, V]]
}

// NewTreeMap for an ordered K.
func NewTreeMap[K cmp.Ordered, V any](allowDuplicates bool) *TreeMap[K, V] {
	return NewTreeMapFunc[K, V](allowDuplicates, cmp.Compare[K])
}

// NewTreeMapFunc orders the keys by compare, which returns a negative number
// when a<b, 0 when a==b and a positive number when a>b.
func NewTreeMapFunc[K, V any](allowDuplicates bool, compare func(a, b K) int) *TreeMap[K, V] {
	return &TreeMap[K, V]{NewRBTreeFunc[Entry[K, V]](allowDuplicates, func(a, b Entry[K, V]) int {
		return compare(a.Key, b.Key)
	})}
}

func probe[K, V any](k K) Entry[K, V] {
	return Entry[K, V]{Key: k}
}

// Insert the pair (k,v). Fails with ErrDuplicate if duplicates aren't allowed
// and k is already a key.
// Time: O(log n); Space: O(1)
func (u *TreeMap[K, V]) Insert(k K, v V) error {
	return u.t.Insert(Entry[K, V]{k, v})
}

// InsertAll [OrderedTree.InsertAll]
func (u *TreeMap[K, V]) InsertAll(es []Entry[K, V]) error {
	return u.t.InsertAll(es)
}

// Update replaces the value associated with k. With duplicate keys only one
// of the entries is changed.
// Time: O(log n); Space: O(1)
func (u *TreeMap[K, V]) Update(k K, v V) error {
	n, e := u.t.lookup(probe[K, V](k))
	if e == nil {
		n.v.Value = v
	}
	return e
}

// Remove one entry with key k.
func (u *TreeMap[K, V]) Remove(k K) error {
	return u.t.Remove(probe[K, V](k))
}

func (u *TreeMap[K, V]) RemoveMin() error {
	return u.t.RemoveMin()
}

func (u *TreeMap[K, V]) RemoveMax() error {
	return u.t.RemoveMax()
}

func (u *TreeMap[K, V]) Contains(k K) bool {
	return u.t.Contains(probe[K, V](k))
}

// Find the value associated with k.
func (u *TreeMap[K, V]) Find(k K) (V, error) {
	en, e := u.t.Find(probe[K, V](k))
	return en.Value, e
}

// FindMin returns the entry with the smallest key.
func (u *TreeMap[K, V]) FindMin() (Entry[K, V], error) {
	return u.t.FindMin()
}

// FindMax returns the entry with the largest key.
func (u *TreeMap[K, V]) FindMax() (Entry[K, V], error) {
	return u.t.FindMax()
}

// FindNextSmaller returns the entry with the greatest key strictly less than k.
func (u *TreeMap[K, V]) FindNextSmaller(k K) (Entry[K, V], error) {
	return u.t.FindNextSmaller(probe[K, V](k))
}

// FindNextLarger returns the entry with the smallest key strictly greater than k.
func (u *TreeMap[K, V]) FindNextLarger(k K) (Entry[K, V], error) {
	return u.t.FindNextLarger(probe[K, V](k))
}

// FindAll entries whose key satisfies match, in key order.
func (u *TreeMap[K, V]) FindAll(match func(K) bool) []Entry[K, V] {
	if match == nil {
		return nil
	}
	return u.t.FindAll(func(e Entry[K, V]) bool { return match(e.Key) })
}

// Keys in ascending order.
func (u *TreeMap[K, V]) Keys() []K {
	res := make([]K, 0, u.t.cnt)
	for it := u.t.InOrder(); ; {
		e, ok := it.Next()
		if !ok {
			return res
		}
		res = append(res, e.Key)
	}
}

func (u *TreeMap[K, V]) ToSlice() []Entry[K, V] {
	return u.t.ToSlice()
}

func (u *TreeMap[K, V]) PreOrder() *Enumerator[Entry[K, V]] {
	return u.t.PreOrder()
}

func (u *TreeMap[K, V]) InOrder() *Enumerator[Entry[K, V]] {
	return u.t.InOrder()
}

func (u *TreeMap[K, V]) PostOrder() *Enumerator[Entry[K, V]] {
	return u.t.PostOrder()
}

func (u *TreeMap[K, V]) Height() int {
	return u.t.Height()
}

func (u *TreeMap[K, V]) Count() int {
	return u.t.Count()
}

func (u *TreeMap[K, V]) IsEmpty() bool {
	return u.t.IsEmpty()
}

func (u *TreeMap[K, V]) AllowsDuplicates() bool {
	return u.t.AllowsDuplicates()
}

func (u *TreeMap[K, V]) Clear() {
	u.t.Clear()
}

func (u *TreeMap[K, V]) Corrupt() bool {
	return u.t.Corrupt()
}

func (u *TreeMap[K, V]) Print(w io.Writer) {
	u.t.Print(w)
}

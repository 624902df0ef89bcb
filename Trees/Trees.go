package Trees

// OrderedTree represents a binary search tree implemented using nodes with
// parent pointers. All implementations share the same ordered-tree core and
// differ only in how they rebalance after Insert and Remove.
// Receivers returning an error leave the tree unmodified when the error is
// non-nil. The errors are the ones defined in errors.go and should be tested
// with the IsErrXxx functions or errors.Is.
// An individual tree is not thread safe, so either access it from a single
// go routine or guard it with a mutex.
type OrderedTree[T any] interface {
	//Insert v to the tree. Fails with ErrDuplicate if the tree doesn't
	//allow duplicates and v is already in the tree.
	Insert(v T) error
	//InsertAll inserts the elements of vs one by one, stopping at the first
	//failure. Elements inserted before the failure stay in the tree.
	//A nil vs is rejected with ErrInvalidArgument.
	InsertAll(vs []T) error
	//Remove one occurrence of v.
	Remove(v T) error
	//RemoveMin removes the smallest element.
	RemoveMin() error
	//RemoveMax removes the largest element.
	RemoveMax() error
	//Contains reports whether v is in the tree.
	Contains(v T) bool
	//Find returns the element in the tree that compares equal to v.
	Find(v T) (T, error)
	//FindMin element of the tree.
	FindMin() (T, error)
	//FindMax element of the tree.
	FindMax() (T, error)
	//FindNextSmaller returns the greatest element strictly less than v,
	//where v must be in the tree.
	FindNextSmaller(v T) (T, error)
	//FindNextLarger returns the smallest element strictly greater than v,
	//where v must be in the tree.
	FindNextLarger(v T) (T, error)
	//FindAll elements satisfying match, in ascending order.
	FindAll(match func(T) bool) []T
	//ToSlice returns all elements in ascending order.
	ToSlice() []T
	//Height is the number of edges on the longest path from the root to a
	//leaf. Both the empty tree and a single node tree have height 0.
	Height() int
	//PreOrder returns an Enumerator visiting parent, left subtree, right subtree.
	PreOrder() *Enumerator[T]
	//InOrder returns an Enumerator visiting left subtree, parent, right subtree.
	InOrder() *Enumerator[T]
	//PostOrder returns an Enumerator visiting left subtree, right subtree, parent.
	PostOrder() *Enumerator[T]
	//Clear removes every element.
	Clear()
	//Count of the elements in the tree.
	Count() int
	//IsEmpty is Count()==0.
	IsEmpty() bool
	//AllowsDuplicates reports the construction time choice.
	AllowsDuplicates() bool
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//For the balanced trees this includes the balance invariant.
	Corrupt() bool
}

var (
	_ OrderedTree[int] = (*BSTree[int])(nil)
	_ OrderedTree[int] = (*AVLTree[int])(nil)
	_ OrderedTree[int] = (*RBTree[int])(nil)
	_ OrderedTree[int] = (*RankTree[int, uint])(nil)
)

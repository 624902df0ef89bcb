package BTree

import (
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = *rand.New(rand.NewSource(0))

func TestNew(t *testing.T) {
	for _, d := range []int{-1, 0, 1} {
		_, e := New[int](d)
		assert.ErrorIs(t, e, Trees.ErrInvalidDegree)
		assert.True(t, Trees.IsErrInvalid(e))
	}
	tree, e := New[int](2)
	require.NoError(t, e)
	assert.Equal(t, 2, tree.Degree())
	assert.Equal(t, 0, tree.Height())
	assert.False(t, tree.Corrupt())
	assert.ErrorIs(t, tree.Remove(1), Trees.ErrEmptyTree)
	_, e = tree.Min()
	assert.True(t, Trees.IsErrEmpty(e))
	_, e = tree.Search(1)
	assert.True(t, Trees.IsErrEmpty(e))
	assert.True(t, Trees.IsErrInvalid(tree.InsertAll(nil)))
}

func TestBTree_Split(t *testing.T) {
	tree, _ := New[int](2)
	tree.InsertAll([]int{10, 20, 30})
	assert.Equal(t, 0, tree.Height())
	tree.Insert(40)
	assert.Equal(t, 1, tree.Height())
	assert.Equal(t, []int{20}, tree.root.items)
	keys, e := tree.Search(40)
	require.NoError(t, e)
	assert.Equal(t, []int{30, 40}, keys)
	_, e = tree.Search(25)
	assert.ErrorIs(t, e, Trees.ErrNotFound)
	assert.False(t, tree.Corrupt())
}

// node layouts after inserting into a tree of degree 4, which holds at most
// 7 items per node.
func TestBTree_SplitCases(t *testing.T) {
	tree, _ := New[int](4)
	tree.InsertAll([]int{10, 30, 20, 50, 40, 60, 70})
	require.Equal(t, []int{10, 20, 30, 40, 50, 60, 70}, tree.root.items)

	tree.Insert(35)
	require.Equal(t, []int{40}, tree.root.items)
	assert.Equal(t, []int{10, 20, 30, 35}, tree.root.children[0].items)
	assert.Equal(t, []int{50, 60, 70}, tree.root.children[1].items)

	tree.InsertAll([]int{5, 15, 25, 39})
	require.Equal(t, []int{20, 40}, tree.root.items)
	assert.Equal(t, []int{5, 10, 15}, tree.root.children[0].items)
	assert.Equal(t, []int{25, 30, 35, 39}, tree.root.children[1].items)
	assert.Equal(t, []int{50, 60, 70}, tree.root.children[2].items)

	// successor replacement, merge, borrow from the next sibling and a plain
	// leaf removal
	for _, v := range []int{20, 40, 5, 70} {
		require.NoError(t, tree.Remove(v))
		require.False(t, tree.Corrupt(), "after removing %d", v)
	}
	require.Equal(t, []int{30}, tree.root.items)
	assert.Equal(t, []int{10, 15, 25}, tree.root.children[0].items)
	assert.Equal(t, []int{35, 39, 50, 60}, tree.root.children[1].items)

	// the last merge empties the root, so the tree shrinks to a single leaf
	require.NoError(t, tree.Remove(30))
	require.NoError(t, tree.Remove(10))
	assert.Equal(t, 0, tree.Height())
	assert.Equal(t, []int{15, 25, 35, 39, 50, 60}, tree.root.items)
	assert.False(t, tree.Corrupt())
}

func TestBTree_Random(t *testing.T) {
	for _, d := range []int{2, 3, 5, 16} {
		tree, _ := New[int](d)
		var model []int
		for i := 0; i < 20000; i++ {
			v := rg.Intn(3000)
			j, found := slices.BinarySearch(model, v)
			if rg.Intn(5) < 2 {
				if e := tree.Remove(v); found {
					require.NoError(t, e)
					model = slices.Delete(model, j, j+1)
				} else {
					require.Error(t, e)
				}
			} else {
				tree.Insert(v)
				model = slices.Insert(model, j, v)
			}
			if i%251 == 0 {
				require.False(t, tree.Corrupt(), "degree %d after %d ops", d, i)
				require.Equal(t, model, tree.InOrder())
			}
		}
		require.False(t, tree.Corrupt())
		require.Equal(t, len(model), tree.Count())
		require.Equal(t, model, tree.InOrder())
		if len(model) > 0 {
			mi, _ := tree.Min()
			ma, _ := tree.Max()
			assert.Equal(t, model[0], mi)
			assert.Equal(t, model[len(model)-1], ma)
		}
		for len(model) > 0 {
			j := rg.Intn(len(model))
			require.NoError(t, tree.Remove(model[j]))
			model = slices.Delete(model, j, j+1)
			if len(model)%97 == 0 {
				require.False(t, tree.Corrupt())
			}
		}
		assert.Equal(t, 0, tree.Count())
		assert.Nil(t, tree.root)
	}
}

func TestBTree_Duplicates(t *testing.T) {
	tree, _ := New[int](2)
	for range_i := 0; range_i < 50; range_i++ {
		tree.Insert(7)
	}
	tree.InsertAll([]int{1, 9, 7})
	assert.Equal(t, 53, tree.Count())
	assert.False(t, tree.Corrupt())
	for range_i := 0; range_i < 51; range_i++ {
		require.NoError(t, tree.Remove(7))
	}
	assert.False(t, tree.Contains(7))
	assert.Equal(t, []int{1, 9}, tree.InOrder())
	assert.ErrorIs(t, tree.Remove(7), Trees.ErrNotFound)
	assert.Equal(t, 2, tree.Count())
}

func TestBTree_Height(t *testing.T) {
	tree, _ := New[int](3)
	const n = 1 << 12
	for i := 0; i < n; i++ {
		tree.Insert(i)
	}
	// a tree of height h with minimum degree t holds at least 2t^h-1 items
	h, least := tree.Height(), 1
	for range_i := 0; range_i < h; range_i++ {
		least *= 3
	}
	assert.LessOrEqual(t, 2*least-1, n)
	tree.Clear()
	assert.Equal(t, 0, tree.Count())
	assert.Empty(t, tree.InOrder())
}

func TestBTree_CustomOrder(t *testing.T) {
	tree, _ := NewFunc[string](2, func(a, b string) int { return len(b) - len(a) })
	tree.InsertAll([]string{"a", "ccc", "bb", "dddd"})
	assert.Equal(t, []string{"dddd", "ccc", "bb", "a"}, tree.InOrder())
	assert.True(t, tree.Contains("xx"))
}

func BenchmarkBTree_Insert(b *testing.B) {
	for _, d := range []int{2, 8, 32} {
		b.Run(strconv.Itoa(d), func(b *testing.B) {
			for range_i := 0; range_i < b.N; range_i++ {
				tree, _ := New[int](d)
				for _, v := range rand.Perm(1 << 15) {
					tree.Insert(v)
				}
			}
		})
	}
}

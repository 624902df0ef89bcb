package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var w, e bytes.Buffer
	err := newApp(&w, &e).Run(append([]string{"treedemo"}, args...))
	return w.String(), e.String(), err
}

func TestBuild(t *testing.T) {
	out, _, err := run(t, "--kind", "rb", "build", "10", "20", "30", "40", "50", "60", "70")
	require.NoError(t, err)
	var s summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "rb", s.Kind)
	assert.Equal(t, 7, s.Count)
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70}, s.InOrder)
	assert.Equal(t, []int{20, 10, 40, 30, 60, 50, 70}, s.PreOrder)
	require.NotNil(t, s.Min)
	assert.Equal(t, 10, *s.Min)
	assert.Equal(t, 70, *s.Max)
}

func TestBuild_RemoveAndLog(t *testing.T) {
	out, log, err := run(t, "-v", "build", "--remove", "2", "--remove", "9", "1", "2", "3", "3")
	require.NoError(t, err)
	var s summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "avl", s.Kind)
	assert.Equal(t, []int{1, 3}, s.InOrder)
	assert.Contains(t, log, "item rejected")
	assert.Contains(t, log, "remove failed")
	assert.Contains(t, log, "tree built")
	assert.Contains(t, log, "level=debug")
}

func TestBuild_Draw(t *testing.T) {
	out, _, err := run(t, "--kind", "bst", "build", "--draw", "2", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "       /------+ 3\n|------+ 2\n       \\------+ 1\n", out)
}

func TestBuild_Environment(t *testing.T) {
	t.Setenv("TREEDEMO_KIND", "rank")
	t.Setenv("TREEDEMO_DUPLICATES", "true")
	out, _, err := run(t, "build", "5", "5", "5")
	require.NoError(t, err)
	var s summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "rank", s.Kind)
	assert.True(t, s.Duplicates)
	assert.Equal(t, 3, s.Count)
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "--kind", "splay", "build", "1")
	assert.True(t, errors.Is(err, ErrInvalidKind))
	_, _, err = run(t, "build", "1", "x")
	assert.True(t, errors.Is(err, ErrInvalidItem))
	assert.True(t, Trees.IsErrInvalid(err))
	_, _, err = run(t, "build")
	assert.ErrorIs(t, err, ErrRequiredItems)
	_, _, err = run(t, "neighbours", "1")
	assert.ErrorIs(t, err, ErrRequiredQuery)
	_, _, err = run(t, "--degree", "1", "btree", "1")
	assert.ErrorIs(t, err, Trees.ErrInvalidDegree)
}

func TestNeighbours(t *testing.T) {
	out, _, err := run(t, "neighbours", "--of", "1", "--of", "5", "--of", "4", "1", "3", "5")
	require.NoError(t, err)
	var ns []neighbours
	require.NoError(t, json.Unmarshal([]byte(out), &ns))
	require.Len(t, ns, 3)
	assert.Nil(t, ns[0].Smaller)
	assert.Equal(t, 3, *ns[0].Larger)
	assert.Equal(t, 3, *ns[1].Smaller)
	assert.Nil(t, ns[1].Larger)
	assert.NotEmpty(t, ns[2].Error)
}

func TestRank(t *testing.T) {
	out, log, err := run(t, "-d", "rank", "--of", "7", "--of", "100", "-s", "1", "-s", "4", "-s", "0",
		"15", "25", "5", "12", "1", "16", "20", "9", "9", "7", "7", "7", "-1")
	require.NoError(t, err)
	var r ranks
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 13, r.Count)
	assert.Equal(t, map[int]uint{7: 4}, r.Ranks)
	assert.Equal(t, map[int]int{1: -1, 4: 7}, r.Selects)
	assert.Equal(t, 2, strings.Count(log, "level=warning"))
}

func TestBTree(t *testing.T) {
	out, _, err := run(t, "--degree", "4", "btree", "--remove", "20",
		"10", "30", "20", "50", "40", "60", "70", "35", "5", "15", "25", "39")
	require.NoError(t, err)
	var s btreeSummary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 4, s.Degree)
	assert.Equal(t, 11, s.Count)
	assert.Equal(t, 1, s.Height)
	assert.Equal(t, []int{5, 10, 15, 25, 30, 35, 39, 40, 50, 60, 70}, s.InOrder)
}

func TestCheckKind(t *testing.T) {
	for in, want := range map[string]string{"BST": "bst", "avl": "avl", "red-black": "rb", "ranked": "rank"} {
		got, err := checkKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

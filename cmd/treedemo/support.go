package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// tree is what every binary tree kind offers to the commands.
type tree interface {
	Trees.OrderedTree[int]
	Print(w io.Writer)
}

func checkKind(kind string) (string, error) {
	switch strings.ToLower(kind) {
	case "bst", "plain":
		return "bst", nil
	case "avl":
		return "avl", nil
	case "rb", "redblack", "red-black":
		return "rb", nil
	case "rank", "ranked":
		return "rank", nil
	default:
		return "", errors.Wrapf(ErrInvalidKind, "got %q", kind)
	}
}

func makeTree(kind string, duplicates bool) tree {
	switch kind {
	case "bst":
		return Trees.NewBSTree[int](duplicates)
	case "rb":
		return Trees.NewRBTree[int](duplicates)
	case "rank":
		return Trees.NewRankTree[int, uint](duplicates)
	default:
		return Trees.NewAVLTree[int](duplicates)
	}
}

// items parsed from the command arguments.
func parseItems(args cli.Args) ([]int, error) {
	if len(args) == 0 {
		return nil, ErrRequiredItems
	}
	res := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if nil != err {
			return nil, errors.Wrapf(ErrInvalidItem, "argument %d: %q", i+1, a)
		}
		res[i] = v
	}
	return res, nil
}

// insert every item, logging the ones that are rejected.
func insertItems(m *metadata, t tree, items []int) {
	for _, v := range items {
		l := m.log.WithFields(logrus.Fields{"op": "insert", "item": v})
		if err := t.Insert(v); nil != err {
			l.WithError(err).Warn("item rejected")
		} else {
			l.Debug("inserted")
		}
	}
}

// remove every item, logging the ones that can't be removed.
func removeItems(m *metadata, remove func(int) error, items []int) {
	for _, v := range items {
		l := m.log.WithFields(logrus.Fields{"op": "remove", "item": v})
		if err := remove(v); nil != err {
			l.WithError(err).Warn("remove failed")
		} else {
			l.Debug("removed")
		}
	}
}

func drain(it *Trees.Enumerator[int]) []int {
	res := make([]int, 0, it.Remaining())
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		res = append(res, v)
	}
	return res
}

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

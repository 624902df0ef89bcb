package main

import (
	"github.com/g-m-twostay/go-trees/BTree"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type btreeSummary struct {
	Degree  int   `json:"degree"`
	Count   int   `json:"count"`
	Height  int   `json:"height"`
	Min     *int  `json:"min,omitempty"`
	Max     *int  `json:"max,omitempty"`
	InOrder []int `json:"inOrder"`
}

func runBTree(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	items, err := parseItems(c.Args())
	if nil != err {
		return err
	}

	t, err := BTree.New[int](m.degree)
	if nil != err {
		return err
	}
	for _, v := range items {
		t.Insert(v)
		m.log.WithFields(logrus.Fields{"op": "insert", "item": v, "height": t.Height()}).Debug("inserted")
	}
	removeItems(m, t.Remove, c.IntSlice("remove"))

	if t.Corrupt() {
		m.log.WithField("degree", m.degree).Error("B-tree is corrupt")
	}
	m.log.WithFields(logrus.Fields{
		"count": t.Count(), "height": t.Height(),
	}).Info("B-tree built")

	s := btreeSummary{
		Degree:  t.Degree(),
		Count:   t.Count(),
		Height:  t.Height(),
		InOrder: t.InOrder(),
	}
	if v, err := t.Min(); nil == err {
		s.Min = &v
	}
	if v, err := t.Max(); nil == err {
		s.Max = &v
	}
	return printJson(m.w, s)
}

package main

import (
	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type ranks struct {
	Count   int          `json:"count"`
	Ranks   map[int]uint `json:"ranks,omitempty"`
	Selects map[int]int  `json:"selects,omitempty"`
}

func runRank(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	items, err := parseItems(c.Args())
	if nil != err {
		return err
	}

	t := Trees.NewRankTree[int, uint](m.duplicates)
	insertItems(m, t, items)

	result := ranks{
		Count:   t.Count(),
		Ranks:   make(map[int]uint),
		Selects: make(map[int]int),
	}
	for _, v := range c.IntSlice("of") {
		if r, err := t.Rank(v); nil != err {
			m.log.WithFields(logrus.Fields{"op": "rank", "item": v}).WithError(err).Warn("no rank")
		} else {
			result.Ranks[v] = r
		}
	}
	for _, k := range c.IntSlice("select") {
		if k <= 0 {
			m.log.WithFields(logrus.Fields{"op": "select", "k": k}).WithError(Trees.ErrOutOfRange).Warn("no item")
		} else if v, err := t.Select(uint(k)); nil != err {
			m.log.WithFields(logrus.Fields{"op": "select", "k": k}).WithError(err).Warn("no item")
		} else {
			result.Selects[k] = v
		}
	}
	return printJson(m.w, result)
}

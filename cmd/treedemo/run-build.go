package main

import (
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type summary struct {
	Kind       string `json:"kind"`
	Duplicates bool   `json:"duplicates"`
	Count      int    `json:"count"`
	Height     int    `json:"height"`
	Min        *int   `json:"min,omitempty"`
	Max        *int   `json:"max,omitempty"`
	InOrder    []int  `json:"inOrder"`
	PreOrder   []int  `json:"preOrder"`
}

func summarize(m *metadata, t tree) summary {
	s := summary{
		Kind:       m.kind,
		Duplicates: t.AllowsDuplicates(),
		Count:      t.Count(),
		Height:     t.Height(),
		InOrder:    t.ToSlice(),
		PreOrder:   drain(t.PreOrder()),
	}
	if v, err := t.FindMin(); nil == err {
		s.Min = &v
	}
	if v, err := t.FindMax(); nil == err {
		s.Max = &v
	}
	return s
}

func runBuild(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	items, err := parseItems(c.Args())
	if nil != err {
		return err
	}

	t := makeTree(m.kind, m.duplicates)
	insertItems(m, t, items)
	removeItems(m, t.Remove, c.IntSlice("remove"))

	if t.Corrupt() {
		m.log.WithField("kind", m.kind).Error("tree is corrupt")
	}
	m.log.WithFields(logrus.Fields{
		"count": t.Count(), "height": t.Height(),
	}).Info("tree built")

	if c.Bool("draw") {
		t.Print(m.w)
		return nil
	}
	return printJson(m.w, summarize(m, t))
}

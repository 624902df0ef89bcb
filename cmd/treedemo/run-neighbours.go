package main

import (
	"github.com/urfave/cli"
)

type neighbours struct {
	Item    int    `json:"item"`
	Smaller *int   `json:"smaller,omitempty"`
	Larger  *int   `json:"larger,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runNeighbours(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	items, err := parseItems(c.Args())
	if nil != err {
		return err
	}
	queries := c.IntSlice("of")
	if len(queries) == 0 {
		return ErrRequiredQuery
	}

	t := makeTree(m.kind, m.duplicates)
	insertItems(m, t, items)

	result := make([]neighbours, 0, len(queries))
	for _, q := range queries {
		n := neighbours{Item: q}
		if !t.Contains(q) {
			n.Error = "not in the tree"
			m.log.WithField("item", q).Warn("query is not in the tree")
		}
		if v, err := t.FindNextSmaller(q); nil == err {
			n.Smaller = &v
		}
		if v, err := t.FindNextLarger(q); nil == err {
			n.Larger = &v
		}
		result = append(result, n)
	}
	return printJson(m.w, result)
}

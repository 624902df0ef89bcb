package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type metadata struct {
	kind       string
	duplicates bool
	degree     int
	verbose    bool
	log        *logrus.Logger
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "treedemo"
	app.Usage = "build ordered trees from integers and show their shape"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "verbose, v",
			Usage:  " log every operation",
			EnvVar: "TREEDEMO_VERBOSE",
		},
		cli.StringFlag{
			Name:   "kind, k",
			Value:  "avl",
			Usage:  " binary tree `KIND` [bst|avl|rb|rank]",
			EnvVar: "TREEDEMO_KIND",
		},
		cli.BoolFlag{
			Name:   "duplicates, d",
			Usage:  " allow duplicate items",
			EnvVar: "TREEDEMO_DUPLICATES",
		},
		cli.IntFlag{
			Name:   "degree",
			Value:  2,
			Usage:  " minimum `DEGREE` of the B-tree",
			EnvVar: "TREEDEMO_DEGREE",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "insert the items, optionally remove some, and print a summary",
			ArgsUsage: "ITEM...",
			Flags: []cli.Flag{
				cli.IntSliceFlag{
					Name:  "remove, r",
					Usage: " remove `ITEM` after building, can be repeated",
				},
				cli.BoolFlag{
					Name:  "draw",
					Usage: " draw the tree instead of printing JSON",
				},
			},
			Action: runBuild,
		},
		{
			Name:      "neighbours",
			Usage:     "print the next smaller and next larger item of each query",
			ArgsUsage: "ITEM...",
			Flags: []cli.Flag{
				cli.IntSliceFlag{
					Name:  "of",
					Usage: "*query `ITEM`, can be repeated",
				},
			},
			Action: runNeighbours,
		},
		{
			Name:      "rank",
			Usage:     "build a rank tree and answer rank and select queries",
			ArgsUsage: "ITEM...",
			Flags: []cli.Flag{
				cli.IntSliceFlag{
					Name:  "of",
					Usage: " rank of `ITEM`, can be repeated",
				},
				cli.IntSliceFlag{
					Name:  "select, s",
					Usage: " the `K`-th smallest item, can be repeated",
				},
			},
			Action: runRank,
		},
		{
			Name:      "btree",
			Usage:     "build a B-tree with the global degree and print its layout",
			ArgsUsage: "ITEM...",
			Flags: []cli.Flag{
				cli.IntSliceFlag{
					Name:  "remove, r",
					Usage: " remove `ITEM` after building, can be repeated",
				},
			},
			Action: runBTree,
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		verbose := c.GlobalBool("verbose")

		log := logrus.New()
		log.Out = c.App.ErrWriter
		log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.InfoLevel)
		}

		kind, err := checkKind(c.GlobalString("kind"))
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			kind:       kind,
			duplicates: c.GlobalBool("duplicates"),
			degree:     c.GlobalInt("degree"),
			verbose:    verbose,
			log:        log,
			e:          c.App.ErrWriter,
			w:          c.App.Writer,
		}
		log.WithFields(logrus.Fields{
			"kind": kind, "duplicates": c.GlobalBool("duplicates"), "degree": c.GlobalInt("degree"),
		}).Debug("configured")
		return nil
	}

	return app
}

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bstr-go/pkg/log"

	"github.com/urfave/cli/v2"
)

var logsCommand = &cli.Command{
	Name:        "logs",
	Usage:       "print the most recent entries of the log database",
	UsageText:   "bstr --log-db PATH logs [-n COUNT] [--pretty]",
	Description: `Reads back the JSON log lines persisted with --log-db (or log_db in the config file).`,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "Number of entries `NUMBER`",
			Value:   log.DefaultLimit,
		},
		&cli.BoolFlag{
			Name:    "pretty",
			Aliases: []string{"p"},
			Usage:   "Prefix each entry with its id and insertion time",
		},
	},
	Action: logsCmd,
}

func logsCmd(c *cli.Context) error {
	count := c.Int("count")
	if count <= 0 {
		return fail("Error: --count (-n) must be a positive number.")
	}

	entries, err := log.GetLastNLogs(count)
	if err != nil {
		if errors.Is(err, log.ErrNotInitialized) {
			return fail("Error: no log database configured, use --log-db or log_db.")
		}
		return fail("Error retrieving logs: %v", err)
	}

	w := c.App.Writer
	for _, e := range entries {
		line := strings.TrimRight(e.LogData, "\n")
		if c.Bool("pretty") {
			fmt.Fprintf(w, "#%d %s %s\n", e.ID, e.InsertedAt.Format(time.RFC3339), line)
			continue
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

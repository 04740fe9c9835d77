package main

import (
	"fmt"
	"io"

	"bstr-go/internal/input"
	"bstr-go/pkg/buffers"
	"bstr-go/pkg/log"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

var (
	tokensCommand = &cli.Command{
		Name:      "tokens",
		Usage:     "print every whitespace separated token with its length",
		UsageText: "bstr tokens [--file F] [--zstd]",
		Flags:     inputFlags,
		Action:    tokensCmd,
	}

	statsCommand = &cli.Command{
		Name:      "stats",
		Usage:     "print the size and capacity of the loaded input",
		UsageText: "bstr stats [--file F] [--zstd]",
		Flags:     inputFlags,
		Action:    statsCmd,
	}
)

func tokensCmd(c *cli.Context) error {
	compressed := c.Bool("zstd") || (!c.IsSet("zstd") && getConfig(c).Zstd)
	r, err := input.Open(c.String("file"), c.App.Reader, compressed)
	if err != nil {
		return fail("Error opening input: %v", err)
	}
	defer r.Close()

	tok := buffers.TokenPool.Get()
	defer buffers.TokenPool.Put(tok)

	n := 0
	for {
		if err := tok.ReadToken(r); err != nil {
			if err == io.EOF {
				break
			}
			return fail("Error reading input: %v", err)
		}
		n++
		if _, err := fmt.Fprintf(c.App.Writer, "%d\t%s\n", tok.Size(), tok); err != nil {
			return err
		}
	}
	if n == 0 {
		log.Warn().Msg("tokens: no tokens in input")
	}
	log.Info().Int("tokens", n).Msg("tokens")
	return nil
}

func statsCmd(c *cli.Context) error {
	s, err := readInput(c)
	if err != nil {
		return err
	}
	w := c.App.Writer
	fmt.Fprintf(w, "size:     %d (%s)\n", s.Size(), humanize.IBytes(uint64(s.Size())))
	fmt.Fprintf(w, "capacity: %d (%s)\n", s.Capacity(), humanize.IBytes(uint64(s.Capacity())))
	s.ShrinkToFit()
	_, err = fmt.Fprintf(w, "shrunk:   %d (%s)\n", s.Capacity(), humanize.IBytes(uint64(s.Capacity())))
	return err
}

package main

import (
	"fmt"
	"io"
	"strconv"

	"bstr-go/internal/fn"
	"bstr-go/internal/input"
	"bstr-go/pkg/bstr"
	"bstr-go/pkg/log"

	"github.com/urfave/cli/v2"
)

var inputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Read input from `FILE` instead of stdin",
	},
	&cli.BoolFlag{
		Name:  "zstd",
		Usage: "Input is Zstandard compressed",
	},
}

var (
	splitCommand = &cli.Command{
		Name:      "split",
		Usage:     "cut the input around a delimiter and print one piece per line",
		UsageText: "bstr split [--delim D] [--null] [--file F] [--zstd]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "delim",
				Aliases: []string{"d"},
				Usage:   "Delimiter `BYTES` (default from config, a single space)",
			},
			&cli.BoolFlag{
				Name:    "null",
				Aliases: []string{"z"},
				Usage:   "End pieces with a zero byte instead of a newline",
			},
			&cli.BoolFlag{
				Name:  "keep-newline",
				Usage: "Do not strip one trailing newline from the input",
			},
		}, inputFlags...),
		Action: splitCmd,
	}

	joinCommand = &cli.Command{
		Name:      "join",
		Usage:     "read whitespace separated tokens and print them joined by a separator",
		UsageText: "bstr join [--sep S] [--file F] [--zstd]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "sep",
				Aliases: []string{"s"},
				Usage:   "Separator `BYTES` (default from config, a single space)",
			},
		}, inputFlags...),
		Action: joinCmd,
	}

	repeatCommand = &cli.Command{
		Name:      "repeat",
		Usage:     "print TEXT repeated COUNT times",
		UsageText: "bstr repeat TEXT COUNT",
		Action:    repeatCmd,
	}

	cmpCommand = &cli.Command{
		Name:      "cmp",
		Usage:     "compare A and B byte-wise and print <, = or >",
		UsageText: "bstr cmp A B",
		Action:    cmpCmd,
	}
)

// readInput loads the whole input selected by the command flags.
func readInput(c *cli.Context) (*bstr.String, error) {
	compressed := c.Bool("zstd") || (!c.IsSet("zstd") && getConfig(c).Zstd)
	r, err := input.Open(c.String("file"), c.App.Reader, compressed)
	if err != nil {
		return nil, fail("Error opening input: %v", err)
	}
	defer r.Close()

	s := bstr.New()
	if _, err := io.Copy(s, r); err != nil {
		return nil, fail("Error reading input: %v", err)
	}
	log.Debug().Int("size", s.Size()).Int("capacity", s.Capacity()).Msg("input loaded")
	return s, nil
}

func splitCmd(c *cli.Context) error {
	s, err := readInput(c)
	if err != nil {
		return err
	}
	if !c.Bool("keep-newline") && !s.Empty() && s.Back() == '\n' {
		s.PopBack()
	}

	delim := getConfig(c).Delimiter
	if c.IsSet("delim") {
		delim = c.String("delim")
	}
	pieces := s.Split(bstr.FromString(delim))
	log.Info().Str("delim", delim).Int("pieces", len(pieces)).Msg("split")

	end := fn.T(c.Bool("null"), byte(0), byte('\n'))
	w := c.App.Writer
	for _, p := range pieces {
		p.PushBack(end)
		if _, err := p.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

func joinCmd(c *cli.Context) error {
	compressed := c.Bool("zstd") || (!c.IsSet("zstd") && getConfig(c).Zstd)
	r, err := input.Open(c.String("file"), c.App.Reader, compressed)
	if err != nil {
		return fail("Error opening input: %v", err)
	}
	defer r.Close()

	var tokens []*bstr.String
	for {
		tok := bstr.New()
		if err := tok.ReadToken(r); err != nil {
			if err == io.EOF {
				break
			}
			return fail("Error reading input: %v", err)
		}
		tokens = append(tokens, tok)
	}

	if len(tokens) == 0 {
		log.Warn().Msg("join: no tokens in input")
	}

	sep := getConfig(c).Separator
	if c.IsSet("sep") {
		sep = c.String("sep")
	}
	joined := bstr.FromString(sep).Join(tokens)
	log.Info().Str("sep", sep).Int("tokens", len(tokens)).Msg("join")

	joined.PushBack('\n')
	_, err = joined.WriteTo(c.App.Writer)
	return err
}

func repeatCmd(c *cli.Context) error {
	if c.NArg() != 2 {
		return fail("Error: repeat takes exactly two arguments, TEXT and COUNT.")
	}
	count, err := strconv.ParseInt(c.Args().Get(1), 10, 64)
	if err != nil {
		return fail("Error: invalid COUNT %q: %v", c.Args().Get(1), err)
	}
	if count < 0 {
		return fail("Error: COUNT must not be negative.")
	}

	out := bstr.Repeat(bstr.FromString(c.Args().Get(0)), count)
	log.Info().Int64("count", count).Int("size", out.Size()).Msg("repeat")
	out.PushBack('\n')
	_, err = out.WriteTo(c.App.Writer)
	return err
}

func cmpCmd(c *cli.Context) error {
	if c.NArg() != 2 {
		return fail("Error: cmp takes exactly two arguments, A and B.")
	}
	a, b := bstr.FromString(c.Args().Get(0)), bstr.FromString(c.Args().Get(1))

	var rel string
	switch {
	case bstr.Less(a, b):
		rel = "<"
	case bstr.Equal(a, b):
		rel = "="
	default:
		rel = ">"
	}
	_, err := fmt.Fprintln(c.App.Writer, rel)
	return err
}

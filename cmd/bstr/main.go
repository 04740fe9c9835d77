package main

import (
	"fmt"
	"os"

	"bstr-go/pkg/bstr"
	"bstr-go/pkg/config"
	"bstr-go/pkg/log"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// Version information - will be set at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const configKey = "config"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "bstr",
		Usage:   "split, join, repeat and compare byte strings",
		Version: fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the configuration `FILE` (default: search for bstr.yaml)",
			},
			&cli.StringFlag{
				Name:  "log-db",
				Usage: "Persist logs to the SQLite database `PATH`",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Minimum log `LEVEL` (trace, debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log to stderr",
			},
		},
		Before: setup,
		After: func(c *cli.Context) error {
			bstr.SetLogger(zerolog.Nop())
			return log.Close()
		},
		Commands: []*cli.Command{
			splitCommand,
			joinCommand,
			repeatCommand,
			cmpCommand,
			tokensCommand,
			statsCommand,
			logsCommand,
		},
	}
}

// setup loads the configuration and wires logging before any command runs.
func setup(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error loading configuration: %v", err), 1)
	}
	if c.IsSet("log-db") {
		cfg.LogDB = c.String("log-db")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: invalid log level %q", cfg.LogLevel), 1)
	}
	switch {
	case cfg.LogDB != "":
		if err := log.Init(cfg.LogDB, level); err != nil {
			return cli.Exit(fmt.Sprintf("Error initializing logger: %v", err), 1)
		}
	case c.Bool("verbose"):
		log.SetStd(level)
	}
	bstr.SetLogger(log.Logger())

	if cfg.ConfigFile != "" {
		log.Debug().Str("file", cfg.ConfigFile).Msg("using config file")
	}
	c.App.Metadata = map[string]interface{}{configKey: cfg}
	return nil
}

func getConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

// fail logs the message at error level and turns it into an exit error.
func fail(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	log.Error().Msg(msg)
	return cli.Exit(msg, 1)
}

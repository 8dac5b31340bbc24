package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/lox/seedrng/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Draw    DrawCmd          `cmd:"" help:"Draw values from one or more salted streams"`
	Perm    PermCmd          `cmd:"" help:"Print a deterministic permutation of 0..N-1"`
	Seed    SeedCmd          `cmd:"" help:"Print the resolved seed"`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("seedrng"),
		kong.Description("Reproducible salted random number streams"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	// Commands build their own logger once the log level is resolved.
	sigLogger, err := setupLogger(os.Stderr, config.DefaultLogLevel, false)
	parser.FatalIfErrorf(err)

	rt := &runtime{
		ctx:    setupSignalHandler(sigLogger),
		out:    os.Stdout,
		errOut: os.Stderr,
		clock:  quartz.NewReal(),
	}
	err = ctx.Run(&cli.Globals, rt)
	ctx.FatalIfErrorf(err)
}

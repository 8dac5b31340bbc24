package main

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/seedrng/internal/config"
)

// Globals are flags shared by every command.
type Globals struct {
	Config        string  `help:"Path to an HCL config file (missing file uses defaults)" default:"seedrng.hcl" type:"path"`
	RNGSeed       *uint64 `name:"rng-seed" placeholder:"SEED" xor:"seed" help:"Seed for the random number generator"`
	SeedFromClock bool    `xor:"seed" help:"Derive a fresh seed from the clock and log it"`
	LogLevel      string  `help:"Log level (debug, info, warn, error)"`
	Debug         bool    `help:"Enable debug logging"`
}

// runtime carries process dependencies into commands so tests can swap them.
type runtime struct {
	ctx    context.Context
	out    io.Writer
	errOut io.Writer
	clock  quartz.Clock
}

// resolve loads configuration and applies flag overrides.
func (g *Globals) resolve(rt *runtime) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}

	logger, err := setupLogger(rt.errOut, cfg.LogLevel, g.Debug)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case g.SeedFromClock:
		cfg.Seed = config.ClockSeed(rt.clock)
		logger.Info("Using clock-derived seed", "seed", cfg.Seed)
	case g.RNGSeed != nil:
		cfg.Seed = *g.RNGSeed
	}

	logger.Debug("Resolved configuration", "seed", cfg.Seed, "config", g.Config, "streams", len(cfg.Streams))
	return cfg, logger, nil
}

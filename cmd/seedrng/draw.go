package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/seedrng/internal/config"
	"github.com/lox/seedrng/internal/fileutil"
	"github.com/lox/seedrng/internal/stream"
	"github.com/lox/seedrng/rng"
)

// DrawCmd draws values from salted streams.
type DrawCmd struct {
	Salts   []string `arg:"" optional:"" help:"Salts identifying the streams (defaults to the config file's streams)"`
	Count   int      `short:"n" default:"3" help:"Number of values per stream"`
	Format  string   `enum:"text,json" default:"text" help:"Output format (text, json)"`
	Workers int      `default:"0" help:"Streams drawn concurrently (0 for one per stream)"`
	Output  string   `short:"o" type:"path" placeholder:"FILE" help:"Write to FILE atomically instead of stdout"`
}

func (c *DrawCmd) Run(g *Globals, rt *runtime) error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}

	cfg, logger, err := g.resolve(rt)
	if err != nil {
		return err
	}

	factory := rng.NewFactory(cfg.Seed, logger)
	requests := c.requests(cfg)

	results, err := stream.Draw(rt.ctx, factory, requests, c.Workers)
	if err != nil {
		return err
	}
	logger.Debug("Drew streams", "streams", len(results), "seed", cfg.Seed)

	if c.Output != "" {
		if err := fileutil.WriteAtomic(c.Output, 0o644, func(w io.Writer) error {
			return c.render(w, results)
		}); err != nil {
			return err
		}
		logger.Info("Wrote streams", "file", c.Output, "streams", len(results))
		return nil
	}
	return c.render(rt.out, results)
}

func (c *DrawCmd) render(w io.Writer, results []stream.Result) error {
	if c.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		values := make([]string, len(r.Values))
		for i, v := range r.Values {
			values[i] = strconv.FormatUint(v, 10)
		}
		if _, err := fmt.Fprintf(w, "%q: %s\n", r.Salt, strings.Join(values, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (c *DrawCmd) requests(cfg *config.Config) []stream.Request {
	if len(c.Salts) > 0 {
		requests := make([]stream.Request, len(c.Salts))
		for i, salt := range c.Salts {
			requests[i] = stream.Request{Salt: salt, Count: c.Count}
		}
		return requests
	}

	if len(cfg.Streams) == 0 {
		return []stream.Request{{Salt: "", Count: c.Count}}
	}

	requests := make([]stream.Request, len(cfg.Streams))
	for i, s := range cfg.Streams {
		count := s.Count
		if count == 0 {
			count = c.Count
		}
		requests[i] = stream.Request{Salt: s.Salt, Count: count}
	}
	return requests
}

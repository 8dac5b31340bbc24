package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/seedrng/internal/randutil"
	"github.com/lox/seedrng/rng"
)

// PermCmd prints a reproducible shuffle of 0..N-1.
type PermCmd struct {
	Salt []string `sep:"none" placeholder:"PART" help:"Salt part identifying the stream; repeat to join parts (e.g. --salt module --salt pass)"`
	N    int      `arg:"" help:"Number of elements"`
}

func (c *PermCmd) Run(g *Globals, rt *runtime) error {
	if c.N < 0 {
		return fmt.Errorf("N must not be negative, got %d", c.N)
	}

	cfg, logger, err := g.resolve(rt)
	if err != nil {
		return err
	}

	gen := rng.NewFactory(cfg.Seed, logger).NewBytes(rng.JoinSalt(c.Salt...))
	p := randutil.Perm(gen, c.N)

	out := make([]string, len(p))
	for i, v := range p {
		out[i] = strconv.Itoa(v)
	}
	_, err = fmt.Fprintln(rt.out, strings.Join(out, " "))
	return err
}

package main

import "fmt"

// SeedCmd prints the seed every other command would use.
type SeedCmd struct{}

func (c *SeedCmd) Run(g *Globals, rt *runtime) error {
	cfg, _, err := g.resolve(rt)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rt.out, cfg.Seed)
	return err
}

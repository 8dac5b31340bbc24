// Package stream draws values from many salted generators at once.
package stream

import (
	"context"
	"fmt"

	"github.com/lox/seedrng/rng"
	"golang.org/x/sync/errgroup"
)

// Request asks for Count values from the stream identified by Salt.
type Request struct {
	Salt  string
	Count int
}

// Result holds the values drawn for one request.
type Result struct {
	Salt   string   `json:"salt"`
	Values []uint64 `json:"values"`
}

// checkEvery bounds how many values are drawn between cancellation checks.
const checkEvery = 4096

// Draw runs every request against its own generator from f and returns the
// results in request order. Each generator lives inside a single goroutine.
// workers <= 0 runs one goroutine per request.
func Draw(ctx context.Context, f *rng.Factory, requests []Request, workers int) ([]Result, error) {
	for _, req := range requests {
		if req.Count < 1 {
			return nil, fmt.Errorf("stream %q: count must be at least 1, got %d", req.Salt, req.Count)
		}
	}

	results := make([]Result, len(requests))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, req := range requests {
		g.Go(func() error {
			values, err := drawOne(ctx, f.New(req.Salt), req.Count)
			if err != nil {
				return err
			}
			results[i] = Result{Salt: req.Salt, Values: values}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func drawOne(ctx context.Context, gen *rng.Generator, count int) ([]uint64, error) {
	values := make([]uint64, count)
	for i := range values {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		values[i] = gen.Next()
	}
	return values, nil
}

package equity

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokersim/internal/randutil"
)

// SimulateParallel splits a request's trials across workers, each drawing
// from its own random stream derived from the request seed, so a fixed
// seed and worker count reproduce identical totals. Workers <= 0 uses
// GOMAXPROCS, capped by the trial count.
func SimulateParallel(ctx context.Context, req Request, workers int) (Result, error) {
	if err := req.validate(boardStreets); err != nil {
		return Result{}, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > req.Trials {
		workers = req.Trials
	}

	parent := randutil.FromSeed(req.Seed)

	var done atomic.Int64
	stop := req.Progress.start(req.Trials, &done)
	defer stop()

	share := req.Trials / workers
	extra := req.Trials % workers

	results := make([]Result, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		trials := share
		if w < extra {
			trials++
		}
		seed := randutil.ChildSeed(parent)
		g.Go(func() error {
			r, err := runTrials(ctx, req, randutil.New(seed), trials, nil, &done)
			if err != nil {
				return err
			}
			results[w] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total Result
	for _, r := range results {
		total.Wins += r.Wins
		total.Ties += r.Ties
		total.Losses += r.Losses
		total.Trials += r.Trials
	}
	return total, nil
}

package equity

import (
	"context"
	"sync/atomic"

	"github.com/lox/pokersim/internal/randutil"
	"github.com/lox/pokersim/poker"
)

// DistributionReport extends a simulation result with the histogram of
// hand categories hero made across trials and the best category observed.
// Best is an empirical bound from sampling, not a guarantee.
type DistributionReport struct {
	Result Result
	Counts [poker.NumHandCategories]int
	Best   poker.HandCategory
}

// Frequency returns how often hero made the category, as a fraction of
// trials.
func (d DistributionReport) Frequency(cat poker.HandCategory) float64 {
	if d.Result.Trials == 0 || int(cat) >= poker.NumHandCategories {
		return 0
	}
	return float64(d.Counts[cat]) / float64(d.Result.Trials)
}

// Frequencies returns the nonzero category frequencies.
func (d DistributionReport) Frequencies() map[poker.HandCategory]float64 {
	out := make(map[poker.HandCategory]float64)
	for c, n := range d.Counts {
		if n > 0 {
			out[poker.HandCategory(c)] = float64(n) / float64(d.Result.Trials)
		}
	}
	return out
}

// Distribution runs the same trial loop as Simulate while also classifying
// hero's final seven cards every trial. Any board length up to 5 is
// accepted, so the sampler works mid-street.
func Distribution(ctx context.Context, req Request) (DistributionReport, error) {
	if err := req.validate(boardAny); err != nil {
		return DistributionReport{}, err
	}
	rng := randutil.FromSeed(req.Seed)

	var done atomic.Int64
	stop := req.Progress.start(req.Trials, &done)
	defer stop()

	var report DistributionReport
	res, err := runTrials(ctx, req, rng, req.Trials, &report.Counts, &done)
	if err != nil {
		return DistributionReport{}, err
	}
	report.Result = res

	for c := poker.NumHandCategories - 1; c >= 0; c-- {
		if report.Counts[c] > 0 {
			report.Best = poker.HandCategory(c)
			break
		}
	}
	return report, nil
}

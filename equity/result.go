package equity

import (
	"fmt"
	"math"
)

// Result aggregates win/tie/loss counts for a simulation run. Wins, Ties
// and Losses always sum to Trials. A Result is a value created fresh per
// call and never shared between callers.
type Result struct {
	Wins   int
	Ties   int
	Losses int
	Trials int
}

// WinRate returns the fraction of trials won, or 0 before any trials.
func (r Result) WinRate() float64 { return r.rate(r.Wins) }

// TieRate returns the fraction of trials tied.
func (r Result) TieRate() float64 { return r.rate(r.Ties) }

// LossRate returns the fraction of trials lost.
func (r Result) LossRate() float64 { return r.rate(r.Losses) }

func (r Result) rate(n int) float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(n) / float64(r.Trials)
}

// Equity returns hero's expected pot share, counting ties as half a win.
func (r Result) Equity() float64 {
	return r.WinRate() + r.TieRate()/2
}

// ConfidenceInterval returns a 95% interval around the equity estimate
// using the normal approximation of the binomial proportion, clamped to
// [0, 1].
func (r Result) ConfidenceInterval() (low, high float64) {
	if r.Trials == 0 {
		return 0, 0
	}
	p := r.Equity()
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(r.Trials))
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// String summarises the result as percentages.
func (r Result) String() string {
	return fmt.Sprintf("win %.1f%% tie %.1f%% loss %.1f%% (equity %.1f%%, %d trials)",
		r.WinRate()*100, r.TieRate()*100, r.LossRate()*100, r.Equity()*100, r.Trials)
}

package analysis

import (
	"context"
	"fmt"

	"github.com/lox/pokersim/equity"
	"github.com/lox/pokersim/poker"
)

// DefaultLiveTrials is the trial budget for live analysis, lighter than a
// batch simulation so reports keep up with card entry.
const DefaultLiveTrials = 3000

// LiveRequest analyzes cards in the order they appear at the table: the
// first two are hero's hole cards and the rest the board.
type LiveRequest struct {
	Cards     []poker.Card
	Opponents int
	Trials    int
	Seed      *int64
}

// LiveReport is the combined picture for the cards seen so far. With a
// single known card only Message is populated. From two cards on the
// distribution sampler runs, and from five cards the made hand, draws and
// feasible stronger hands are included. Current reports the hand already
// made while Distribution.Best is the strongest category sampled, so both
// readings stay visible.
type LiveReport struct {
	Known int
	Hole  []poker.Card
	Board []poker.Card

	// Message prompts for more cards when simulation cannot run yet.
	Message string

	Distribution equity.DistributionReport
	Strategy     string

	Current  Description
	Draws    []Draw
	BeatenBy []poker.HandCategory
}

// Live analyzes one to seven cards as they appear.
func Live(ctx context.Context, req LiveRequest) (LiveReport, error) {
	n := len(req.Cards)
	if n == 0 {
		return LiveReport{}, fmt.Errorf("%w: no cards selected", poker.ErrInvalidInput)
	}
	if n > 7 {
		return LiveReport{}, fmt.Errorf("%w: at most 7 cards, got %d", poker.ErrInvalidInput, n)
	}

	if n == 1 {
		return LiveReport{
			Known:   1,
			Hole:    req.Cards,
			Message: "Select 2 hole cards for probability analysis.",
		}, nil
	}

	opponents := req.Opponents
	if opponents == 0 {
		opponents = 1
	}
	trials := req.Trials
	if trials == 0 {
		trials = DefaultLiveTrials
	}

	hole := req.Cards[:2]
	board := req.Cards[2:]

	dist, err := equity.Distribution(ctx, equity.Request{
		Hole:      hole,
		Board:     board,
		Opponents: opponents,
		Trials:    trials,
		Seed:      req.Seed,
	})
	if err != nil {
		return LiveReport{}, err
	}

	report := LiveReport{
		Known:        n,
		Hole:         hole,
		Board:        board,
		Distribution: dist,
		Strategy:     StrategyMessage(dist.Result.WinRate(), dist.Result.TieRate()),
	}

	if n >= 5 {
		desc, err := DescribeHand(req.Cards)
		if err != nil {
			return LiveReport{}, err
		}
		report.Current = desc
		report.Draws = PotentialDraws(hole, board)
		beats, err := HandsThatBeat(hole, board)
		if err != nil {
			return LiveReport{}, err
		}
		report.BeatenBy = beats
	}

	return report, nil
}

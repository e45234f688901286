// Package equity estimates hold'em win/tie/loss probabilities by Monte
// Carlo simulation against uniformly random opponent hands, and provides
// the street progression and hand distribution analytics built on top of
// those estimates.
package equity

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"sync/atomic"

	"github.com/lox/pokersim/internal/randutil"
	"github.com/lox/pokersim/poker"
)

const (
	// MaxOpponents bounds the number of simulated opponents per request.
	MaxOpponents = 8

	// ctxPollStride is how many trials run between context checks.
	ctxPollStride = 1024
)

// Request describes one simulation: hero's hole cards, the known board,
// the opponent count and the trial budget.
type Request struct {
	Hole      []poker.Card
	Board     []poker.Card
	Opponents int
	Trials    int

	// Seed pins the random stream for this call. Nil draws a fresh
	// stream so repeated calls are independent.
	Seed *int64

	// Progress, when non-nil, receives periodic completion callbacks.
	Progress *Progress
}

// boardMode selects which board lengths a request accepts. Simulate models
// betting streets so the board must be 0, 3, 4 or 5 cards; Distribution
// and the street tracker accept any partial board.
type boardMode int

const (
	boardStreets boardMode = iota
	boardAny
)

func (r Request) validate(mode boardMode) error {
	if len(r.Hole) != 2 {
		return fmt.Errorf("%w: hole must be exactly 2 cards, got %d", poker.ErrInvalidInput, len(r.Hole))
	}
	switch n := len(r.Board); {
	case mode == boardStreets && n != 0 && n != 3 && n != 4 && n != 5:
		return fmt.Errorf("%w: board must be 0, 3, 4 or 5 cards, got %d", poker.ErrInvalidInput, n)
	case mode == boardAny && n > 5:
		return fmt.Errorf("%w: board must be at most 5 cards, got %d", poker.ErrInvalidInput, n)
	}
	if r.Opponents < 1 || r.Opponents > MaxOpponents {
		return fmt.Errorf("%w: opponents must be between 1 and %d, got %d", poker.ErrInvalidInput, MaxOpponents, r.Opponents)
	}
	if r.Trials < 1 {
		return fmt.Errorf("%w: trials must be at least 1, got %d", poker.ErrInvalidInput, r.Trials)
	}
	var known poker.Hand
	for _, c := range r.Hole {
		if known.HasCard(c) {
			return fmt.Errorf("%w: duplicate card %s", poker.ErrInvalidInput, c)
		}
		known.AddCard(c)
	}
	for _, c := range r.Board {
		if known.HasCard(c) {
			return fmt.Errorf("%w: duplicate card %s", poker.ErrInvalidInput, c)
		}
		known.AddCard(c)
	}
	return checkDeck(len(r.Board), r.Opponents)
}

// checkDeck verifies enough unseen cards remain to complete the board and
// deal two cards to every opponent.
func checkDeck(boardLen, opponents int) error {
	need := (5 - boardLen) + 2*opponents
	avail := poker.NumCards - 2 - boardLen
	if need > avail {
		return fmt.Errorf("%w: need %d cards but only %d unseen", poker.ErrDeckExhausted, need, avail)
	}
	return nil
}

// Simulate estimates hero's win/tie/loss probabilities by completing the
// board Trials times and dealing every opponent a random hand from the
// unseen cards. Hero wins a trial only by beating every opponent; a single
// stronger opponent makes it a loss, and matching the best opponent is a
// tie.
func Simulate(ctx context.Context, req Request) (Result, error) {
	if err := req.validate(boardStreets); err != nil {
		return Result{}, err
	}
	rng := randutil.FromSeed(req.Seed)

	var done atomic.Int64
	stop := req.Progress.start(req.Trials, &done)
	defer stop()

	return runTrials(ctx, req, rng, req.Trials, nil, &done)
}

// runTrials is the shared trial loop. It owns all scratch for the run: the
// remaining deck is built once and reshuffled per trial, and the board and
// hand slices are reused throughout. When counts is non-nil hero's hand
// category is tallied every trial.
func runTrials(ctx context.Context, req Request, rng *rand.Rand, trials int,
	counts *[poker.NumHandCategories]int, done *atomic.Int64) (Result, error) {

	known := poker.NewHand(req.Hole...)
	for _, c := range req.Board {
		known.AddCard(c)
	}
	deck := poker.NewDeckWithout(rng, known)

	board := make([]poker.Card, 5)
	copy(board, req.Board)
	hero := make([]poker.Card, 7)
	copy(hero, req.Hole)
	opp := make([]poker.Card, 7)

	var res Result
	for i := 0; i < trials; i++ {
		if i%ctxPollStride == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		deck.Shuffle()
		copy(board[len(req.Board):], deck.Deal(5-len(req.Board)))
		copy(hero[2:], board)
		copy(opp[2:], board)

		heroRank, err := poker.EvaluateHand(hero)
		if err != nil {
			return Result{}, err
		}

		beaten, tied := false, false
		for o := 0; o < req.Opponents; o++ {
			copy(opp[:2], deck.Deal(2))
			oppRank, err := poker.EvaluateHand(opp)
			if err != nil {
				return Result{}, err
			}
			switch poker.CompareHands(heroRank, oppRank) {
			case -1:
				beaten = true
			case 0:
				tied = true
			}
			if beaten {
				break
			}
		}

		switch {
		case beaten:
			res.Losses++
		case tied:
			res.Ties++
		default:
			res.Wins++
		}

		if counts != nil {
			counts[heroRank.Category()]++
		}
		res.Trials++
		done.Add(1)
	}
	return res, nil
}

package equity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokersim/poker"
)

func mustCards(t *testing.T, s string) []poker.Card {
	t.Helper()
	cards, err := poker.ParseCards(s)
	require.NoError(t, err)
	return cards
}

func seedPtr(s int64) *int64 { return &s }

func TestSimulateValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  Request
	}{
		{"no hole cards", Request{Opponents: 1, Trials: 10}},
		{"one hole card", Request{Hole: mustCards(t, "As"), Opponents: 1, Trials: 10}},
		{"three hole cards", Request{Hole: mustCards(t, "As Ks Qs"), Opponents: 1, Trials: 10}},
		{"one-card board", Request{Hole: mustCards(t, "As Ks"), Board: mustCards(t, "2c"), Opponents: 1, Trials: 10}},
		{"two-card board", Request{Hole: mustCards(t, "As Ks"), Board: mustCards(t, "2c 3d"), Opponents: 1, Trials: 10}},
		{"six-card board", Request{Hole: mustCards(t, "As Ks"), Board: mustCards(t, "2c 3d 4h 5s 6c 7d"), Opponents: 1, Trials: 10}},
		{"zero opponents", Request{Hole: mustCards(t, "As Ks"), Opponents: 0, Trials: 10}},
		{"nine opponents", Request{Hole: mustCards(t, "As Ks"), Opponents: 9, Trials: 10}},
		{"zero trials", Request{Hole: mustCards(t, "As Ks"), Opponents: 1, Trials: 0}},
		{"negative trials", Request{Hole: mustCards(t, "As Ks"), Opponents: 1, Trials: -5}},
		{"hole and board overlap", Request{Hole: mustCards(t, "As Ks"), Board: mustCards(t, "As 2c 3d"), Opponents: 1, Trials: 10}},
		{"duplicate hole cards", Request{
			Hole:      []poker.Card{poker.NewCard(poker.Ace, poker.Spades), poker.NewCard(poker.Ace, poker.Spades)},
			Opponents: 1,
			Trials:    10,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Simulate(ctx, tt.req)
			require.ErrorIs(t, err, poker.ErrInvalidInput)
		})
	}
}

func TestDeckGuard(t *testing.T) {
	t.Parallel()

	// Largest legal demand: preflop board with the opponent cap.
	require.NoError(t, checkDeck(0, MaxOpponents))

	err := checkDeck(0, 23)
	require.ErrorIs(t, err, poker.ErrDeckExhausted)
}

func TestSimulateDeterministicWithSeed(t *testing.T) {
	ctx := context.Background()
	req := Request{
		Hole:      mustCards(t, "As Kd"),
		Board:     mustCards(t, "Qh Js 9c"),
		Opponents: 2,
		Trials:    2000,
		Seed:      seedPtr(42),
	}

	first, err := Simulate(ctx, req)
	require.NoError(t, err)
	second, err := Simulate(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSimulateCountsBalance(t *testing.T) {
	ctx := context.Background()
	res, err := Simulate(ctx, Request{
		Hole:      mustCards(t, "7h 7d"),
		Opponents: 3,
		Trials:    5000,
		Seed:      seedPtr(7),
	})
	require.NoError(t, err)

	assert.Equal(t, 5000, res.Trials)
	assert.Equal(t, res.Trials, res.Wins+res.Ties+res.Losses)
	assert.InDelta(t, 1.0, res.WinRate()+res.TieRate()+res.LossRate(), 1e-9)

	low, high := res.ConfidenceInterval()
	assert.LessOrEqual(t, low, res.Equity())
	assert.GreaterOrEqual(t, high, res.Equity())
	assert.GreaterOrEqual(t, low, 0.0)
	assert.LessOrEqual(t, high, 1.0)
}

func TestPocketAcesHeadsUp(t *testing.T) {
	ctx := context.Background()
	res, err := Simulate(ctx, Request{
		Hole:      mustCards(t, "As Ah"),
		Opponents: 1,
		Trials:    20000,
		Seed:      seedPtr(1),
	})
	require.NoError(t, err)

	assert.Greater(t, res.WinRate(), 0.80, "pocket aces should dominate a random hand")
	assert.Less(t, res.WinRate(), 0.90)
}

func TestBoardPlaysForEveryone(t *testing.T) {
	ctx := context.Background()

	// A royal flush on the board is every player's best hand, so no
	// opponent can ever be strictly ahead and every trial ties.
	res, err := Simulate(ctx, Request{
		Hole:      mustCards(t, "2c 3d"),
		Board:     mustCards(t, "Ts Js Qs Ks As"),
		Opponents: 3,
		Trials:    400,
		Seed:      seedPtr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, 400, res.Ties)
	assert.Equal(t, 0, res.Wins)
	assert.Equal(t, 0, res.Losses)
	assert.InDelta(t, 0.5, res.Equity(), 1e-9)
}

func TestTrashHandLosesToTheField(t *testing.T) {
	ctx := context.Background()

	// Winning means beating all eight opponents, so the worst starting
	// hand should win only rarely.
	res, err := Simulate(ctx, Request{
		Hole:      mustCards(t, "2c 7d"),
		Opponents: 8,
		Trials:    2000,
		Seed:      seedPtr(11),
	})
	require.NoError(t, err)

	assert.Less(t, res.WinRate(), 0.2)
}

func TestSimulateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Simulate(ctx, Request{
		Hole:      mustCards(t, "As Ks"),
		Opponents: 1,
		Trials:    100,
	})
	require.ErrorIs(t, err, context.Canceled)
}

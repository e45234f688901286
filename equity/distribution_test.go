package equity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokersim/poker"
)

func TestDistribution(t *testing.T) {
	ctx := context.Background()

	t.Run("counts sum to trials", func(t *testing.T) {
		rep, err := Distribution(ctx, Request{
			Hole:      mustCards(t, "As Kh"),
			Opponents: 2,
			Trials:    2000,
			Seed:      seedPtr(13),
		})
		require.NoError(t, err)

		sum := 0
		for _, n := range rep.Counts {
			sum += n
		}
		assert.Equal(t, 2000, sum)
		assert.Equal(t, 2000, rep.Result.Trials)

		total := 0.0
		for _, f := range rep.Frequencies() {
			total += f
		}
		assert.InDelta(t, 1.0, total, 1e-9)
	})

	t.Run("best reflects the strongest observed category", func(t *testing.T) {
		rep, err := Distribution(ctx, Request{
			Hole:      mustCards(t, "As Kh"),
			Opponents: 1,
			Trials:    3000,
			Seed:      seedPtr(29),
		})
		require.NoError(t, err)

		assert.Positive(t, rep.Counts[rep.Best])
		for c := int(rep.Best) + 1; c < poker.NumHandCategories; c++ {
			assert.Zero(t, rep.Counts[c])
		}
	})

	t.Run("board royal flush plays for hero every trial", func(t *testing.T) {
		rep, err := Distribution(ctx, Request{
			Hole:      mustCards(t, "2c 3d"),
			Board:     mustCards(t, "Ts Js Qs Ks As"),
			Opponents: 2,
			Trials:    300,
			Seed:      seedPtr(2),
		})
		require.NoError(t, err)

		assert.Equal(t, 300, rep.Counts[poker.StraightFlush])
		assert.Equal(t, poker.StraightFlush, rep.Best)
		assert.Equal(t, 300, rep.Result.Ties)
		assert.InDelta(t, 1.0, rep.Frequency(poker.StraightFlush), 1e-9)
	})

	t.Run("pocket pair never makes a bare high card", func(t *testing.T) {
		rep, err := Distribution(ctx, Request{
			Hole:      mustCards(t, "As Ah"),
			Opponents: 1,
			Trials:    1000,
			Seed:      seedPtr(4),
		})
		require.NoError(t, err)

		assert.Zero(t, rep.Counts[poker.HighCard])
		assert.GreaterOrEqual(t, rep.Best, poker.OnePair)
	})

	t.Run("mid-street boards are accepted", func(t *testing.T) {
		rep, err := Distribution(ctx, Request{
			Hole:      mustCards(t, "As Kh"),
			Board:     mustCards(t, "Qd Jc"),
			Opponents: 1,
			Trials:    500,
			Seed:      seedPtr(6),
		})
		require.NoError(t, err)
		assert.Equal(t, 500, rep.Result.Trials)
	})

	t.Run("rejects oversized boards", func(t *testing.T) {
		_, err := Distribution(ctx, Request{
			Hole:      mustCards(t, "As Kh"),
			Board:     mustCards(t, "2c 3d 4h 5s 6c 7d"),
			Opponents: 1,
			Trials:    100,
		})
		require.ErrorIs(t, err, poker.ErrInvalidInput)
	})

	t.Run("reproducible with seed", func(t *testing.T) {
		req := Request{
			Hole:      mustCards(t, "Ts 9s"),
			Board:     mustCards(t, "8s 7s 2d"),
			Opponents: 2,
			Trials:    1500,
			Seed:      seedPtr(99),
		}
		first, err := Distribution(ctx, req)
		require.NoError(t, err)
		second, err := Distribution(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

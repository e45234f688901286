package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokersim/poker"
)

func TestHandsThatBeat(t *testing.T) {
	t.Run("royal flush fears nothing", func(t *testing.T) {
		beats, err := HandsThatBeat(mustCards(t, "As Ks"), mustCards(t, "Qs Js Ts"))
		require.NoError(t, err)
		assert.Empty(t, beats)
	})

	t.Run("feasible categories come strongest first", func(t *testing.T) {
		// Two pair with three clubs showing and a live wheel window keeps
		// every stronger category in play.
		beats, err := HandsThatBeat(mustCards(t, "Ah Kd"), mustCards(t, "Ac Kc 2s 3c"))
		require.NoError(t, err)
		assert.Equal(t, []poker.HandCategory{
			poker.StraightFlush,
			poker.FourOfAKind,
			poker.FullHouse,
			poker.Flush,
			poker.Straight,
			poker.ThreeOfAKind,
		}, beats)
	})

	t.Run("rainbow board prunes flushes", func(t *testing.T) {
		beats, err := HandsThatBeat(mustCards(t, "Ah Kd"), mustCards(t, "Qc 2s 7h 9d"))
		require.NoError(t, err)
		assert.Equal(t, []poker.HandCategory{
			poker.FourOfAKind,
			poker.FullHouse,
			poker.Straight,
			poker.ThreeOfAKind,
			poker.TwoPair,
			poker.OnePair,
		}, beats)
		assert.NotContains(t, beats, poker.StraightFlush)
		assert.NotContains(t, beats, poker.Flush)
		assert.NotContains(t, beats, poker.HighCard)
	})

	t.Run("scattered ranks prune straights", func(t *testing.T) {
		beats, err := HandsThatBeat(mustCards(t, "2c 2d"), mustCards(t, "7h 9s Kd"))
		require.NoError(t, err)
		assert.Equal(t, []poker.HandCategory{
			poker.FourOfAKind,
			poker.FullHouse,
			poker.ThreeOfAKind,
			poker.TwoPair,
		}, beats)
	})

	t.Run("hero blocking every board rank prunes quads", func(t *testing.T) {
		// Hero holds one card of each board rank, so no opponent can reach
		// four of a kind, and the rainbow board rules out straight flushes.
		beats, err := HandsThatBeat(mustCards(t, "Ah Kd"), mustCards(t, "Ac Kc Ks"))
		require.NoError(t, err)
		assert.Empty(t, beats)
	})

	t.Run("too few cards", func(t *testing.T) {
		_, err := HandsThatBeat(mustCards(t, "As Ks"), mustCards(t, "Qs 2c"))
		require.ErrorIs(t, err, poker.ErrInvalidHandSize)
	})
}

package poker

import (
	rand "math/rand/v2"
	"testing"

	hankin "github.com/paulhankin/poker"
)

// toHankin converts a card to the reference evaluator's representation,
// which numbers ranks 2-14 with the ace high.
func toHankin(t *testing.T, c Card) hankin.Card {
	t.Helper()
	var suit hankin.Suit
	switch c.Suit() {
	case Clubs:
		suit = hankin.Club
	case Diamonds:
		suit = hankin.Diamond
	case Hearts:
		suit = hankin.Heart
	case Spades:
		suit = hankin.Spade
	}
	hc, err := hankin.MakeCard(suit, hankin.Rank(int(c.Rank())+2))
	if err != nil {
		t.Fatalf("MakeCard(%s): %v", c, err)
	}
	return hc
}

// TestEvaluatorAgreesWithReference cross-checks hand ordering against an
// independent third-party evaluator: for showdowns sharing a board, the
// winner (or tie) must match.
func TestEvaluatorAgreesWithReference(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(777, 13))
	deckIDs := make([]int, NumCards)
	for i := range deckIDs {
		deckIDs[i] = i
	}

	sign := func(x int) int {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	}

	for trial := 0; trial < 400; trial++ {
		rng.Shuffle(len(deckIDs), func(i, j int) {
			deckIDs[i], deckIDs[j] = deckIDs[j], deckIDs[i]
		})

		cards := make([]Card, 9)
		for i := range cards {
			cards[i] = Card(1) << deckIDs[i]
		}
		hero := append([]Card{cards[0], cards[1]}, cards[4:9]...)
		villain := append([]Card{cards[2], cards[3]}, cards[4:9]...)

		heroRank, err := EvaluateHand(hero)
		if err != nil {
			t.Fatal(err)
		}
		villainRank, err := EvaluateHand(villain)
		if err != nil {
			t.Fatal(err)
		}

		var heroRef, villainRef [7]hankin.Card
		for i, c := range hero {
			heroRef[i] = toHankin(t, c)
		}
		for i, c := range villain {
			villainRef[i] = toHankin(t, c)
		}
		refCmp := int(hankin.Eval7(&heroRef)) - int(hankin.Eval7(&villainRef))

		if got, want := CompareHands(heroRank, villainRank), sign(refCmp); got != want {
			t.Fatalf("hero %s vs villain %s: CompareHands = %d, reference = %d",
				FormatCards(hero), FormatCards(villain), got, want)
		}
	}
}

package analysis

import (
	"math/bits"

	"github.com/lox/pokersim/poker"
)

// HandsThatBeat lists the hand categories strictly stronger than hero's
// current hand that the known cards leave feasible, strongest first. It
// never includes hero's own category or anything weaker, and it prunes
// categories the visible cards rule out: flushes need a suit with three
// known cards, straights a five-rank window with three known ranks, and
// quads a rank hero is not blocking.
func HandsThatBeat(hole, board []poker.Card) ([]poker.HandCategory, error) {
	known := make([]poker.Card, 0, len(hole)+len(board))
	known = append(known, hole...)
	known = append(known, board...)

	v, err := poker.Classify(known)
	if err != nil {
		return nil, err
	}

	heroHand := poker.NewHand(hole...)
	boardHand := poker.NewHand(board...)
	knownHand := poker.NewHand(known...)

	var out []poker.HandCategory
	for c := poker.StraightFlush; c > v.Category; c-- {
		if categoryFeasible(c, heroHand, boardHand, knownHand) {
			out = append(out, c)
		}
	}
	return out, nil
}

func categoryFeasible(cat poker.HandCategory, hero, board, known poker.Hand) bool {
	switch cat {
	case poker.StraightFlush, poker.Flush:
		return suitWithAtLeast(known, 3)
	case poker.FourOfAKind:
		return quadsFeasible(hero, board)
	case poker.Straight:
		return straightWindowWithAtLeast(known.GetRankMask(), 3)
	default:
		// Full houses down through pairs only need rank matches from the
		// unseen cards, which an opponent's two hole cards plus the
		// remaining board can always supply.
		return true
	}
}

func suitWithAtLeast(h poker.Hand, n int) bool {
	for suit := poker.Clubs; suit <= poker.Spades; suit++ {
		if bits.OnesCount16(h.GetSuitMask(suit)) >= n {
			return true
		}
	}
	return false
}

func straightWindowWithAtLeast(ranks uint16, n int) bool {
	for high := int(poker.Ace); high >= int(poker.Five); high-- {
		if windowCount(ranks, high) >= n {
			return true
		}
	}
	return false
}

// quadsFeasible reports whether some rank hero holds none of could still
// make four of a kind: a single board card of the rank with three copies
// unseen, or a board pair with two unseen.
func quadsFeasible(hero, board poker.Hand) bool {
	for r := poker.Two; r <= poker.Ace; r++ {
		if rankCount(hero, r) != 0 {
			continue
		}
		b := rankCount(board, r)
		unseen := 4 - b
		if (b == 1 && unseen >= 3) || (b == 2 && unseen >= 2) {
			return true
		}
	}
	return false
}

func rankCount(h poker.Hand, r poker.Rank) int {
	n := 0
	for suit := poker.Clubs; suit <= poker.Spades; suit++ {
		if h.GetSuitMask(suit)&(1<<r) != 0 {
			n++
		}
	}
	return n
}

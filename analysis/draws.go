package analysis

import (
	"fmt"
	"math/bits"

	"github.com/lox/pokersim/poker"
)

// DrawType identifies a kind of draw the known cards are on.
type DrawType uint8

const (
	FlushDraw DrawType = iota
	StraightDraw
	WheelDraw
)

// Draw is a potential improvement with its out count.
type Draw struct {
	Type DrawType
	Outs int
}

// String renders the draw for display, e.g. "Flush draw (9 outs)".
func (d Draw) String() string {
	switch d.Type {
	case FlushDraw:
		return fmt.Sprintf("Flush draw (%d outs)", d.Outs)
	case StraightDraw:
		return fmt.Sprintf("Straight draw (%d outs)", d.Outs)
	case WheelDraw:
		return fmt.Sprintf("Wheel draw (%d outs)", d.Outs)
	}
	return "Unknown draw"
}

// PotentialDraws reports the draws present across hero's known cards: a
// flush draw when any suit shows exactly four cards, a straight draw when
// any five-rank window is one rank short, and a wheel draw when at least
// four of A-2-3-4-5 are present. Fewer than five known cards is too early
// to call anything a draw.
func PotentialDraws(hole, board []poker.Card) []Draw {
	if len(hole)+len(board) < 5 {
		return nil
	}
	known := poker.NewHand(hole...)
	for _, c := range board {
		known.AddCard(c)
	}

	var draws []Draw
	for suit := poker.Clubs; suit <= poker.Spades; suit++ {
		if bits.OnesCount16(known.GetSuitMask(suit)) == 4 {
			draws = append(draws, Draw{Type: FlushDraw, Outs: 9})
			break
		}
	}

	ranks := known.GetRankMask()
	for high := int(poker.Ace); high >= int(poker.Five); high-- {
		if windowCount(ranks, high) == 4 {
			draws = append(draws, Draw{Type: StraightDraw, Outs: 8})
			break
		}
	}

	if windowCount(ranks, int(poker.Five)) >= 4 {
		draws = append(draws, Draw{Type: WheelDraw, Outs: 8})
	}

	return draws
}

// windowCount counts how many ranks of the five-card straight window with
// the given high rank are present. The five-high window wraps around to
// the ace, making it the wheel.
func windowCount(ranks uint16, high int) int {
	n := 0
	for k := 0; k < 5; k++ {
		r := ((high-k)%13 + 13) % 13
		if ranks&(1<<r) != 0 {
			n++
		}
	}
	return n
}

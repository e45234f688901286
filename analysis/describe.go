// Package analysis provides the static analytics layered over the
// classifier and simulator: hand descriptions, draw detection, feasible
// stronger hands, strategy advice and the live card-by-card report.
package analysis

import (
	"github.com/lox/pokersim/poker"
)

// Description reports hero's best made hand over 5 to 7 known cards.
// Below five known cards there is no hand yet and HasHand is false.
type Description struct {
	Known   int
	HasHand bool
	Value   poker.HandValue
}

// String renders the description for display.
func (d Description) String() string {
	if !d.HasHand {
		return "Need more cards"
	}
	return d.Value.String()
}

// DescribeHand classifies hero's hand over all known cards, hole and board
// combined. Fewer than five known cards yields a no-hand description
// rather than an error; more than seven fails with ErrInvalidHandSize.
func DescribeHand(cards []poker.Card) (Description, error) {
	if len(cards) < 5 {
		return Description{Known: len(cards)}, nil
	}
	v, err := poker.Classify(cards)
	if err != nil {
		return Description{}, err
	}
	return Description{Known: len(cards), HasHand: true, Value: v}, nil
}

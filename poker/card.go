package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Card represents a single card as a bit position in a uint64.
// The bit position doubles as the card's integer identifier:
// id = suit*13 + rank, so ids 0-51 map to [13 clubs][13 diamonds][13 hearts][13 spades].
type Card uint64

// Hand is also a uint64 but can contain multiple cards.
// Multiple cards are represented by multiple bits set.
type Hand uint64

// Suit identifies one of the four suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Rank identifies a card rank, 0-12 for deuce through ace.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"

	// NumCards is the size of the deck and the exclusive upper bound for card ids.
	NumCards = 52

	rankBits = 0x1FFF // 13 bits for ranks
)

// String returns the rank's display character ("2".."9", "T", "J", "Q", "K", "A").
func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return string(rankChars[r])
}

// String returns the suit's display character ("c", "d", "h", "s").
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return string(suitChars[s])
}

// NewCard creates a card from rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card(1) << (uint8(suit)*13 + uint8(rank))
}

// CardFromID converts a card identifier in [0,51] into a Card.
// The identifier encodes rank = id mod 13 and suit = id div 13.
func CardFromID(id int) (Card, error) {
	if id < 0 || id >= NumCards {
		return 0, fmt.Errorf("%w: card id %d out of range [0,51]", ErrInvalidInput, id)
	}
	return Card(1) << id, nil
}

// ID returns the card's integer identifier (0-51), the bit position it occupies.
func (c Card) ID() int {
	if c == 0 || c&(c-1) != 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(c))
}

// Rank returns the rank of the card (Two through Ace).
func (c Card) Rank() Rank {
	id := c.ID()
	if id < 0 {
		return Rank(255)
	}
	return Rank(id % 13)
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	id := c.ID()
	if id < 0 {
		return Suit(255)
	}
	return Suit(id / 13)
}

// String returns the string representation (e.g., "As", "Kh").
func (c Card) String() string {
	id := c.ID()
	if id < 0 {
		return "??"
	}
	return Rank(id%13).String() + Suit(id/13).String()
}

// ParseCard parses a string like "As" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: invalid card string %q", ErrInvalidInput, s)
	}

	var rank Rank
	switch s[0] {
	case '2':
		rank = Two
	case '3':
		rank = Three
	case '4':
		rank = Four
	case '5':
		rank = Five
	case '6':
		rank = Six
	case '7':
		rank = Seven
	case '8':
		rank = Eight
	case '9':
		rank = Nine
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return 0, fmt.Errorf("%w: invalid rank %q", ErrInvalidInput, s[0])
	}

	var suit Suit
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return 0, fmt.Errorf("%w: invalid suit %q", ErrInvalidInput, s[1])
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a whitespace- or comma-separated list of card strings
// ("As Kh" or "As,Kh") into cards, rejecting duplicates.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, nil
	}

	cards := make([]Card, 0, len(fields))
	var seen Hand
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		if seen.HasCard(c) {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrInvalidInput, c)
		}
		seen.AddCard(c)
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCards renders cards as a space-separated string ("As Kh Qd").
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// NewHand creates a hand from multiple cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard checks if the hand contains a specific card.
func (h Hand) HasCard(c Card) bool {
	return (h & Hand(c)) != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the cards of a specific suit as a 13-bit rank bitmask.
func (h Hand) GetSuitMask(suit Suit) uint16 {
	return uint16((h >> (uint8(suit) * 13)) & rankBits)
}

// GetRankMask returns a bitmask of which ranks are present across all suits.
func (h Hand) GetRankMask() uint16 {
	var mask uint16
	for suit := Clubs; suit <= Spades; suit++ {
		mask |= h.GetSuitMask(suit)
	}
	return mask
}

// Cards expands the hand into its cards in ascending id order.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	rest := uint64(h)
	for rest != 0 {
		low := rest & -rest
		cards = append(cards, Card(low))
		rest &^= low
	}
	return cards
}

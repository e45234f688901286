package poker

import (
	rand "math/rand/v2"
)

// Deck holds an ordered set of cards and deals them front to back.
// Shuffling uses the deck's own random source so callers control determinism.
type Deck struct {
	cards [NumCards]Card
	size  int
	next  int
	rng   *rand.Rand
}

// NewDeck creates a full 52-card deck, shuffled with the provided RNG.
func NewDeck(rng *rand.Rand) *Deck {
	return NewDeckWithout(rng, 0)
}

// NewDeckWithout creates a deck of every card NOT present in excluded,
// shuffled with the provided RNG. This is the remaining-deck constructor
// used by simulations: excluded holds the hero and board cards already seen.
func NewDeckWithout(rng *rand.Rand, excluded Hand) *Deck {
	d := &Deck{rng: rng}
	for id := 0; id < NumCards; id++ {
		c := Card(1) << id
		if excluded.HasCard(c) {
			continue
		}
		d.cards[d.size] = c
		d.size++
	}
	d.Shuffle()
	return d
}

// Shuffle reshuffles all cards (dealt ones included) using Fisher-Yates
// and rewinds dealing to the top of the deck.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := d.size - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if fewer than n remain.
// The returned slice aliases the deck and is valid until the next Shuffle.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > d.size {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealOne deals a single card, or 0 if the deck is empty.
func (d *Deck) DealOne() Card {
	if d.next >= d.size {
		return 0
	}
	c := d.cards[d.next]
	d.next++
	return c
}

// Remaining returns the number of cards left to deal.
func (d *Deck) Remaining() int {
	return d.size - d.next
}

// Size returns the total number of cards in the deck, dealt or not.
func (d *Deck) Size() int {
	return d.size
}

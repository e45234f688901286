package poker

import (
	"fmt"
	"math/bits"
)

// HandCategory enumerates the categories of poker hands ordered from
// weakest to strongest. The declaration order is the comparison order.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumHandCategories is the number of hand categories.
const NumHandCategories = 9

var categoryNames = [NumHandCategories]string{
	"High Card",
	"One Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
}

// String returns the category's display name.
func (c HandCategory) String() string {
	if int(c) >= NumHandCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

// HandRank is a packed encoding of a hand's strength. Higher values are
// stronger. The category occupies the bits above 20 and the tiebreak ranks
// sit below it as descending nibbles, so integer comparison of two HandRanks
// matches HandValue.Compare exactly.
type HandRank uint32

const (
	categoryShift = 20
	tiebreakMask  = 0xFFFFF
)

// Category returns the hand category encoded in the rank.
func (r HandRank) Category() HandCategory {
	return HandCategory(r >> categoryShift)
}

// String returns the display name of the encoded category.
func (r HandRank) String() string {
	return r.Category().String()
}

// tiebreakLengths gives the number of meaningful tiebreak ranks per category.
var tiebreakLengths = [NumHandCategories]int{
	HighCard:      5,
	OnePair:       4,
	TwoPair:       3,
	ThreeOfAKind:  3,
	Straight:      1,
	Flush:         5,
	FullHouse:     2,
	FourOfAKind:   2,
	StraightFlush: 1,
}

// Value unpacks the rank into its category and tiebreak sequence.
func (r HandRank) Value() HandValue {
	cat := r.Category()
	n := 0
	if int(cat) < NumHandCategories {
		n = tiebreakLengths[cat]
	}
	tb := make([]Rank, n)
	for i := 0; i < n; i++ {
		shift := uint(categoryShift - 4*(i+1))
		tb[i] = Rank((r >> shift) & 0xF)
	}
	return HandValue{Category: cat, Tiebreaks: tb}
}

// HandValue is the rich form of a hand's strength: a category plus the
// ordered tiebreak ranks whose meaning depends on the category (for a full
// house [trips, pair]; for a flush or high card the five ranks descending;
// for straights the high card only, with the wheel's high card being Five).
type HandValue struct {
	Category  HandCategory
	Tiebreaks []Rank
}

// Compare returns 1 if v is stronger than other, -1 if weaker, 0 on a true
// tie. Category decides first; equal categories compare the tiebreak
// sequences lexicographically, highest first.
func (v HandValue) Compare(other HandValue) int {
	if v.Category != other.Category {
		if v.Category > other.Category {
			return 1
		}
		return -1
	}
	n := len(v.Tiebreaks)
	if len(other.Tiebreaks) < n {
		n = len(other.Tiebreaks)
	}
	for i := 0; i < n; i++ {
		if v.Tiebreaks[i] != other.Tiebreaks[i] {
			if v.Tiebreaks[i] > other.Tiebreaks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Rank packs the value back into its HandRank encoding.
func (v HandValue) Rank() HandRank {
	r := HandRank(v.Category) << categoryShift
	for i, tb := range v.Tiebreaks {
		if i >= 5 {
			break
		}
		shift := uint(categoryShift - 4*(i+1))
		r |= HandRank(tb&0xF) << shift
	}
	return r
}

// String renders the category and tiebreak ranks, e.g. "Full House (Q over 7)".
func (v HandValue) String() string {
	switch v.Category {
	case FullHouse:
		if len(v.Tiebreaks) == 2 {
			return fmt.Sprintf("%s (%s over %s)", v.Category, v.Tiebreaks[0], v.Tiebreaks[1])
		}
	case Straight, StraightFlush:
		if len(v.Tiebreaks) == 1 {
			return fmt.Sprintf("%s (%s high)", v.Category, v.Tiebreaks[0])
		}
	default:
		if len(v.Tiebreaks) > 0 {
			return fmt.Sprintf("%s (%s high)", v.Category, v.Tiebreaks[0])
		}
	}
	return v.Category.String()
}

// CompareHands compares two packed ranks and returns 1 if a wins, -1 if b
// wins, 0 for a tie.
func CompareHands(a, b HandRank) int {
	if a > b {
		return 1
	} else if a < b {
		return -1
	}
	return 0
}

// Classify returns the best achievable 5-card hand from 5, 6, or 7 unique
// cards as a HandValue. Input sizes outside {5,6,7} fail with
// ErrInvalidHandSize; duplicate cards fail with ErrInvalidInput.
func Classify(cards []Card) (HandValue, error) {
	r, err := EvaluateHand(cards)
	if err != nil {
		return HandValue{}, err
	}
	return r.Value(), nil
}

// EvaluateHand is the packed-rank form of Classify. It evaluates all
// C(n,5) five-card subsets and keeps the maximum, which is correct by
// construction for every category.
func EvaluateHand(cards []Card) (HandRank, error) {
	n := len(cards)
	if n < 5 || n > 7 {
		return 0, fmt.Errorf("%w: got %d cards, want 5, 6 or 7", ErrInvalidHandSize, n)
	}
	var h Hand
	for _, c := range cards {
		h.AddCard(c)
	}
	if h.CountCards() != n {
		return 0, fmt.Errorf("%w: duplicate cards in %s", ErrInvalidInput, FormatCards(cards))
	}

	switch n {
	case 5:
		return evaluate5(h), nil
	case 6:
		return evaluateSubsets(cards, combos6of5[:]), nil
	default:
		return evaluateSubsets(cards, combos7of5[:]), nil
	}
}

// evaluateSubsets evaluates each listed 5-card subset and keeps the best.
func evaluateSubsets(cards []Card, combos [][5]uint8) HandRank {
	var best HandRank
	for _, combo := range combos {
		h := Hand(cards[combo[0]] | cards[combo[1]] | cards[combo[2]] |
			cards[combo[3]] | cards[combo[4]])
		if r := evaluate5(h); r > best {
			best = r
		}
	}
	return best
}

// evaluate5 ranks a hand of exactly 5 cards given as a bitset. Categories
// are checked strongest first; with five cards the groups below a match are
// impossible, so the first hit is the hand.
func evaluate5(h Hand) HandRank {
	var suitMasks [4]uint16
	var rankMask uint16
	var flushMask uint16
	for suit := Clubs; suit <= Spades; suit++ {
		mask := h.GetSuitMask(suit)
		suitMasks[suit] = mask
		rankMask |= mask
		if bits.OnesCount16(mask) == 5 {
			flushMask = mask
		}
	}

	straightHigh := straightHighMask(rankMask)

	if flushMask != 0 && straightHigh > 0 {
		return pack1(StraightFlush, Rank(straightHigh))
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quad := highestRank(quadsMask); quad >= 0 {
		kicker := highestRank(rankMask &^ (1 << quad))
		return pack2(FourOfAKind, Rank(quad), Rank(kicker))
	}

	trip := highestRank(tripsMask)
	if trip >= 0 {
		if pair := highestRank(pairsMask); pair >= 0 {
			return pack2(FullHouse, Rank(trip), Rank(pair))
		}
	}

	if flushMask != 0 {
		var tb [5]Rank
		topRanksDesc(flushMask, tb[:])
		return pack5(Flush, tb)
	}

	if straightHigh > 0 {
		return pack1(Straight, Rank(straightHigh))
	}

	if trip >= 0 {
		k1 := highestRank(rankMask &^ (1 << trip))
		k2 := highestRank(rankMask &^ (1 << trip) &^ (1 << k1))
		return pack3(ThreeOfAKind, Rank(trip), Rank(k1), Rank(k2))
	}

	if hi := highestRank(pairsMask); hi >= 0 {
		if lo := highestRank(pairsMask &^ (1 << hi)); lo >= 0 {
			kicker := highestRank(rankMask &^ (1 << hi) &^ (1 << lo))
			return pack3(TwoPair, Rank(hi), Rank(lo), Rank(kicker))
		}
		rest := rankMask &^ (1 << hi)
		k1 := highestRank(rest)
		rest &^= 1 << k1
		k2 := highestRank(rest)
		rest &^= 1 << k2
		k3 := highestRank(rest)
		return pack4(OnePair, Rank(hi), Rank(k1), Rank(k2), Rank(k3))
	}

	var tb [5]Rank
	topRanksDesc(rankMask, tb[:])
	return pack5(HighCard, tb)
}

func pack1(cat HandCategory, r0 Rank) HandRank {
	return HandRank(cat)<<categoryShift | HandRank(r0)<<16
}

func pack2(cat HandCategory, r0, r1 Rank) HandRank {
	return HandRank(cat)<<categoryShift | HandRank(r0)<<16 | HandRank(r1)<<12
}

func pack3(cat HandCategory, r0, r1, r2 Rank) HandRank {
	return HandRank(cat)<<categoryShift | HandRank(r0)<<16 | HandRank(r1)<<12 | HandRank(r2)<<8
}

func pack4(cat HandCategory, r0, r1, r2, r3 Rank) HandRank {
	return HandRank(cat)<<categoryShift | HandRank(r0)<<16 | HandRank(r1)<<12 |
		HandRank(r2)<<8 | HandRank(r3)<<4
}

func pack5(cat HandCategory, tb [5]Rank) HandRank {
	return HandRank(cat)<<categoryShift | HandRank(tb[0])<<16 | HandRank(tb[1])<<12 |
		HandRank(tb[2])<<8 | HandRank(tb[3])<<4 | HandRank(tb[4])
}

// highestRank returns the highest rank present in the bitmask (or -1 when empty).
func highestRank(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// topRanksDesc writes the ranks present in mask into out, highest first.
func topRanksDesc(mask uint16, out []Rank) {
	for i := range out {
		r := highestRank(mask)
		if r < 0 {
			out[i] = 0
			continue
		}
		out[i] = Rank(r)
		mask &^= 1 << r
	}
}

// straightHighMask returns the high-card rank of the best straight present
// in the rank mask, or 0 if none. The wheel (A-2-3-4-5) reports Five, rank
// value 3, so it sorts strictly below a six-high straight.
func straightHighMask(mask uint16) uint8 {
	const wheelMask = 0x100F // Ace + 2-3-4-5
	mask &= rankBits

	// Bitwise cascade identifies five consecutive ranks in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := uint8(bits.Len16(seq) - 1)
		return low + 4
	}

	if mask&wheelMask == wheelMask {
		return uint8(Five)
	}

	return 0
}

// combos7of5 lists every 5-of-7 index combination (21 subsets).
var combos7of5 = func() [21][5]uint8 {
	var table [21][5]uint8
	idx := 0
	for a := uint8(0); a <= 2; a++ {
		for b := a + 1; b <= 3; b++ {
			for c := b + 1; c <= 4; c++ {
				for d := c + 1; d <= 5; d++ {
					for e := d + 1; e <= 6; e++ {
						table[idx] = [5]uint8{a, b, c, d, e}
						idx++
					}
				}
			}
		}
	}
	return table
}()

// combos6of5 lists every 5-of-6 index combination (6 subsets).
var combos6of5 = func() [6][5]uint8 {
	var table [6][5]uint8
	idx := 0
	for a := uint8(0); a <= 1; a++ {
		for b := a + 1; b <= 2; b++ {
			for c := b + 1; c <= 3; c++ {
				for d := c + 1; d <= 4; d++ {
					for e := d + 1; e <= 5; e++ {
						table[idx] = [5]uint8{a, b, c, d, e}
						idx++
					}
				}
			}
		}
	}
	return table
}()

package equity

import (
	"context"
	"fmt"
)

// Street identifies a betting round.
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

var streetNames = [...]string{"Preflop", "Flop", "Turn", "River"}

// String returns the street's display name.
func (s Street) String() string {
	if int(s) >= len(streetNames) {
		return fmt.Sprintf("Street(%d)", uint8(s))
	}
	return streetNames[s]
}

// BoardCards returns how many board cards are on the table at the street.
func (s Street) BoardCards() int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	default:
		return 0
	}
}

// StreetEquity is one row of an equity progression: the simulation result
// for the board as it stood on one street.
type StreetEquity struct {
	Street     Street
	BoardCards int
	Result     Result
}

// minStreetTrials floors the per-street share so late streets keep a
// usable sample size on small budgets.
const minStreetTrials = 500

// ByStreet runs one simulation per betting street the board has reached,
// each over the board prefix visible on that street. The request's Trials
// is a total budget split evenly across the four streets, floored at
// minStreetTrials each. Rows come back in play order, preflop first, and
// streets the board never reached are omitted. The request seed applies to
// every street, so each row is individually reproducible.
func ByStreet(ctx context.Context, req Request) ([]StreetEquity, error) {
	if err := req.validate(boardAny); err != nil {
		return nil, err
	}

	perStreet := req.Trials / 4
	if perStreet < minStreetTrials {
		perStreet = minStreetTrials
	}

	var rows []StreetEquity
	for s := Preflop; s <= River; s++ {
		n := s.BoardCards()
		if len(req.Board) < n {
			break
		}
		sub := req
		sub.Board = req.Board[:n]
		sub.Trials = perStreet
		sub.Progress = nil
		res, err := Simulate(ctx, sub)
		if err != nil {
			return nil, err
		}
		rows = append(rows, StreetEquity{Street: s, BoardCards: n, Result: res})
	}
	return rows, nil
}

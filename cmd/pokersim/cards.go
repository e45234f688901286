package main

import (
	"fmt"
	"strings"

	"github.com/lox/pokersim/poker"
)

// parseCardList parses a card list, accepting both the spaced "Qd Jc Ts"
// form and the concatenated "QdJcTs" form.
func parseCardList(s string) ([]poker.Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if !strings.ContainsAny(s, " ,\t") && len(s) > 2 && len(s)%2 == 0 {
		var sb strings.Builder
		for i := 0; i < len(s); i += 2 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(s[i : i+2])
		}
		s = sb.String()
	}
	return poker.ParseCards(s)
}

// parseHoleBoard parses the positional hole card arguments and the board
// flag. Card counts and hole/board overlap are validated downstream.
func parseHoleBoard(holeArgs []string, board string) ([]poker.Card, []poker.Card, error) {
	hole, err := parseCardList(strings.Join(holeArgs, " "))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing hole cards: %w", err)
	}
	b, err := parseCardList(board)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing board: %w", err)
	}
	return hole, b, nil
}

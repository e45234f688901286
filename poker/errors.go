package poker

import "errors"

// Error taxonomy for the engine. All are input-validation failures detected
// before any simulation work begins; callers match them with errors.Is.
var (
	// ErrInvalidHandSize reports a classification request whose card count
	// is outside {5, 6, 7}.
	ErrInvalidHandSize = errors.New("invalid hand size")

	// ErrInvalidInput reports malformed hole cards, board, opponent count,
	// trial count, or overlapping/duplicate cards.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDeckExhausted reports that the unseen portion of the deck cannot
	// complete the board and deal every opponent.
	ErrDeckExhausted = errors.New("deck exhausted")
)

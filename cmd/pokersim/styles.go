package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokersim/poker"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	strategyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Bold(true)
)

// applyColorMode forces the lipgloss color profile for non-auto modes.
// Auto leaves profile negotiation to the terminal.
func applyColorMode(mode string) error {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "auto", "":
	default:
		return fmt.Errorf("invalid color mode %q (must be auto, always or never)", mode)
	}
	return nil
}

// renderCards formats cards with colors, red suits and black suits apart.
func renderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if suit := c.Suit(); suit == poker.Hearts || suit == poker.Diamonds {
			parts[i] = redCardStyle.Render(c.String())
		} else {
			parts[i] = blackCardStyle.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}

func printHoleBoard(hole, board []poker.Card) {
	fmt.Printf("%s %s", headerStyle.Render("hole"), renderCards(hole))
	if len(board) > 0 {
		fmt.Printf("   %s %s", headerStyle.Render("board"), renderCards(board))
	}
	fmt.Printf("\n\n")
}

func formatPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

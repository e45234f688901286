package main

import (
	"fmt"
	"strings"

	"github.com/lox/pokersim/analysis"
	"github.com/lox/pokersim/poker"
)

type AnalyzeCmd struct {
	Hole  []string `arg:"" help:"Two hole cards, e.g. 'As Kh'"`
	Board string   `short:"b" help:"Community board cards (3-5 for a full analysis)"`
}

func (c *AnalyzeCmd) Run(app *appEnv) error {
	hole, board, err := parseHoleBoard(c.Hole, c.Board)
	if err != nil {
		return err
	}

	app.logger.Debug("analyzing hand", "run_id", app.runID,
		"hole", poker.FormatCards(hole), "board", poker.FormatCards(board))

	cards := make([]poker.Card, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	cards = append(cards, board...)
	if len(cards) < 5 {
		fmt.Println("Need 5+ cards")
		return nil
	}

	desc, err := analysis.DescribeHand(cards)
	if err != nil {
		return err
	}

	printHoleBoard(hole, board)
	fmt.Printf("%s %s\n", headerStyle.Render("hand"), handStyle.Render(desc.String()))

	if draws := analysis.PotentialDraws(hole, board); len(draws) > 0 {
		parts := make([]string, len(draws))
		for i, d := range draws {
			parts[i] = d.String()
		}
		fmt.Printf("%s %s\n", headerStyle.Render("draws"), categoryStyle.Render(strings.Join(parts, ", ")))
	}

	beats, err := analysis.HandsThatBeat(hole, board)
	if err != nil {
		return err
	}
	if len(beats) == 0 {
		fmt.Printf("%s none\n", headerStyle.Render("beaten by"))
	} else {
		parts := make([]string, len(beats))
		for i, cat := range beats {
			parts[i] = cat.String()
		}
		fmt.Printf("%s %s\n", headerStyle.Render("beaten by"), categoryStyle.Render(strings.Join(parts, ", ")))
	}

	return nil
}

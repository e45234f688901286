package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/pokersim/equity"
	"github.com/lox/pokersim/internal/config"
	"github.com/lox/pokersim/poker"
)

type StreetsCmd struct {
	Hole      []string `arg:"" help:"Two hole cards, e.g. 'As Kh'"`
	Board     string   `short:"b" help:"Community board cards (0-5)"`
	Opponents int      `short:"o" help:"Number of opponents (1-8)"`
	Trials    int      `short:"t" help:"Trial budget split across streets"`
	Seed      *int64   `help:"Random seed for reproducible results"`
}

func (c *StreetsCmd) Run(app *appEnv) error {
	hole, board, err := parseHoleBoard(c.Hole, c.Board)
	if err != nil {
		return err
	}

	req := equity.Request{
		Hole:      hole,
		Board:     board,
		Opponents: app.opponents(c.Opponents),
		Trials:    app.trials(c.Trials, config.MaxStreetTrials),
		Seed:      app.seed(c.Seed),
	}

	app.logger.Debug("tracking street equity", "run_id", app.runID,
		"hole", poker.FormatCards(hole), "board", poker.FormatCards(board),
		"opponents", req.Opponents, "trials", req.Trials)

	start := time.Now()
	streets, err := equity.ByStreet(context.Background(), req)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printHoleBoard(hole, board)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("street"),
		headerStyle.Render("board"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("equity"))
	for _, s := range streets {
		boardCol := "-"
		if s.BoardCards > 0 {
			boardCol = renderCards(board[:s.BoardCards])
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			handStyle.Render(s.Street.String()),
			boardCol,
			winStyle.Render(formatPct(s.Result.WinRate())),
			tieStyle.Render(formatPct(s.Result.TieRate())),
			winStyle.Render(formatPct(s.Result.Equity())))
	}
	w.Flush()

	fmt.Printf("\n%d trials per street in %v\n", streets[0].Result.Trials, elapsed.Truncate(time.Millisecond))

	return nil
}

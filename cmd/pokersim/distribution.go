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

type DistributionCmd struct {
	Hole      []string `arg:"" help:"Two hole cards, e.g. 'As Kh'"`
	Board     string   `short:"b" help:"Community board cards (0-5)"`
	Opponents int      `short:"o" help:"Number of opponents (1-8)"`
	Trials    int      `short:"t" help:"Number of Monte Carlo trials"`
	Seed      *int64   `help:"Random seed for reproducible results"`
}

func (c *DistributionCmd) Run(app *appEnv) error {
	hole, board, err := parseHoleBoard(c.Hole, c.Board)
	if err != nil {
		return err
	}

	req := equity.Request{
		Hole:      hole,
		Board:     board,
		Opponents: app.opponents(c.Opponents),
		Trials:    app.trials(c.Trials, config.MaxTrials),
		Seed:      app.seed(c.Seed),
		Progress:  app.progress(),
	}

	app.logger.Debug("sampling hand distribution", "run_id", app.runID,
		"hole", poker.FormatCards(hole), "board", poker.FormatCards(board),
		"opponents", req.Opponents, "trials", req.Trials)

	start := time.Now()
	report, err := equity.Distribution(context.Background(), req)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printHoleBoard(hole, board)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("category"),
		headerStyle.Render("count"),
		headerStyle.Render("freq"))
	for i := int(poker.StraightFlush); i >= 0; i-- {
		cat := poker.HandCategory(i)
		count := report.Counts[cat]
		if count == 0 {
			continue
		}
		name := cat.String()
		if cat == report.Best {
			name = handStyle.Render(name)
		} else {
			name = categoryStyle.Render(name)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, count, formatPct(report.Frequency(cat)))
	}
	w.Flush()

	res := report.Result
	fmt.Printf("\n%s %s   %s %s   %s %s   %s %s\n",
		headerStyle.Render("win"), winStyle.Render(formatPct(res.WinRate())),
		headerStyle.Render("tie"), tieStyle.Render(formatPct(res.TieRate())),
		headerStyle.Render("loss"), lossStyle.Render(formatPct(res.LossRate())),
		headerStyle.Render("equity"), winStyle.Render(formatPct(res.Equity())))
	fmt.Printf("\n%d trials in %v\n", res.Trials, elapsed.Truncate(time.Millisecond))

	return nil
}

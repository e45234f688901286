package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/pokersim/analysis"
	"github.com/lox/pokersim/equity"
	"github.com/lox/pokersim/internal/config"
	"github.com/lox/pokersim/poker"
)

type SimulateCmd struct {
	Hole      []string `arg:"" help:"Two hole cards, e.g. 'As Kh'"`
	Board     string   `short:"b" help:"Community board cards (e.g., 'Qd Jc Ts')"`
	Opponents int      `short:"o" help:"Number of opponents (1-8)"`
	Trials    int      `short:"t" help:"Number of Monte Carlo trials"`
	Workers   int      `short:"w" help:"Parallel workers (0 = one per CPU)"`
	Seed      *int64   `help:"Random seed for reproducible results"`
}

func (c *SimulateCmd) Run(app *appEnv) error {
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
	workers := app.workers(c.Workers)

	app.logger.Debug("starting simulation", "run_id", app.runID,
		"hole", poker.FormatCards(hole), "board", poker.FormatCards(board),
		"opponents", req.Opponents, "trials", req.Trials, "workers", workers)

	start := time.Now()
	result, err := equity.SimulateParallel(context.Background(), req, workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printHoleBoard(hole, board)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("loss"),
		headerStyle.Render("equity"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		winStyle.Render(formatPct(result.WinRate())),
		tieStyle.Render(formatPct(result.TieRate())),
		lossStyle.Render(formatPct(result.LossRate())),
		winStyle.Render(formatPct(result.Equity())))
	w.Flush()

	low, high := result.ConfidenceInterval()
	fmt.Printf("\n95%% CI [%s, %s]\n", formatPct(low), formatPct(high))
	fmt.Printf("\n%s\n", strategyStyle.Render(analysis.StrategyMessage(result.WinRate(), result.TieRate())))
	fmt.Printf("\n%d trials in %v\n", result.Trials, elapsed.Truncate(time.Millisecond))

	return nil
}

package main

import (
	"github.com/lox/pokersim/analysis"
	"github.com/lox/pokersim/internal/config"
	"github.com/lox/pokersim/internal/tui"
)

type LiveCmd struct {
	Opponents int    `short:"o" help:"Number of opponents (1-8)"`
	Trials    int    `short:"t" help:"Trials per refresh"`
	Seed      *int64 `help:"Random seed for reproducible sampling"`
}

func (c *LiveCmd) Run(app *appEnv) error {
	// Live analysis re-samples on every card change, so it defaults to a
	// lighter budget than batch simulation rather than the config value.
	trials := c.Trials
	if trials <= 0 {
		trials = analysis.DefaultLiveTrials
	}
	if trials > config.MaxLiveTrials {
		app.logger.Warn("trial budget capped", "requested", trials, "cap", config.MaxLiveTrials)
		trials = config.MaxLiveTrials
	}

	app.logger.Debug("starting live analyzer", "run_id", app.runID,
		"opponents", app.opponents(c.Opponents), "trials", trials)

	return tui.Run(tui.Options{
		Logger:    app.logger,
		Opponents: app.opponents(c.Opponents),
		Trials:    trials,
		Seed:      app.seed(c.Seed),
	})
}

package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/pokersim/equity"
	"github.com/lox/pokersim/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Config  string `help:"Path to HCL config file" default:"pokersim.hcl"`
	Verbose bool   `short:"v" help:"Verbose logging"`
	Color   string `help:"Color output: auto, always or never (defaults to config)"`

	Simulate     SimulateCmd     `cmd:"" help:"Estimate win/tie/loss equity for a hole hand"`
	Streets      StreetsCmd      `cmd:"" help:"Track equity street by street"`
	Distribution DistributionCmd `cmd:"" help:"Sample the hand category distribution"`
	Analyze      AnalyzeCmd      `cmd:"" help:"Describe a hand, its draws and what beats it"`
	Live         LiveCmd         `cmd:"" help:"Interactive live analysis"`
	Version      VersionCmd      `cmd:"" help:"Show version"`
}

// appEnv carries the logger and resolved configuration into command Run
// methods. Flag values win over config file values.
type appEnv struct {
	logger  *log.Logger
	cfg     *config.Config
	runID   string
	verbose bool
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokersim"),
		kong.Description("Texas Hold'em equity simulator and hand analyzer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	var logger *log.Logger
	if cli.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Error("failed to load config", "path", cli.Config, "error", err)
		ctx.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "path", cli.Config, "error", err)
		ctx.Exit(1)
	}

	colorMode := cli.Color
	if colorMode == "" {
		colorMode = cfg.Display.Color
	}
	if err := applyColorMode(colorMode); err != nil {
		logger.Error("invalid color mode", "error", err)
		ctx.Exit(1)
	}

	app := &appEnv{
		logger:  logger,
		cfg:     cfg,
		runID:   uuid.New().String(),
		verbose: cli.Verbose,
	}
	logger.Debug("pokersim starting", "version", version, "run_id", app.runID, "config", cli.Config)

	err = ctx.Run(app)
	ctx.FatalIfErrorf(err)
}

func (a *appEnv) opponents(flag int) int {
	if flag > 0 {
		return flag
	}
	return a.cfg.Simulation.Opponents
}

// trials resolves the trial budget and enforces the per-command ceiling.
func (a *appEnv) trials(flag, ceiling int) int {
	t := flag
	if t <= 0 {
		t = a.cfg.Simulation.Trials
	}
	if t > ceiling {
		a.logger.Warn("trial budget capped", "requested", t, "cap", ceiling)
		t = ceiling
	}
	return t
}

func (a *appEnv) workers(flag int) int {
	if flag > 0 {
		return flag
	}
	return a.cfg.Simulation.Workers
}

func (a *appEnv) seed(flag *int64) *int64 {
	if flag != nil {
		return flag
	}
	return a.cfg.Simulation.Seed
}

// progress returns a reporter that logs completion once a second in
// verbose mode, and nothing otherwise.
func (a *appEnv) progress() *equity.Progress {
	if !a.verbose {
		return nil
	}
	return &equity.Progress{
		Interval: time.Second,
		Fn: func(done, total int) {
			a.logger.Debug("simulating", "done", done, "total", total)
		},
	}
}

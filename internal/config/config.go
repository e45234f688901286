// Package config loads pokersim CLI configuration from an optional HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokersim/equity"
)

// Budget ceilings for CLI-driven runs. Street equity runs one simulation per
// street and live analysis re-samples on every card change, so both get
// tighter caps.
const (
	MaxTrials       = 1000000
	MaxStreetTrials = 20000
	MaxLiveTrials   = 50000
)

// Config represents the complete CLI configuration
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Display    *DisplaySettings    `hcl:"display,block"`
}

// SimulationSettings contains default budgets for simulation commands.
// Command-line flags override these values.
type SimulationSettings struct {
	Trials    int    `hcl:"trials,optional"`
	Opponents int    `hcl:"opponents,optional"`
	Workers   int    `hcl:"workers,optional"`
	Seed      *int64 `hcl:"seed,optional"`
}

// DisplaySettings contains output rendering settings
type DisplaySettings struct {
	Color string `hcl:"color,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Simulation: &SimulationSettings{
			Trials:    10000,
			Opponents: 1,
			Workers:   0, // one worker per CPU
		},
		Display: &DisplaySettings{
			Color: "auto",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	// Check if file exists
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing blocks and values
	defaults := Default()

	if config.Simulation == nil {
		config.Simulation = defaults.Simulation
	}
	if config.Display == nil {
		config.Display = defaults.Display
	}

	if config.Simulation.Trials == 0 {
		config.Simulation.Trials = defaults.Simulation.Trials
	}
	if config.Simulation.Opponents == 0 {
		config.Simulation.Opponents = defaults.Simulation.Opponents
	}
	if config.Display.Color == "" {
		config.Display.Color = defaults.Display.Color
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Simulation.Trials < 1 || c.Simulation.Trials > MaxTrials {
		return fmt.Errorf("trials must be between 1 and %d, got %d", MaxTrials, c.Simulation.Trials)
	}

	if c.Simulation.Opponents < 1 || c.Simulation.Opponents > equity.MaxOpponents {
		return fmt.Errorf("opponents must be between 1 and %d, got %d", equity.MaxOpponents, c.Simulation.Opponents)
	}

	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Simulation.Workers)
	}

	switch c.Display.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (must be auto, always or never)", c.Display.Color)
	}

	return nil
}

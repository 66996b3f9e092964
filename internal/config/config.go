// Package config loads the startup constants for a run: defaults,
// layered under an optional sleepdebt.yaml in the working directory,
// layered under environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/sleepdebt/internal/sleep"
)

// DefaultConfigFile is looked up in the working directory; a missing
// file is not an error.
const DefaultConfigFile = "sleepdebt.yaml"

// Config holds the startup constants. Read-only after Load returns.
type Config struct {
	// TargetSleep is the nightly sleep goal in hours.
	TargetSleep float64 `envconfig:"SLEEPDEBT_TARGET_SLEEP" yaml:"target_sleep"`
	// CutoffHour attributes post-midnight sessions before this hour to
	// the previous evening's night. Must be in [0, 23].
	CutoffHour int `envconfig:"SLEEPDEBT_CUTOFF_HOUR" yaml:"cutoff_hour"`
	// Port is where the chart server listens.
	Port int `envconfig:"SLEEPDEBT_PORT" yaml:"port"`
	// DataDir is scanned for the tracker export.
	DataDir string `envconfig:"SLEEPDEBT_DATA_DIR" yaml:"data_dir"`
	// DataExt is the export's file extension, without the dot.
	DataExt string `envconfig:"SLEEPDEBT_DATA_EXT" yaml:"data_ext"`
}

func newDefaults() *Config {
	return &Config{
		TargetSleep: 8,
		CutoffHour:  4,
		Port:        8080,
		DataDir:     ".",
		DataExt:     "csv",
	}
}

// Load builds the configuration from defaults, sleepdebt.yaml (if
// present) and environment variables, in increasing precedence.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) (*Config, error) {
	cfg := newDefaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := sleep.ValidateCutoffHour(c.CutoffHour); err != nil {
		return err
	}
	if c.TargetSleep <= 0 {
		return fmt.Errorf("target sleep must be positive: got %g", c.TargetSleep)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: got %d", c.Port)
	}
	if c.DataExt == "" {
		return fmt.Errorf("data extension must not be empty")
	}
	return nil
}

// Options returns the augmentation constants from the configuration.
func (c *Config) Options() sleep.Options {
	return sleep.Options{
		TargetSleep: c.TargetSleep,
		CutoffHour:  c.CutoffHour,
	}
}

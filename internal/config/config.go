// Package config loads and validates the orchestrator's runtime
// configuration: the planner revision/retry budgets and where
// persisted state lives on disk.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the orchestrator's tunable limits. Every field has a
// sensible default; a config file only needs to override what it
// actually changes.
type Config struct {
	// MaxPlannerRevisions bounds how many times the critic can send a
	// plan back for revision before the kernel gives up and rejects
	// the goal outright.
	MaxPlannerRevisions uint32 `yaml:"max_planner_revisions"`

	// PlannerRetryThreshold is the minimum critic score (inclusive)
	// that accepts a plan without further revision.
	PlannerRetryThreshold uint8 `yaml:"planner_retry_threshold"`

	// MaxRetries bounds how many times a single failed task (tracked
	// by its original task ID) may be retried via the feedback queue.
	MaxRetries uint32 `yaml:"max_retries"`

	// DataRoot is the directory persisted state is written under.
	// Defaults to ~/WinterData.
	DataRoot string `yaml:"data_root"`

	// LogLevel sets logging verbosity: debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with the orchestrator's baseline
// values, matching the resolved Open Questions in SPEC_FULL.md.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	dataRoot := "WinterData"
	if err == nil {
		dataRoot = filepath.Join(home, "WinterData")
	}
	return &Config{
		MaxPlannerRevisions:   3,
		PlannerRetryThreshold: 7,
		MaxRetries:            3,
		DataRoot:              dataRoot,
		LogLevel:              "info",
	}
}

// Load reads configuration from path, starting from DefaultConfig and
// overriding only the fields the file sets. A missing file is not an
// error: it returns the defaults. A malformed file is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if fromFile.MaxPlannerRevisions != 0 {
		cfg.MaxPlannerRevisions = fromFile.MaxPlannerRevisions
	}
	if fromFile.PlannerRetryThreshold != 0 {
		cfg.PlannerRetryThreshold = fromFile.PlannerRetryThreshold
	}
	if fromFile.MaxRetries != 0 {
		cfg.MaxRetries = fromFile.MaxRetries
	}
	if fromFile.DataRoot != "" {
		cfg.DataRoot = fromFile.DataRoot
	}
	if fromFile.LogLevel != "" {
		cfg.LogLevel = fromFile.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports whether the configuration's values are usable.
func (c *Config) Validate() error {
	if c.PlannerRetryThreshold > 10 {
		return fmt.Errorf("planner_retry_threshold must be a 0-10 score, got %d", c.PlannerRetryThreshold)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}
	if c.DataRoot == "" {
		return fmt.Errorf("data_root cannot be empty")
	}
	return nil
}

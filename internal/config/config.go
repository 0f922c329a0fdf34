// Package config provides YAML-based board configuration loading and rule
// presets for the match3 engine.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// DefaultCatalog is used when neither a catalog ID nor inline blocks are set.
const DefaultCatalog = "classic"

// BoardConfig contains all configuration for a match3 session.
type BoardConfig struct {
	Board   BoardSize    `yaml:"board"`
	Rules   RulesConfig  `yaml:"rules"`
	Catalog string       `yaml:"catalog"`
	Blocks  []BlockSpec  `yaml:"blocks"`
	Timing  TimingConfig `yaml:"timing"`
}

// BoardSize defines the board dimensions and seed.
type BoardSize struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"` // 0 means pick a fresh seed per board
}

// RulesConfig defines move resolution rules.
type RulesConfig struct {
	MinRun                 int     `yaml:"min_run"`
	IncludeBombs           bool    `yaml:"include_bombs"`
	RevertUnproductiveSwap bool    `yaml:"revert_unproductive_swap"`
	BombRate               float64 `yaml:"bomb_rate"`
}

// BlockSpec declares one block type of an inline catalog.
type BlockSpec struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Value   int    `yaml:"value"`
	Special bool   `yaml:"special"`
}

// TimingConfig defines animation hints in milliseconds.
type TimingConfig struct {
	SwapMS   int `yaml:"swap_ms"`   // Per-cell travel time of a swap
	RemoveMS int `yaml:"remove_ms"` // Removal animation
	StepMS   int `yaml:"step_ms"`   // Per-cell travel time of a fall
}

// Validate checks the configuration for values the engine cannot run with.
func (c BoardConfig) Validate() error {
	var errs []error
	if c.Board.Width < 1 || c.Board.Height < 1 {
		errs = append(errs, fmt.Errorf("board size %dx%d: %w", c.Board.Width, c.Board.Height, board.ErrInvalidDimensions))
	}
	if c.Rules.MinRun < 2 {
		errs = append(errs, fmt.Errorf("rules.min_run %d: must be at least 2", c.Rules.MinRun))
	}
	if c.Rules.BombRate < 0 || c.Rules.BombRate > 1 {
		errs = append(errs, fmt.Errorf("rules.bomb_rate %g: must be within [0, 1]", c.Rules.BombRate))
	}
	if c.Timing.SwapMS < 0 || c.Timing.RemoveMS < 0 || c.Timing.StepMS < 0 {
		errs = append(errs, errors.New("timing: durations must not be negative"))
	}
	return errors.Join(errs...)
}

// Hints converts the timing section into engine animation hints.
func (c BoardConfig) Hints() board.Hints {
	return board.Hints{
		Swap:   time.Duration(c.Timing.SwapMS) * time.Millisecond,
		Remove: time.Duration(c.Timing.RemoveMS) * time.Millisecond,
		Fall:   time.Duration(c.Timing.StepMS) * time.Millisecond,
	}
}

// EngineOptions converts the rules section into engine options.
func (c BoardConfig) EngineOptions() board.Options {
	return board.Options{
		MinRun:                 c.Rules.MinRun,
		IncludeBombs:           c.Rules.IncludeBombs,
		RevertUnproductiveSwap: c.Rules.RevertUnproductiveSwap,
		BombRate:               c.Rules.BombRate,
		Hints:                  c.Hints(),
	}
}

// ResolveCatalog builds the block catalog: the inline blocks when present,
// otherwise the registered catalog named by Catalog.
func (c BoardConfig) ResolveCatalog() (*board.Catalog, error) {
	if len(c.Blocks) > 0 {
		types := make([]board.BlockType, len(c.Blocks))
		for i, b := range c.Blocks {
			types[i] = board.BlockType(b)
		}
		cat, err := board.NewCatalog(types...)
		if err != nil {
			return nil, fmt.Errorf("inline blocks: %w", err)
		}
		return cat, nil
	}

	id := c.Catalog
	if id == "" {
		id = DefaultCatalog
	}
	return registry.Create(id)
}

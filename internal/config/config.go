// Package config provides YAML-based configuration for the sweeper:
// board presets, hint policy and display settings.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// MinesweeperConfig is the full configuration file.
type MinesweeperConfig struct {
	Difficulties DifficultySet `yaml:"difficulties"`
	Custom       BoardConfig   `yaml:"custom"`
	Hints        HintConfig    `yaml:"hints"`
	Display      DisplayConfig `yaml:"display"`
}

// DifficultySet holds the three built-in presets. Values here override the
// classic sizes.
type DifficultySet struct {
	Easy   BoardConfig `yaml:"easy"`
	Medium BoardConfig `yaml:"medium"`
	Hard   BoardConfig `yaml:"hard"`
}

// BoardConfig defines board dimensions and mine count.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// HintConfig controls the hint budget.
type HintConfig struct {
	Max      int    `yaml:"max"`
	Strategy string `yaml:"strategy"` // "deduce" or "random"
}

// DisplayConfig holds the initial look and feel. Settings stored by the
// player take precedence at runtime.
type DisplayConfig struct {
	Theme      string `yaml:"theme"`       // "dark", "light" or "classic"
	TileStyle  string `yaml:"tile_style"`  // "unicode" or "ascii"
	Sound      bool   `yaml:"sound"`       // terminal bell on explosion, win and hint
	SoundFlags bool   `yaml:"sound_flags"` // also ring on flag and unflag
}

// Themes lists the accepted theme names.
var Themes = []string{"dark", "light", "classic"}

// TileStyles lists the accepted tile styles.
var TileStyles = []string{"unicode", "ascii"}

var hintStrategies = []string{"deduce", "random"}

// Validate rejects configurations the game could not start from.
func (c MinesweeperConfig) Validate() error {
	var errs []error
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyCustom} {
		b := c.Board(p)
		if p == DifficultyCustom && b == (BoardConfig{}) {
			continue
		}
		if err := b.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
		}
	}
	if c.Hints.Max < 0 {
		errs = append(errs, fmt.Errorf("hints.max must not be negative, got %d", c.Hints.Max))
	}
	if c.Hints.Strategy != "" && !slices.Contains(hintStrategies, c.Hints.Strategy) {
		errs = append(errs, fmt.Errorf("unknown hints.strategy %q", c.Hints.Strategy))
	}
	if c.Display.Theme != "" && !slices.Contains(Themes, c.Display.Theme) {
		errs = append(errs, fmt.Errorf("unknown display.theme %q", c.Display.Theme))
	}
	if c.Display.TileStyle != "" && !slices.Contains(TileStyles, c.Display.TileStyle) {
		errs = append(errs, fmt.Errorf("unknown display.tile_style %q", c.Display.TileStyle))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Validate checks that any first click leaves room for every mine outside
// its 3×3 opening.
func (b BoardConfig) Validate() error {
	if b.Width < 1 || b.Height < 1 {
		return fmt.Errorf("board %dx%d must have positive dimensions", b.Width, b.Height)
	}
	if b.Mines < 1 {
		return fmt.Errorf("board needs at least one mine, got %d", b.Mines)
	}
	opening := min(3, b.Width) * min(3, b.Height)
	if b.Mines >= b.Width*b.Height-opening {
		return fmt.Errorf("board %dx%d cannot hold %d mines (max %d)",
			b.Width, b.Height, b.Mines, b.Width*b.Height-opening-1)
	}
	return nil
}

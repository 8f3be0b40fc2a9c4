// Package config provides YAML-based configuration loading for blockfall,
// with embedded defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Limits enforced by Validate.
const (
	MinWidth    = 5 // Widest template must fit at the spawn column
	MinHeight   = 4
	PaletteSize = 7 // One color per catalog template
)

// Config contains all configuration for the game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Palette []string      `yaml:"palette" env:"BLOCKFALL_PALETTE" envSeparator:","`
}

// BoardConfig defines the grid dimensions shared by engine and renderer.
type BoardConfig struct {
	Width  int `yaml:"width"  env:"BLOCKFALL_BOARD_WIDTH"`
	Height int `yaml:"height" env:"BLOCKFALL_BOARD_HEIGHT"`
}

// GravityConfig defines the fixed gravity cadence.
type GravityConfig struct {
	Interval time.Duration `yaml:"interval" env:"BLOCKFALL_GRAVITY_INTERVAL"`
}

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Width < MinWidth {
		errs = append(errs, fmt.Errorf("board.width must be at least %d, got %d", MinWidth, c.Board.Width))
	}
	if c.Board.Height < MinHeight {
		errs = append(errs, fmt.Errorf("board.height must be at least %d, got %d", MinHeight, c.Board.Height))
	}
	if c.Gravity.Interval <= 0 {
		errs = append(errs, fmt.Errorf("gravity.interval must be positive, got %s", c.Gravity.Interval))
	}
	if len(c.Palette) != PaletteSize {
		errs = append(errs, fmt.Errorf("palette must have %d colors, got %d", PaletteSize, len(c.Palette)))
	}
	for i, name := range c.Palette {
		if _, ok := core.ParseColor(name); !ok {
			errs = append(errs, fmt.Errorf("palette[%d]: unknown color %q", i, name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Colors resolves the palette names. Entry i colors pieces with index i+1.
func (c Config) Colors() ([]core.Color, error) {
	colors := make([]core.Color, len(c.Palette))
	for i, name := range c.Palette {
		color, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("config: palette[%d]: unknown color %q", i, name)
		}
		colors[i] = color
	}
	return colors, nil
}

// GravityTicks converts the gravity interval to simulation ticks at the
// given tick rate. The result is at least 1.
func (c Config) GravityTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	ticks := int((c.Gravity.Interval*time.Duration(tickRate) + time.Second/2) / time.Second)
	return max(ticks, 1)
}

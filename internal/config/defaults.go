package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			Interval: 100 * time.Millisecond,
		},
		Palette: []string{"cyan", "blue", "orange", "yellow", "green", "red", "magenta"},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start a round of the given mode (default: blockfall).

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Down/S/J     - Drop one row
  Up/W/K       - Rotate counter-clockwise
  Space        - Hard drop
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  blockfall play
  blockfall play blockfall_strict
  blockfall play --seed 7 --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	modeID := string(blockfall.ModeReference)
	if len(args) == 1 {
		modeID = args[0]
	}

	if _, ok := registry.Lookup(modeID); !ok {
		return fmt.Errorf("unknown mode %q (run 'blockfall list' to see available modes)", modeID)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := loadConfig(logger); err != nil {
		logger.Error("config rejected", "error", err)
		return err
	}

	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, runtimeConfig(), tui.Options{Logger: logger}); err != nil {
		logger.Error("program failed", "error", err)
		return err
	}
	return nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

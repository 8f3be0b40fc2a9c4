package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode interactively",
	Long: `Opens a picker listing every mode. Quitting a round returns to the
picker; quitting the picker exits.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := loadConfig(logger); err != nil {
		logger.Error("config rejected", "error", err)
		return err
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}

		game, err := registry.Create(result.ModeID)
		if err != nil {
			return err
		}
		logger.Info("mode selected", "mode", result.ModeID)

		// Each round gets a fresh seed unless one was pinned
		if err := tui.Run(game, cfg, tui.Options{Logger: logger}); err != nil {
			logger.Error("program failed", "error", err)
			return err
		}
	}
}

// blockfall is a falling-block puzzle for the terminal.
//
// Usage:
//
//	blockfall play [mode]    - Play a mode (default: blockfall)
//	blockfall menu           - Pick a mode interactively
//	blockfall list           - List available modes
//	blockfall pieces         - Show the piece catalog
//	blockfall config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config YAML
//	--log-file <path>    - Append logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops pieces onto a fixed grid. Fill a row to clear it;
the round ends when a new piece has no room to spawn.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all modes
  pieces   - Show the piece catalog
  config   - Print the effective configuration

Examples:
  blockfall play
  blockfall play blockfall_strict --seed 42
  blockfall menu --log-file /tmp/blockfall.log --log-level debug
  BLOCKFALL_BOARD_WIDTH=12 blockfall play`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the session logger. The TUI owns the terminal, so logs
// go to --log-file or nowhere.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the configuration and hands it to the game package.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Resolve(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := blockfall.Configure(cfg); err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "path", source,
		"width", cfg.Board.Width, "height", cfg.Board.Height, "gravity", cfg.Gravity.Interval)
	return cfg, nil
}

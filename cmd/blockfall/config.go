package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolves the configuration the same way play does and prints it as YAML.

Search order: --config, ~/.blockfall/config.yaml, ./configs/blockfall.yaml,
then the built-in defaults. BLOCKFALL_BOARD_WIDTH, BLOCKFALL_BOARD_HEIGHT,
BLOCKFALL_GRAVITY_INTERVAL and BLOCKFALL_PALETTE override file values.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.Resolve(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "# source: %s\n", source); err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

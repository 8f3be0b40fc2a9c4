package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	var b strings.Builder
	modes := registry.List()
	if len(modes) == 0 {
		b.WriteString("No modes available.\n")
	} else {
		idW, titleW := len("ID"), len("Title")
		for _, m := range modes {
			idW = max(idW, len(m.ID))
			titleW = max(titleW, len(m.Title))
		}

		b.WriteString("Available modes:\n\n")
		fmt.Fprintf(&b, "  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Rules")
		fmt.Fprintf(&b, "  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "-----")
		for _, m := range modes {
			fmt.Fprintf(&b, "  %-*s  %-*s  %s\n", idW, m.ID, titleW, m.Title, m.Description)
		}
		b.WriteString("\nRun 'blockfall play <id>' to play a mode.\n")
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
	return err
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var flagRotations bool

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show the piece catalog",
	Long: `Prints the seven templates in catalog order with their color index and
palette color. With --rotations every counter-clockwise orientation is shown.`,
	Args: cobra.NoArgs,
	RunE: runPieces,
}

func init() {
	piecesCmd.Flags().BoolVar(&flagRotations, "rotations", false, "Show all four orientations")
}

const (
	pieceLabelW = 16
	pieceCellW  = 10
	pieceBandH  = 6
)

func runPieces(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderScreen(drawCatalog(cfg, flagRotations)))
	return err
}

// drawCatalog lays out one band per template.
func drawCatalog(cfg config.Config, rotations bool) *core.Screen {
	palette, err := cfg.Colors()
	if err != nil {
		palette, _ = config.Default().Colors()
	}

	orientations := 1
	if rotations {
		orientations = 4
	}
	screen := core.NewScreen(pieceLabelW+orientations*pieceCellW, blockfall.KindCount*pieceBandH)

	for i, shape := range blockfall.Templates() {
		kind := shape.Kind()
		color := palette[int(kind.Color())-1]
		y := i * pieceBandH

		screen.DrawText(0, y, fmt.Sprintf("%s  index %d", kind, kind.Color()))
		screen.SetColored(0, y+1, '■', color)
		screen.DrawText(2, y+1, color.String())

		for o := range orientations {
			drawShape(screen, pieceLabelW+o*pieceCellW, y, shape, color)
			shape = shape.Rotate()
		}
	}
	return screen
}

func drawShape(dst *core.Screen, x, y int, s blockfall.Shape, c core.Color) {
	for r := range s.Rows() {
		for col := range s.Cols() {
			if s.At(r, col) == blockfall.Empty {
				continue
			}
			dst.SetColored(x+col*2, y+r, '█', c)
			dst.SetColored(x+col*2+1, y+r, '█', c)
		}
	}
}

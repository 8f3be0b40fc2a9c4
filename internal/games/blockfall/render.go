package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellWidth  = 2  // Terminal columns per grid cell
	panelWidth = 18 // Side panel with stats and controls
	panelGap   = 2
)

const (
	blockRune = '█'
	ghostRune = '░'
	emptyRune = '·'
)

// minSize returns the smallest screen that fits the board and panel.
func (g *Game) minSize() (int, int) {
	boardW := g.cfg.Board.Width*cellWidth + 2
	boardH := g.cfg.Board.Height + 2
	return boardW + panelGap + panelWidth, boardH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.board == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	minW, minH := g.minSize()
	area := core.NewRect(0, 0, g.screenW, g.screenH).Centered(minW, minH)
	box := core.NewRect(area.X, area.Y, g.cfg.Board.Width*cellWidth+2, g.cfg.Board.Height+2)

	dst.DrawBox(box)
	g.renderGrid(dst, box.X+1, box.Y+1)
	g.renderPiece(dst, box.X+1, box.Y+1)
	g.renderPanel(dst, box.Right()+panelGap, box.Y)
	g.renderOverlays(dst, box)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderGrid draws the settled cells.
func (g *Game) renderGrid(dst *core.Screen, x0, y0 int) {
	grid := g.board.Grid()
	for row := range grid.Height() {
		for col := range grid.Width() {
			x := x0 + col*cellWidth
			y := y0 + row
			cell := grid.At(row, col)
			if cell == Empty {
				dst.SetColored(x, y, emptyRune, core.ColorGray)
				continue
			}
			g.drawCell(dst, x, y, blockRune, g.colorOf(cell))
		}
	}
}

// renderPiece draws the active piece and, below it, its landing position.
// Cells outside the grid are clipped.
func (g *Game) renderPiece(dst *core.Screen, x0, y0 int) {
	piece, ok := g.board.Piece()
	if !ok {
		return
	}
	grid := g.board.Grid()
	color := g.colorOf(piece.Color())

	if g.board.InBounds() {
		if d := g.board.DropDistance(); d > 0 {
			for _, p := range piece.Cells() {
				g.drawCell(dst, x0+p.Col*cellWidth, y0+p.Row+d, ghostRune, color)
			}
		}
	}

	for _, p := range piece.Cells() {
		if !grid.Contains(p.Row, p.Col) {
			continue
		}
		g.drawCell(dst, x0+p.Col*cellWidth, y0+p.Row, blockRune, color)
	}
}

func (g *Game) drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := range cellWidth {
		dst.SetColored(x+i, y, r, c)
	}
}

// colorOf maps a palette index to a terminal color.
func (g *Game) colorOf(c Cell) core.Color {
	i := int(c) - 1
	if i < 0 || i >= len(g.palette) {
		return core.ColorDefault
	}
	return g.palette[i]
}

func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, g.Title())
	if g.mode == ModeStrict {
		dst.DrawText(x, y+1, "checked rotation")
	} else {
		dst.DrawText(x, y+1, "free rotation")
	}

	dst.DrawText(x, y+3, fmt.Sprintf("Locked:  %d", g.board.Locked()))
	dst.DrawText(x, y+4, fmt.Sprintf("Cleared: %d", g.board.Cleared()))
	if g.flashTicks > 0 && g.lastCleared > 0 {
		label := "row"
		if g.lastCleared > 1 {
			label = "rows"
		}
		msg := fmt.Sprintf("+%d %s", g.lastCleared, label)
		for i, r := range []rune(msg) {
			dst.SetColored(x+i, y+5, r, core.ColorBrightYellow)
		}
	}

	controls := []string{
		"←/→  move",
		"↓    drop one",
		"↑    rotate",
		"SPC  hard drop",
		"P    pause",
		"Q    quit",
	}
	for i, line := range controls {
		dst.DrawText(x, y+7+i, line)
	}
}

func (g *Game) renderOverlays(dst *core.Screen, box core.Rect) {
	switch {
	case g.fault:
		drawOverlay(dst, box, "PIECE LEFT THE GRID", "Press R to restart")
	case g.board.IsGameOver():
		drawOverlay(dst, box, "GAME OVER", fmt.Sprintf("Rows: %d", g.board.Cleared()), "Press R to restart")
	case g.paused:
		drawOverlay(dst, box, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a boxed message centered over area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	r := area.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	for i, line := range lines {
		x := r.X + (r.W-len([]rune(line)))/2
		dst.DrawText(x, r.Y+1+i, line)
	}
}

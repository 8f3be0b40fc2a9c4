package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 2)
	require.Equal(t, 6, s.Width())
	require.Equal(t, 2, s.Height())
	assert.Equal(t, "      \n      ", s.String())

	neg := NewScreen(-3, -1)
	assert.Equal(t, 0, neg.Width())
	assert.Equal(t, "", neg.String())
}

func TestScreenColoredCellRun(t *testing.T) {
	s := NewScreen(8, 3)
	for x := 2; x < 6; x++ {
		s.SetColored(x, 1, '█', ColorOrange)
	}

	assert.Equal(t, "  ████  ", s.Row(1))
	assert.Equal(t, Cell{Rune: '█', Color: ColorOrange}, s.GetCell(5, 1))
	assert.Equal(t, blank, s.GetCell(6, 1))

	// writes off screen are dropped, reads off screen are blank
	s.SetColored(8, 1, 'x', ColorRed)
	s.SetColored(0, -1, 'x', ColorRed)
	assert.Equal(t, blank, s.GetCell(8, 1))
	assert.Equal(t, ' ', s.Get(-1, 0))

	s.Set(2, 1, '·')
	assert.Equal(t, ColorDefault, s.GetCell(2, 1).Color, "Set drops the color")

	s.Clear()
	for x := range 8 {
		assert.Equal(t, blank, s.GetCell(x, 1))
	}
}

func TestScreenBoxAroundGrid(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(NewRect(1, 0, 6, 5))
	s.SetColored(2, 2, '█', ColorCyan)
	s.SetColored(3, 2, '█', ColorCyan)

	want := []string{
		" ┌────┐ ",
		" │    │ ",
		" │██  │ ",
		" │    │ ",
		" └────┘ ",
	}
	assert.Equal(t, strings.Join(want, "\n"), s.String())
	assert.Equal(t, ColorCyan, s.GetCell(3, 2).Color)
	assert.Equal(t, ColorDefault, s.GetCell(1, 2).Color)
}

func TestScreenOverlayBlanksArea(t *testing.T) {
	s := NewScreen(7, 3)
	for y := range 3 {
		s.DrawText(0, y, "·······")
	}
	s.DrawRect(NewRect(2, 1, 3, 2), ' ')

	assert.Equal(t, "·······", s.Row(0))
	assert.Equal(t, "··   ··", s.Row(1))
	assert.Equal(t, "··   ··", s.Row(2))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(25, 3)
	s.DrawTextCentered(1, "PIECE LEFT THE GRID")
	assert.Equal(t, "   PIECE LEFT THE GRID   ", s.Row(1))

	// multi-byte runes count as one column each
	s.Clear()
	s.DrawTextCentered(0, "←/→  move")
	assert.Equal(t, "        ←/→  move        ", s.Row(0))

	// text wider than the screen is clipped on both sides
	narrow := NewScreen(5, 1)
	narrow.DrawTextCentered(0, "Window too small")
	assert.Equal(t, "w too", narrow.Row(0))
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetColored(0, 0, '█', ColorGreen)
	s.DrawText(1, 0, "abcde")
	s.DrawText(0, 2, "gone")

	s.Resize(4, 2)
	require.Equal(t, 4, s.Width())
	assert.Equal(t, "█abc\n    ", s.String())
	assert.Equal(t, ColorGreen, s.GetCell(0, 0).Color)

	s.Resize(5, 3)
	assert.Equal(t, "█abc ", s.Row(0))
	assert.Equal(t, "     ", s.Row(2))

	assert.Equal(t, "     ", s.Row(7), "rows past the bottom read as blank")
}

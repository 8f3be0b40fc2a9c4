package blockfall

import (
	"fmt"
	"strings"
)

// Grid is the fixed-size matrix of settled cells. Rows are indexed from the
// top. Its dimensions never change after construction, and only the board
// engine writes to it.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("blockfall: invalid grid size %dx%d", width, height))
	}
	g := &Grid{width: width, height: height, cells: make([][]Cell, height)}
	for r := range g.cells {
		g.cells[r] = make([]Cell, width)
	}
	return g
}

// GridFromRows creates a grid holding a copy of rows. All rows must have the
// same non-zero length and every value must be Empty or a catalog color.
func GridFromRows(rows [][]Cell) *Grid {
	if len(rows) == 0 {
		panic("blockfall: grid needs at least one row")
	}
	g := NewGrid(len(rows[0]), len(rows))
	for r, row := range rows {
		if len(row) != g.width {
			panic(fmt.Sprintf("blockfall: row %d has %d cells, want %d", r, len(row), g.width))
		}
		for c, v := range row {
			if v > Cell(KindCount) {
				panic(fmt.Sprintf("blockfall: invalid color %d at (%d, %d)", v, r, c))
			}
		}
		copy(g.cells[r], row)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Contains reports whether (row, col) lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the cell at (row, col). Coordinates must be inside the grid.
func (g *Grid) At(row, col int) Cell {
	return g.cells[row][col]
}

// Rows returns a copy of the grid contents.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, g.height)
	for r, row := range g.cells {
		out[r] = append([]Cell(nil), row...)
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, cells: g.Rows()}
}

// FullRows returns the indices of rows with no empty cell, top to bottom.
func (g *Grid) FullRows() []int {
	var full []int
	for r, row := range g.cells {
		if rowFull(row) {
			full = append(full, r)
		}
	}
	return full
}

func (g *Grid) set(row, col int, c Cell) {
	g.cells[row][col] = c
}

// clearFullRows removes every full row, inserts the same number of empty
// rows at the top and keeps the order of the surviving rows. It returns the
// removed indices as they were before the clear.
func (g *Grid) clearFullRows() []int {
	full := g.FullRows()
	if len(full) == 0 {
		return nil
	}

	next := make([][]Cell, 0, g.height)
	for range full {
		next = append(next, make([]Cell, g.width))
	}
	for _, row := range g.cells {
		if !rowFull(row) {
			next = append(next, row)
		}
	}
	g.cells = next
	return full
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

// String renders the grid with '.' for empty cells and the color digit for
// filled ones.
func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c == Empty {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + byte(c))
			}
		}
	}
	return b.String()
}

package blockfall

import (
	"fmt"
	"strings"
)

// Cell is the content of one grid position: Empty or a 1-based palette index.
type Cell uint8

// Empty marks an unoccupied cell. Values 1..KindCount are palette indices.
const Empty Cell = 0

// maxShapeSize bounds the side of every piece matrix.
const maxShapeSize = 4

// Point is a (row, col) coordinate. Rows grow downward.
type Point struct {
	Row, Col int
}

// Shape is an immutable piece matrix. Filled cells hold the piece's color
// index. Shapes are values: rotating one returns a new Shape and two shapes
// with the same pattern and color compare equal with ==.
type Shape struct {
	rows, cols int
	cells      [maxShapeSize][maxShapeSize]Cell
}

// newShape builds a shape from rows of '#' (filled) and '.' (empty).
func newShape(color Cell, pattern ...string) Shape {
	if len(pattern) == 0 || len(pattern) > maxShapeSize {
		panic(fmt.Sprintf("blockfall: shape needs 1..%d rows, got %d", maxShapeSize, len(pattern)))
	}
	s := Shape{rows: len(pattern), cols: len(pattern[0])}
	if s.cols == 0 || s.cols > maxShapeSize {
		panic(fmt.Sprintf("blockfall: shape needs 1..%d columns, got %d", maxShapeSize, s.cols))
	}
	for r, line := range pattern {
		if len(line) != s.cols {
			panic(fmt.Sprintf("blockfall: ragged shape row %d", r))
		}
		for c, ch := range line {
			if ch == '#' {
				s.cells[r][c] = color
			}
		}
	}
	return s
}

// Rows returns the height of the shape's bounding box.
func (s Shape) Rows() int {
	return s.rows
}

// Cols returns the width of the shape's bounding box.
func (s Shape) Cols() int {
	return s.cols
}

// At returns the cell at (row, col) of the bounding box, or Empty outside it.
func (s Shape) At(row, col int) Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return Empty
	}
	return s.cells[row][col]
}

// Color returns the color index carried by the shape's filled cells.
func (s Shape) Color() Cell {
	for r := range s.rows {
		for c := range s.cols {
			if s.cells[r][c] != Empty {
				return s.cells[r][c]
			}
		}
	}
	return Empty
}

// Kind returns the catalog kind the shape was derived from.
func (s Shape) Kind() Kind {
	return Kind(s.Color()) - 1
}

// Offsets returns the occupied cells relative to the top-left of the
// bounding box, in row-major order.
func (s Shape) Offsets() []Point {
	points := make([]Point, 0, maxShapeSize)
	for r := range s.rows {
		for c := range s.cols {
			if s.cells[r][c] != Empty {
				points = append(points, Point{Row: r, Col: c})
			}
		}
	}
	return points
}

// Rotate returns the shape turned 90° counter-clockwise. The bounding box
// dimensions swap; the receiver is left untouched.
func (s Shape) Rotate() Shape {
	rotated := Shape{rows: s.cols, cols: s.rows}
	for r := range rotated.rows {
		for c := range rotated.cols {
			rotated.cells[r][c] = s.cells[c][s.cols-1-r]
		}
	}
	return rotated
}

// String renders the shape as rows of '#' and '.' separated by newlines.
func (s Shape) String() string {
	var b strings.Builder
	for r := range s.rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := range s.cols {
			if s.cells[r][c] != Empty {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

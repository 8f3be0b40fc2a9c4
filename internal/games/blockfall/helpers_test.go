package blockfall

import (
	"strings"
	"testing"
)

// scripted replays kinds in order, cycling, and records every n it is asked for.
type scripted struct {
	kinds []Kind
	next  int
	asked []int
}

func (s *scripted) Intn(n int) int {
	s.asked = append(s.asked, n)
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return int(k)
}

func catalogOf(kinds ...Kind) *Catalog {
	return NewCatalog(&scripted{kinds: kinds})
}

// parseGrid builds a grid from rows of '.' and color digits.
func parseGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	cells := make([][]Cell, len(rows))
	for r, line := range rows {
		cells[r] = make([]Cell, len(line))
		for c, ch := range line {
			if ch != '.' {
				cells[r][c] = Cell(ch - '0')
			}
		}
	}
	return GridFromRows(cells)
}

// emptyRows returns n rows of width dots.
func emptyRows(n, width int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", width)
	}
	return rows
}

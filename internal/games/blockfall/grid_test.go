package blockfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(10, 20)
	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 20, g.Height())
	assert.Empty(t, g.FullRows())
	assert.True(t, g.Contains(19, 9))
	assert.False(t, g.Contains(20, 0))
	assert.False(t, g.Contains(0, -1))
	assert.False(t, g.Contains(-1, 0))

	assert.Panics(t, func() { NewGrid(0, 20) })
	assert.Panics(t, func() { NewGrid(10, -1) })
}

func TestGridFromRowsCopies(t *testing.T) {
	rows := [][]Cell{{1, 0}, {0, 7}}
	g := GridFromRows(rows)
	rows[0][0] = 5

	assert.Equal(t, Cell(1), g.At(0, 0))
	assert.Equal(t, "1.\n.7", g.String())

	out := g.Rows()
	out[1][1] = 2
	assert.Equal(t, Cell(7), g.At(1, 1), "Rows returns a copy")
}

func TestGridFromRowsInvalid(t *testing.T) {
	assert.Panics(t, func() { GridFromRows(nil) })
	assert.Panics(t, func() { GridFromRows([][]Cell{{1, 2}, {1}}) })
	assert.Panics(t, func() { GridFromRows([][]Cell{{8}}) })
}

func TestClearFullRows(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		cleared []int
		want    string
	}{
		{
			name:    "none",
			rows:    []string{"...", "1.1", "22."},
			cleared: nil,
			want:    "...\n1.1\n22.",
		},
		{
			name:    "bottom",
			rows:    []string{"...", "3..", "123"},
			cleared: []int{2},
			want:    "...\n...\n3..",
		},
		{
			name:    "non adjacent keeps order",
			rows:    []string{"4..", "111", ".5.", "222", "..6"},
			cleared: []int{1, 3},
			want:    "...\n...\n4..\n.5.\n..6",
		},
		{
			name:    "all",
			rows:    []string{"777", "111"},
			cleared: []int{0, 1},
			want:    "...\n...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := parseGrid(t, tt.rows...)
			cleared := g.clearFullRows()

			assert.Equal(t, tt.cleared, cleared)
			assert.Equal(t, tt.want, g.String())
			assert.Equal(t, len(tt.rows), g.Height())
			assert.Empty(t, g.FullRows())
		})
	}
}

func TestGridClone(t *testing.T) {
	g := parseGrid(t, "1.", ".2")
	c := g.Clone()
	c.set(0, 1, 3)

	require.Equal(t, Empty, g.At(0, 1))
	assert.Equal(t, Cell(3), c.At(0, 1))
}

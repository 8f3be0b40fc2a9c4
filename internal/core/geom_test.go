package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	// board box for a 10x20 grid with two-column cells
	box := NewRect(19, 1, 22, 22)
	assert.Equal(t, 41, box.Right())
	assert.Equal(t, 23, box.Bottom())
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name  string
		outer Rect
		w, h  int
		want  Rect
	}{
		{"layout in terminal", NewRect(0, 0, 80, 24), 42, 22, NewRect(19, 1, 42, 22)},
		{"overlay in board box", NewRect(19, 1, 22, 22), 14, 4, NewRect(23, 10, 14, 4)},
		{"odd slack rounds up-left", NewRect(0, 0, 11, 5), 4, 2, NewRect(3, 1, 4, 2)},
		{"wider than outer", NewRect(5, 5, 10, 4), 14, 4, NewRect(3, 5, 14, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.outer.Centered(tc.w, tc.h))
		})
	}
}

// Package core holds the terminal-agnostic pieces shared by the game and the
// shell: the screen buffer, colors, layout rectangles, input actions and the
// runtime config. Nothing here imports Bubble Tea.
package core

// Rect is a screen region in character cells. X and Y are the top-left
// corner; Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the w×h region whose top-left corner is (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the region.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the region.
func (r Rect) Bottom() int { return r.Y + r.H }

// Centered places a w×h region in the middle of r, rounding toward the
// top-left. The result may extend past r when it is larger.
func (r Rect) Centered(w, h int) Rect {
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

package blockfall

import "fmt"

// State is the board's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Piece is the active piece: a shape anchored by the top-left corner of its
// bounding box in grid coordinates.
type Piece struct {
	Shape Shape
	Row   int
	Col   int
}

// Color returns the palette index of the piece.
func (p Piece) Color() Cell {
	return p.Shape.Color()
}

// Cells returns the absolute grid coordinates of the occupied cells.
func (p Piece) Cells() []Point {
	points := p.Shape.Offsets()
	for i := range points {
		points[i].Row += p.Row
		points[i].Col += p.Col
	}
	return points
}

// MergeResult describes one merge of the active piece into the grid.
type MergeResult struct {
	Piece       Piece // The piece as it was merged
	ClearedRows []int // Indices of removed rows, before the clear
	GameOver    bool  // Whether the respawn ended the game
}

// Option configures a Board.
type Option func(*Board)

// WithRotationCheck rejects rotations whose result would collide.
// Without it the board follows the reference rules and accepts every
// rotation as-is, even one that leaves the piece overlapping walls, the
// floor or settled cells.
func WithRotationCheck() Option {
	return func(b *Board) {
		b.rotationCheck = true
	}
}

// WithOnMerge registers a callback invoked after every merge, once line
// clearing and respawn are done.
func WithOnMerge(fn func(MergeResult)) Option {
	return func(b *Board) {
		b.onMerge = fn
	}
}

// Board is the falling-block state machine: the grid, the active piece and
// the running/game-over state. It is not safe for concurrent use; callers
// drive it from a single goroutine.
//
// Once the game is over every mutating method is a no-op.
type Board struct {
	grid    *Grid
	catalog *Catalog
	piece   Piece
	active  bool
	state   State

	rotationCheck bool
	onMerge       func(MergeResult)

	locked  int
	cleared int
}

// NewBoard creates a board with an empty width×height grid and spawns the
// first piece.
func NewBoard(width, height int, catalog *Catalog, opts ...Option) *Board {
	return newBoard(NewGrid(width, height), catalog, opts)
}

// NewBoardFromGrid creates a board over a copy of g and spawns the first
// piece. If the spawn position is already blocked the board starts in the
// game-over state.
func NewBoardFromGrid(g *Grid, catalog *Catalog, opts ...Option) *Board {
	return newBoard(g.Clone(), catalog, opts)
}

func newBoard(g *Grid, catalog *Catalog, opts []Option) *Board {
	if catalog == nil {
		panic("blockfall: board needs a catalog")
	}
	b := &Board{
		grid:    g,
		catalog: catalog,
		state:   StateRunning,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.spawn()
	return b
}

// Grid returns the settled cells. The active piece is not part of the grid.
func (b *Board) Grid() *Grid {
	return b.grid
}

// Piece returns the active piece. ok is false once the game is over.
func (b *Board) Piece() (p Piece, ok bool) {
	return b.piece, b.active
}

// State returns the current lifecycle state.
func (b *Board) State() State {
	return b.state
}

// IsGameOver reports whether the board reached the terminal state.
func (b *Board) IsGameOver() bool {
	return b.state == StateGameOver
}

// Locked returns how many pieces have been merged into the grid.
func (b *Board) Locked() int {
	return b.locked
}

// Cleared returns how many rows have been removed in total.
func (b *Board) Cleared() int {
	return b.cleared
}

// SpawnColumn returns the anchor column used for new pieces.
func (b *Board) SpawnColumn() int {
	return b.grid.width/2 - 1
}

// WouldCollide reports whether the active piece, shifted by the offsets,
// would leave the grid through the floor or a side wall or overlap a settled
// cell. There is no ceiling: cells above row 0 never collide. Without an
// active piece it reports false.
func (b *Board) WouldCollide(rowOffset, colOffset int) bool {
	if !b.active {
		return false
	}
	for _, p := range b.piece.Cells() {
		row, col := p.Row+rowOffset, p.Col+colOffset
		if row >= b.grid.height || col < 0 || col >= b.grid.width {
			return true
		}
		if row >= 0 && b.grid.cells[row][col] != Empty {
			return true
		}
	}
	return false
}

// InBounds reports whether every cell of the active piece lies inside the
// grid, i.e. whether merging it now would be legal. Only an unchecked
// rotation can make it false.
func (b *Board) InBounds() bool {
	if !b.active {
		return true
	}
	for _, p := range b.piece.Cells() {
		if !b.grid.Contains(p.Row, p.Col) {
			return false
		}
	}
	return true
}

// DropDistance returns how many rows the active piece can fall before it
// would collide.
func (b *Board) DropDistance() int {
	if !b.active {
		return 0
	}
	d := 0
	for !b.WouldCollide(d+1, 0) {
		d++
	}
	return d
}

// MoveHorizontal shifts the active piece one column. dir must be -1 (left)
// or +1 (right). A blocked move is ignored.
func (b *Board) MoveHorizontal(dir int) {
	if dir != -1 && dir != 1 {
		panic(fmt.Sprintf("blockfall: invalid direction %d", dir))
	}
	if b.state != StateRunning {
		return
	}
	if !b.WouldCollide(0, dir) {
		b.piece.Col += dir
	}
}

// Rotate turns the active piece 90° counter-clockwise around its anchor.
// Under the reference rules the result is not checked for collisions.
func (b *Board) Rotate() {
	if b.state != StateRunning {
		return
	}
	prev := b.piece.Shape
	b.piece.Shape = prev.Rotate()
	if b.rotationCheck && b.WouldCollide(0, 0) {
		b.piece.Shape = prev
	}
}

// SoftDrop moves the active piece down one row, or merges it when the row
// below is blocked.
func (b *Board) SoftDrop() {
	if b.state != StateRunning {
		return
	}
	if !b.WouldCollide(1, 0) {
		b.piece.Row++
		return
	}
	b.mergeAndRespawn()
}

// HardDrop moves the active piece down as far as it goes and merges it.
func (b *Board) HardDrop() {
	if b.state != StateRunning {
		return
	}
	for !b.WouldCollide(1, 0) {
		b.piece.Row++
	}
	b.mergeAndRespawn()
}

// Tick is the gravity step. It behaves exactly like SoftDrop.
func (b *Board) Tick() {
	b.SoftDrop()
}

// mergeAndRespawn writes the active piece into the grid, clears full rows
// and spawns the next piece.
func (b *Board) mergeAndRespawn() {
	merged := b.piece
	cells := merged.Cells()
	for _, p := range cells {
		if !b.grid.Contains(p.Row, p.Col) {
			panic(fmt.Sprintf("blockfall: merging %s piece writes outside the %dx%d grid at (%d, %d)",
				merged.Shape.Kind(), b.grid.width, b.grid.height, p.Row, p.Col))
		}
	}
	for _, p := range cells {
		b.grid.set(p.Row, p.Col, merged.Shape.At(p.Row-merged.Row, p.Col-merged.Col))
	}

	rows := b.grid.clearFullRows()
	b.locked++
	b.cleared += len(rows)

	b.spawn()

	if b.onMerge != nil {
		b.onMerge(MergeResult{
			Piece:       merged,
			ClearedRows: rows,
			GameOver:    b.state == StateGameOver,
		})
	}
}

// spawn places a fresh piece at the top center. A blocked spawn ends the
// game and leaves no active piece.
func (b *Board) spawn() {
	b.piece = Piece{
		Shape: b.catalog.PickRandom(),
		Row:   0,
		Col:   b.SpawnColumn(),
	}
	b.active = true
	if b.WouldCollide(0, 0) {
		b.state = StateGameOver
		b.active = false
		b.piece = Piece{}
	}
}

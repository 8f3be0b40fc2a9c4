package blockfall

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode selects the rule set a Game plays with.
type Mode string

const (
	// ModeReference accepts every rotation unchecked.
	ModeReference Mode = "blockfall"
	// ModeStrict rejects rotations that would collide.
	ModeStrict Mode = "blockfall_strict"
)

// settings is shared by every Game created through the registry.
var settings = config.Default()

// Configure sets the configuration used by subsequent Resets.
func Configure(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	settings = cfg
	return nil
}

// Game adapts a Board to the platform loop: input actions, gravity timing,
// pause and restart.
type Game struct {
	mode    Mode
	cfg     config.Config
	palette []core.Color

	rng   *rand.Rand
	board *Board
	tick  uint64

	tickRate     int
	gravityTicks int
	gravityCount int

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool

	// fault is set when an unchecked rotation leaves the piece in a position
	// that cannot be merged. The round ends instead of crashing.
	fault bool

	lastCleared int // Rows removed by the most recent merge
	flashTicks  int // Remaining ticks of the clear banner
}

// New creates a game using the reference rules.
func New() *Game {
	return &Game{mode: ModeReference}
}

// NewStrict creates a game that rejects colliding rotations.
func NewStrict() *Game {
	return &Game{mode: ModeStrict}
}

func init() {
	registry.Register(registry.Info{
		ID:          string(ModeReference),
		Title:       "Blockfall",
		Description: "reference rules, rotations are never checked",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.Info{
		ID:          string(ModeStrict),
		Title:       "Blockfall (Strict)",
		Description: "rotations that would collide are rejected",
	}, func() registry.Game {
		return NewStrict()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeStrict {
		return "Blockfall (Strict)"
	}
	return "Blockfall"
}

// Reset starts a new round from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = settings
	palette, err := g.cfg.Colors()
	if err != nil {
		// Configure validated the palette, so only a zero Config gets here
		g.cfg = config.Default()
		palette, _ = g.cfg.Colors()
	}
	g.palette = palette

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.gravityTicks = g.cfg.GravityTicks(g.tickRate)
	g.gravityCount = 0

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height, NewCatalog(g.rng), g.options()...)

	g.tick = 0
	g.paused = false
	g.fault = false
	g.lastCleared = 0
	g.flashTicks = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

func (g *Game) options() []Option {
	opts := []Option{WithOnMerge(g.onMerge)}
	if g.mode == ModeStrict {
		opts = append(opts, WithRotationCheck())
	}
	return opts
}

func (g *Game) onMerge(res MergeResult) {
	if len(res.ClearedRows) == 0 {
		return
	}
	g.lastCleared = len(res.ClearedRows)
	g.flashTicks = g.tickRate / 2
}

// Resize updates the screen size without touching the round.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	minW, minH := g.minSize()
	g.tooSmall = width < minW || height < minH
}

// Step advances the game by one tick. Before the first Reset it does nothing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.board == nil {
		return core.StepResult{}
	}
	g.tick++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.over() {
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{
				ScreenW:  g.screenW,
				ScreenH:  g.screenH,
				TickRate: g.tickRate,
				Seed:     g.rng.Int63(),
			})
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.board.MoveHorizontal(-1)
	}
	if in.Has(core.ActionRight) {
		g.board.MoveHorizontal(1)
	}
	if in.Has(core.ActionRotate) {
		g.board.Rotate()
	}
	if in.Has(core.ActionSoftDrop) {
		g.drop(g.board.SoftDrop)
	}
	if in.Has(core.ActionHardDrop) {
		g.drop(g.board.HardDrop)
	}

	g.gravityCount++
	if g.gravityCount >= g.gravityTicks {
		g.gravityCount = 0
		g.drop(g.board.Tick)
	}

	return core.StepResult{State: g.State()}
}

// drop runs a board operation that may merge. A piece pushed out of the grid
// by an unchecked rotation cannot be merged, so the round ends as faulted.
func (g *Game) drop(op func()) {
	if g.fault {
		return
	}
	if !g.board.InBounds() {
		g.fault = true
		return
	}
	op()
}

func (g *Game) over() bool {
	return g.fault || g.board.IsGameOver()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Locked:   g.board.Locked(),
		Cleared:  g.board.Cleared(),
		GameOver: g.over(),
		Paused:   g.paused,
	}
}

// Board exposes the engine for inspection.
func (g *Game) Board() *Board {
	return g.board
}

// Faulted reports whether the round ended because a rotated piece left the
// grid.
func (g *Game) Faulted() bool {
	return g.fault
}

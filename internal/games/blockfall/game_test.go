package blockfall

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func withSettings(t *testing.T, mutate func(*config.Config)) {
	t.Helper()
	prev := settings
	t.Cleanup(func() { settings = prev })

	cfg := config.Default()
	mutate(&cfg)
	require.NoError(t, Configure(cfg))
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"blockfall", "blockfall_strict"} {
		info, ok := registry.Lookup(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, info.Description)

		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestConfigureRejectsInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.Board.Width = 3
	assert.Error(t, Configure(cfg))

	g := New()
	g.Reset(testRuntime(1))
	assert.Equal(t, 10, g.Board().Grid().Width(), "rejected config is not applied")
}

func TestUseBeforeReset(t *testing.T) {
	g, err := registry.Create(string(ModeReference))
	require.NoError(t, err)

	in := core.NewInputFrame()
	in.Set(core.ActionHardDrop)
	assert.Equal(t, core.StepResult{}, g.Step(in))
	assert.Equal(t, core.GameState{}, g.State())

	snap := g.(*Game).Snapshot()
	assert.Equal(t, "blockfall", snap.Mode)
	assert.False(t, snap.Active)
	assert.Nil(t, snap.Grid)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Empty(t, strings.TrimSpace(screen.String()))

	g.Reset(testRuntime(1))
	assert.True(t, g.(*Game).Snapshot().Active)
}

func TestDeterminism(t *testing.T) {
	g1, g2 := New(), New()
	g1.Reset(testRuntime(12345))
	g2.Reset(testRuntime(12345))

	script := map[int]core.Action{
		5:  core.ActionLeft,
		9:  core.ActionRotate,
		20: core.ActionHardDrop,
		31: core.ActionRight,
		40: core.ActionHardDrop,
		55: core.ActionSoftDrop,
	}
	for i := range 300 {
		in := core.NewInputFrame()
		if a, ok := script[i]; ok {
			in.Set(a)
		}
		g1.Step(in)
		g2.Step(in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.Equal(t, uint64(300), g1.Snapshot().Tick)
}

func TestGravityCadence(t *testing.T) {
	withSettings(t, func(c *config.Config) { c.Gravity.Interval = 100 * time.Millisecond })
	g := New()
	g.Reset(testRuntime(1))

	empty := core.NewInputFrame()
	for range 5 {
		g.Step(empty)
	}
	p, _ := g.Board().Piece()
	assert.Equal(t, 0, p.Row)

	g.Step(empty)
	p, _ = g.Board().Piece()
	assert.Equal(t, 1, p.Row, "one row every six ticks at 60 Hz")
}

func TestHardDropAction(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	res := g.Step(frame(core.ActionHardDrop))
	assert.Equal(t, 1, res.State.Locked)
	assert.False(t, res.State.GameOver)
}

func TestPauseFreezesGravity(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)

	for range 30 {
		g.Step(frame(core.ActionSoftDrop))
	}
	p, _ := g.Board().Piece()
	assert.Equal(t, 0, p.Row)
	assert.Equal(t, PhasePaused, g.Snapshot().Phase)

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestGameOverAndRestart(t *testing.T) {
	withSettings(t, func(c *config.Config) {
		c.Board.Width = 5
		c.Board.Height = 4
	})
	g := New()
	g.Reset(testRuntime(9))

	drop := frame(core.ActionHardDrop)
	for range 50 {
		if g.Step(drop).State.GameOver {
			break
		}
	}
	require.True(t, g.State().GameOver)
	assert.Equal(t, PhaseGameOver, g.Snapshot().Phase)
	locked := g.State().Locked
	assert.Positive(t, locked)

	g.Step(drop)
	assert.Equal(t, locked, g.State().Locked, "input is ignored after game over")

	res := g.Step(frame(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Zero(t, res.State.Locked)
	assert.Equal(t, 5, g.Board().Grid().Width())
}

func TestRotationFaultEndsRound(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.board = NewBoard(10, 20, catalogOf(KindI), g.options()...)

	g.Step(frame(core.ActionRotate))
	for range 5 {
		g.Step(frame(core.ActionRight))
	}
	g.Step(frame(core.ActionRotate))
	require.False(t, g.Board().InBounds())

	assert.NotPanics(t, func() { g.Step(frame(core.ActionSoftDrop)) })
	assert.True(t, g.Faulted())
	assert.True(t, g.State().GameOver)
	assert.Equal(t, PhaseFaulted, g.Snapshot().Phase)
	assert.Zero(t, g.State().Locked)

	g.Step(frame(core.ActionRestart))
	assert.False(t, g.Faulted())
}

func TestStrictModeRejectsRotation(t *testing.T) {
	g := NewStrict()
	g.Reset(testRuntime(1))
	g.board = NewBoard(10, 20, catalogOf(KindI), g.options()...)

	g.Step(frame(core.ActionRotate))
	for range 5 {
		g.Step(frame(core.ActionRight))
	}
	g.Step(frame(core.ActionRotate))

	assert.True(t, g.Board().InBounds())
	assert.False(t, g.Faulted())
}

func TestClearFlash(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	rows := emptyRows(20, 10)
	rows[19] = "1111.11111"
	g.board = NewBoardFromGrid(parseGrid(t, rows...), catalogOf(KindI), g.options()...)

	g.Step(frame(core.ActionRotate))
	g.Step(frame(core.ActionHardDrop))

	assert.Equal(t, 1, g.State().Cleared)
	assert.Equal(t, 1, g.lastCleared)
	assert.Equal(t, 30, g.flashTicks)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "+1 row")
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.board = NewBoard(10, 20, catalogOf(KindO), g.options()...)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Blockfall")
	assert.Contains(t, out, "Locked:  0")
	assert.Contains(t, out, "████")
	assert.Contains(t, out, "░░░░", "landing position is shown")

	// board box is 22x22, panel 18 wide, centered in 80x24
	boxX, boxY := (80-42)/2, 1
	assert.Equal(t, '┌', screen.Get(boxX, boxY))
	cell := screen.GetCell(boxX+1+4*cellWidth, boxY+1)
	assert.Equal(t, '█', cell.Rune)
	assert.Equal(t, core.ColorOrange, cell.Color, "O uses the third palette entry")
}

func TestRenderOverlays(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Resize(30, 10)
	assert.Equal(t, PhaseTooSmall, g.Snapshot().Phase)
	screen.Resize(30, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(80, 24)
	assert.Equal(t, PhasePaused, g.Snapshot().Phase, "resize keeps the round")
}

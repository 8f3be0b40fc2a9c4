package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Resize(int, int)                      {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func withCleanRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := entries
	entries = make(map[string]entry)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		entries = saved
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	withCleanRegistry(t)

	Register(Info{ID: "b", Description: "second"}, func() Game { return &stubGame{id: "b"} })
	Register(Info{ID: "a", Title: "Alpha"}, func() Game { return &stubGame{id: "a"} })

	list := List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "Alpha", list[0].Title)
	assert.Equal(t, "Stub b", list[1].Title, "title falls back to the game")

	g, err := Create("b")
	require.NoError(t, err)
	assert.Equal(t, "b", g.ID())

	info, ok := Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, "second", info.Description)
}

func TestCreateUnknown(t *testing.T) {
	withCleanRegistry(t)

	_, err := Create("missing")
	assert.ErrorContains(t, err, `unknown mode "missing"`)

	_, ok := Lookup("missing")
	assert.False(t, ok)
}

func TestRegisterPanics(t *testing.T) {
	withCleanRegistry(t)

	f := func() Game { return &stubGame{id: "x"} }
	Register(Info{ID: "x"}, f)

	assert.Panics(t, func() { Register(Info{ID: "x"}, f) })
	assert.Panics(t, func() { Register(Info{ID: " "}, f) })
}

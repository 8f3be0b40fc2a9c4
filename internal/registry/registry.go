// Package registry maps mode IDs to game factories.
// Modes register themselves in init(), so the CLI and menu can list and
// start them without importing each implementation.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is what the platform drives once per tick.
// Implementations hold pure logic and never touch the terminal.
type Game interface {
	// ID returns the registered mode identifier.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a fresh round. The platform calls it on launch and
	// again on restart.
	Reset(cfg core.RuntimeConfig)

	// Resize reports a new terminal size without restarting the round.
	Resize(width, height int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Info describes a registered mode.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a mode. It panics on an empty or duplicate ID.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if strings.TrimSpace(info.ID) == "" {
		panic("registry: empty mode id")
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = f().Title()
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered modes sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b Info) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}

// Lookup returns the metadata of a registered mode.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

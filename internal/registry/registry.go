// Package registry maps game IDs to factories so the CLI and the SSH server
// can create sessions by name. Games register themselves from init().
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/memerun/internal/core"
)

// Game is the contract between a game and the terminal platform.
// Implementations hold no terminal state; the platform owns timing, key
// mapping and painting.
type Game interface {
	ID() string
	Title() string

	// Reset rebuilds the game for a runtime (screen size, seed, player).
	// A running session is discarded.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions collected since the
	// previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render paints the current state onto a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Session is implemented by games with a lifecycle beyond Step: an explicit
// stop on quit and a flush of pending background work before exit.
type Session interface {
	Game
	Stop()
	Flush() error
	Notice() string
}

// Info describes a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    Info
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: Info{ID: id, Title: f().Title()}, factory: f}
}

// List returns every registered game sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

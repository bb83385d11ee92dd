// Package registry maps variant IDs to game factories.
// Game packages register from init(), so the platform and the CLI can list
// and build variants without importing them by name.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/fuelrun/internal/core"
)

// ErrUnknownGame is returned by Create for unregistered IDs.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform drives: a fixed-tick simulation that draws into
// a cell buffer. Implementations must not depend on the terminal runtime.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// storage key for recorded runs.
	ID() string

	Title() string

	// Reset starts a fresh run. It is called before the first Step and
	// whenever the platform wants a new run.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions active during that tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Summarizer is implemented by games that can describe the current run for
// persistence.
type Summarizer interface {
	Summary() core.RunSummary
}

// Describer is implemented by games with a one-line description.
type Describer interface {
	Blurb() string
}

// GameInfo is the metadata captured when a game registers.
type GameInfo struct {
	ID    string
	Title string
	Blurb string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It builds one instance to capture the
// title and blurb. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Blurb = d.Blurb()
	}
	entries[id] = entry{factory: f, info: info}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Info returns the metadata for id.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}

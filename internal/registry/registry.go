// Package registry maps game IDs to constructors. Games register themselves
// from init(), so the platform and CLI can look them up by name.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/dragon-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform drives: one fixed tick per frame, rendered into a
// character screen. Implementations must not depend on the terminal.
type Game interface {
	// ID is the stable identifier used on the command line and in run history.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts over with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick. Movement actions are level-triggered: an
	// action in in.Actions means the key went down, in.Released that it
	// went up.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst. dst has already been sized to the terminal.
	Render(dst *core.Screen)

	// State returns the state as of the last Step.
	State() core.GameState
}

// Info describes a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics on an empty or duplicate id,
// since both are programming errors caught at startup.
func Register(id string, f Factory) {
	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]Info, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, Info{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b Info) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create returns a new instance of the game registered as id.
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
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// unregister removes id. Tests use it to keep the global registry clean.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(entries, id)
}

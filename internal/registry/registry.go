// Package registry provides a global registry for goal factories.
// Goal kinds register themselves in init() functions, allowing the game
// and the CLI to discover and instantiate goals without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blocky/internal/board"
)

// Goal is a player's private objective, scored against a board.
type Goal interface {
	// Kind returns the registered identifier of the goal (e.g., "blob").
	Kind() string

	// Title returns a human-readable name for display (e.g., "Blob").
	Title() string

	// Colour returns the target colour of the goal.
	Colour() board.Colour

	// Score evaluates the goal on a board. Higher is better.
	Score(b *board.Block) int

	// Description explains the goal to the player.
	Description() string
}

// GoalInfo contains metadata about a registered goal kind.
type GoalInfo struct {
	Kind  string
	Title string
}

// Factory creates a goal of one kind targeting a colour.
type Factory func(colour board.Colour) Goal

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a goal factory to the registry.
// Typically called from an init() function.
// Panics if a goal with the same kind is already registered.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("registry: goal %q already registered", kind))
	}

	factories[kind] = f
	titles[kind] = f(board.Colour{}).Title()
}

// List returns information about all registered goal kinds, sorted by kind.
func List() []GoalInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GoalInfo, 0, len(factories))
	for kind := range factories {
		result = append(result, GoalInfo{
			Kind:  kind,
			Title: titles[kind],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})

	return result
}

// Kinds returns the registered goal kinds, sorted.
func Kinds() []string {
	infos := List()
	kinds := make([]string, len(infos))
	for i, info := range infos {
		kinds[i] = info.Kind
	}
	return kinds
}

// Create instantiates a goal of the given kind.
// Returns an error if the kind is not registered.
func Create(kind string, colour board.Colour) (Goal, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("registry: unknown goal %q", kind)
	}

	return f(colour), nil
}

// Exists checks if a goal kind is registered.
func Exists(kind string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[kind]
	return ok
}

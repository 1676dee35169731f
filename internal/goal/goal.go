// Package goal implements the Blocky scoring goals and the grid flattening
// they are evaluated on.
package goal

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/blocky/internal/board"
	"github.com/vovakirdan/blocky/internal/registry"
)

// Goal is a player's private objective.
type Goal = registry.Goal

// Registered goal kinds.
const (
	KindPerimeter = "perimeter"
	KindBlob      = "blob"

	// KindRandom asks Generate to pick a registered kind at random.
	KindRandom = "random"
)

func init() {
	registry.Register(KindPerimeter, func(c board.Colour) registry.Goal {
		return NewPerimeter(c)
	})
	registry.Register(KindBlob, func(c board.Colour) registry.Goal {
		return NewBlob(c)
	})
}

// Generate creates n goals of a single kind, each targeting a different
// palette colour drawn without replacement. An empty kind or KindRandom
// picks one of the registered kinds.
func Generate(rng *rand.Rand, n int, kind string, palette board.Palette) ([]Goal, error) {
	if n > len(palette) {
		return nil, fmt.Errorf("goal: %d goals need distinct colours but palette has %d", n, len(palette))
	}
	if kind == "" || kind == KindRandom {
		kinds := registry.Kinds()
		if len(kinds) == 0 {
			return nil, fmt.Errorf("goal: no goal kinds registered")
		}
		kind = kinds[rng.Intn(len(kinds))]
	}
	if !registry.Exists(kind) {
		return nil, fmt.Errorf("goal: unknown kind %q", kind)
	}

	order := rng.Perm(len(palette))
	goals := make([]Goal, n)
	for i := range goals {
		g, err := registry.Create(kind, palette[order[i]])
		if err != nil {
			return nil, fmt.Errorf("goal: cannot create %q goal: %w", kind, err)
		}
		goals[i] = g
	}
	return goals, nil
}

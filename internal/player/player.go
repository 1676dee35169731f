// Package player implements Blocky players: humans driven by input events
// and computer players that search for moves on private board snapshots.
package player

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/blocky/internal/board"
	"github.com/vovakirdan/blocky/internal/goal"
)

// Kind identifies the type of a player.
type Kind string

const (
	KindHuman  Kind = "human"
	KindRandom Kind = "random"
	KindSmart  Kind = "smart"
)

// Player is a participant in a game.
// Players never modify the board they are given; the game applies the
// moves they return.
type Player interface {
	// ID returns the player's index in turn order.
	ID() int

	// Kind returns the type of player.
	Kind() Kind

	// Goal returns the player's private goal.
	Goal() goal.Goal

	// SelectedBlock returns the block the player is pointing at, or nil.
	SelectedBlock(b *board.Block) *board.Block

	// ProcessEvent updates the player's input state.
	ProcessEvent(ev Event)

	// GenerateMove returns the player's move, or ok=false if the player is
	// not ready to move yet.
	GenerateMove(b *board.Block) (m Move, ok bool)
}

// base holds the state shared by every player type.
type base struct {
	id   int
	goal goal.Goal
}

func (p *base) ID() int         { return p.id }
func (p *base) Goal() goal.Goal { return p.goal }

// Roster describes the players of a game.
type Roster struct {
	Humans int
	Random int
	// Smart holds one difficulty per smart player.
	Smart []int
}

// Total returns the number of players in the roster.
func (r Roster) Total() int {
	return r.Humans + r.Random + len(r.Smart)
}

// Create builds the players of a roster in turn order: humans first, then
// random players, then smart players. goals[i] is assigned to player i.
// maxLevel bounds human block selection.
func Create(rng *rand.Rand, r Roster, goals []goal.Goal, maxLevel int, opts SearchOptions) ([]Player, error) {
	if len(goals) < r.Total() {
		return nil, fmt.Errorf("player: %d players but only %d goals", r.Total(), len(goals))
	}

	players := make([]Player, 0, r.Total())
	for i := 0; i < r.Humans; i++ {
		id := len(players)
		players = append(players, NewHuman(id, goals[id], maxLevel))
	}
	for i := 0; i < r.Random; i++ {
		id := len(players)
		players = append(players, NewRandom(id, goals[id], rng, opts))
	}
	for _, difficulty := range r.Smart {
		if difficulty <= 0 {
			return nil, fmt.Errorf("player: smart difficulty must be positive, got %d", difficulty)
		}
		id := len(players)
		players = append(players, NewSmart(id, goals[id], difficulty, rng, opts))
	}
	return players, nil
}

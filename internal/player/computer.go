package player

import (
	"math/rand"

	"github.com/vovakirdan/blocky/internal/board"
	"github.com/vovakirdan/blocky/internal/goal"
)

// trigger gates computer players so they only move when asked.
type trigger struct {
	ready bool
}

func (t *trigger) ProcessEvent(ev Event) {
	if ev.Kind == EventTrigger {
		t.ready = true
	}
}

// consume reports whether the player was triggered and resets the trigger.
func (t *trigger) consume() bool {
	ready := t.ready
	t.ready = false
	return ready
}

// SelectedBlock returns nil: computer players never select blocks.
func (t *trigger) SelectedBlock(*board.Block) *board.Block { return nil }

// RandomPlayer makes a random valid move each turn.
type RandomPlayer struct {
	base
	trigger
	rng  *rand.Rand
	opts SearchOptions
}

// NewRandom creates a random player drawing from rng.
func NewRandom(id int, g goal.Goal, rng *rand.Rand, opts SearchOptions) *RandomPlayer {
	return &RandomPlayer{
		base: base{id: id, goal: g},
		rng:  rng,
		opts: opts,
	}
}

func (p *RandomPlayer) Kind() Kind { return KindRandom }

// GenerateMove returns a random valid move once triggered.
func (p *RandomPlayer) GenerateMove(b *board.Block) (Move, bool) {
	if !p.consume() {
		return Move{}, false
	}
	m, _ := RandomMove(p.rng, b, p.goal.Colour(), p.opts)
	return m, true
}

// SmartPlayer tries several random moves and plays the one that helps its
// goal the most, or passes if none improves it.
type SmartPlayer struct {
	base
	trigger
	difficulty int
	rng        *rand.Rand
	opts       SearchOptions
	last       SearchResult
}

// NewSmart creates a smart player that evaluates difficulty candidate
// moves per turn.
func NewSmart(id int, g goal.Goal, difficulty int, rng *rand.Rand, opts SearchOptions) *SmartPlayer {
	return &SmartPlayer{
		base:       base{id: id, goal: g},
		difficulty: difficulty,
		rng:        rng,
		opts:       opts,
	}
}

func (p *SmartPlayer) Kind() Kind { return KindSmart }

// Difficulty returns the number of candidates evaluated per turn.
func (p *SmartPlayer) Difficulty() int { return p.difficulty }

// LastSearch returns the result of the player's most recent search.
func (p *SmartPlayer) LastSearch() SearchResult { return p.last }

// GenerateMove returns the best of difficulty random moves once triggered.
func (p *SmartPlayer) GenerateMove(b *board.Block) (Move, bool) {
	if !p.consume() {
		return Move{}, false
	}
	p.last = GreedyMove(p.rng, b, p.goal, p.difficulty, p.opts)
	return p.last.Move, true
}

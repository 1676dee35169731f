package player

import (
	"math/rand"

	"github.com/vovakirdan/blocky/internal/board"
	"github.com/vovakirdan/blocky/internal/goal"
)

// DefaultMaxAttempts bounds the random move search.
const DefaultMaxAttempts = 1000

// SearchOptions tune move search. Zero values select defaults.
type SearchOptions struct {
	// MaxAttempts is how many random (action, block) pairs RandomMove tries
	// before giving up and passing.
	MaxAttempts int

	// Palette is used to colour leaves created by Smash.
	Palette board.Palette
}

func (o SearchOptions) maxAttempts() int {
	if o.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return o.MaxAttempts
}

func (o SearchOptions) palette() board.Palette {
	if len(o.Palette) == 0 {
		return board.DefaultPalette
	}
	return o.Palette
}

// randomAction picks one of rotate, swap, smash, paint and combine with
// equal probability, then a rotation direction or swap axis.
func randomAction(rng *rand.Rand) Action {
	switch rng.Intn(5) {
	case 0:
		if rng.Intn(2) == 0 {
			return RotateClockwise
		}
		return RotateCounterClockwise
	case 1:
		if rng.Intn(2) == 0 {
			return SwapHorizontal
		}
		return SwapVertical
	case 2:
		return Smash
	case 3:
		return Paint
	default:
		return Combine
	}
}

// RandomMove finds a valid random move for a player whose goal colour is
// colour. Attempts are made on a private snapshot of b; the returned move
// targets the matching block of b itself, and the snapshot is returned with
// the move already applied. b is never modified.
//
// If no valid move is found within opts.MaxAttempts tries the result is a
// pass on the whole board and an unmodified snapshot.
func RandomMove(rng *rand.Rand, b *board.Block, colour board.Colour, opts SearchOptions) (Move, *board.Block) {
	snap := b.Snapshot()
	palette := opts.palette()

	for attempt := 0; attempt < opts.maxAttempts(); attempt++ {
		action := randomAction(rng)
		target := randomBlock(rng, snap)

		// Resolve the real block before the snapshot changes shape.
		actual, ok := Locate(b, corner(target), target.Level())
		if !ok {
			panic("player: snapshot block has no counterpart on the board")
		}

		if Apply(Move{Action: action, Target: target}, colour, rng, palette) {
			return Move{Action: action, Target: actual}, snap
		}
	}
	return PassMove(b), snap
}

// Trial is one candidate evaluated by GreedyMove.
type Trial struct {
	Move  Move
	Score int
}

// SearchResult describes a greedy search.
type SearchResult struct {
	// Move is the chosen move; a pass on the whole board when no trial
	// beat the current score.
	Move Move

	// Original is the goal score of the board before any move.
	Original int

	// Best is the highest score reached by any trial, or Original when
	// there were no trials.
	Best int

	// Trials lists every candidate in the order it was generated.
	Trials []Trial

	// BestMoves lists every trial move that reached Best.
	BestMoves []Move
}

// Improved reports whether the search found a move that beats the
// current score.
func (r SearchResult) Improved() bool {
	return r.Move.Action != Pass && r.Best > r.Original
}

// GreedyMove evaluates difficulty random moves, each on a fresh snapshot of
// b, and returns the one that scores best for g. Among equally good moves
// the last one generated wins. If the best score does not beat the
// current score the result is a pass.
func GreedyMove(rng *rand.Rand, b *board.Block, g goal.Goal, difficulty int, opts SearchOptions) SearchResult {
	res := SearchResult{Original: g.Score(b)}
	res.Best = res.Original

	for i := 0; i < difficulty; i++ {
		move, after := RandomMove(rng, b, g.Colour(), opts)
		score := g.Score(after)
		res.Trials = append(res.Trials, Trial{Move: move, Score: score})

		switch {
		case i == 0 || score > res.Best:
			res.Best = score
			res.BestMoves = []Move{move}
		case score == res.Best:
			res.BestMoves = append(res.BestMoves, move)
		}
	}

	if len(res.BestMoves) == 0 || res.Best <= res.Original {
		res.Move = PassMove(b)
		return res
	}
	res.Move = res.BestMoves[len(res.BestMoves)-1]
	return res
}

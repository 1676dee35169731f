package player

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/blocky/internal/board"
)

// Action is a kind of move.
type Action int

const (
	Pass Action = iota
	RotateClockwise
	RotateCounterClockwise
	SwapHorizontal
	SwapVertical
	Smash
	Combine
	Paint
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case Pass:
		return "pass"
	case RotateClockwise:
		return "rotate clockwise"
	case RotateCounterClockwise:
		return "rotate counter-clockwise"
	case SwapHorizontal:
		return "swap horizontal"
	case SwapVertical:
		return "swap vertical"
	case Smash:
		return "smash"
	case Combine:
		return "combine"
	case Paint:
		return "paint"
	default:
		return "unknown"
	}
}

// Direction returns the rotation turns for rotate actions and the axis for
// swap actions. ok is false for actions without a direction.
func (a Action) Direction() (dir int, ok bool) {
	switch a {
	case RotateClockwise:
		return board.Clockwise, true
	case RotateCounterClockwise:
		return board.CounterClockwise, true
	case SwapHorizontal:
		return board.AxisHorizontal, true
	case SwapVertical:
		return board.AxisVertical, true
	default:
		return 0, false
	}
}

// Move is an action aimed at a block.
type Move struct {
	Action Action
	Target *board.Block
}

// String describes the move, e.g. "smash level 2 at (375, 0)".
func (m Move) String() string {
	if m.Target == nil {
		return m.Action.String()
	}
	pos := m.Target.Position()
	return fmt.Sprintf("%s level %d at (%d, %d)", m.Action, m.Target.Level(), pos.X, pos.Y)
}

// PassMove returns a pass aimed at the whole board.
func PassMove(b *board.Block) Move {
	return Move{Action: Pass, Target: b}
}

// Apply performs m on the tree its target belongs to. colour is the
// mover's goal colour, used by Paint; rng and palette are used by Smash.
// Apply reports false, without changing anything, if the move is invalid
// for its target.
func Apply(m Move, colour board.Colour, rng *rand.Rand, palette board.Palette) bool {
	if m.Target == nil {
		return false
	}
	switch m.Action {
	case Pass:
		return true
	case RotateClockwise, RotateCounterClockwise:
		turns, _ := m.Action.Direction()
		return m.Target.Rotate(turns)
	case SwapHorizontal, SwapVertical:
		axis, _ := m.Action.Direction()
		return m.Target.Swap(axis)
	case Smash:
		return m.Target.Smash(rng, palette)
	case Combine:
		return m.Target.Combine()
	case Paint:
		return m.Target.Paint(colour)
	default:
		return false
	}
}

package player

import (
	"github.com/vovakirdan/blocky/internal/board"
	"github.com/vovakirdan/blocky/internal/goal"
)

// HumanPlayer is driven by input events: a pointer position, a selected
// level and a requested action.
type HumanPlayer struct {
	base
	pointer    Point
	hasPointer bool
	level      int
	maxLevel   int
	pending    *Action
}

// NewHuman creates a human player. The selected level starts at the root
// and is kept within [0, maxLevel].
func NewHuman(id int, g goal.Goal, maxLevel int) *HumanPlayer {
	return &HumanPlayer{
		base:     base{id: id, goal: g},
		maxLevel: maxLevel,
	}
}

func (p *HumanPlayer) Kind() Kind { return KindHuman }

// Level returns the currently selected level.
func (p *HumanPlayer) Level() int { return p.level }

// ProcessEvent handles pointer, level and action events. Triggers are
// ignored.
func (p *HumanPlayer) ProcessEvent(ev Event) {
	switch ev.Kind {
	case EventPointer:
		p.pointer = ev.Point
		p.hasPointer = true
	case EventLevelUp:
		if p.level > 0 {
			p.level--
		}
	case EventLevelDown:
		if p.level < p.maxLevel {
			p.level++
		}
	case EventAction:
		action := ev.Action
		p.pending = &action
	}
}

// SelectedBlock returns the block under the pointer at the selected level.
func (p *HumanPlayer) SelectedBlock(b *board.Block) *board.Block {
	if !p.hasPointer {
		return nil
	}
	found, ok := Locate(b, p.pointer, p.level)
	if !ok {
		return nil
	}
	return found
}

// GenerateMove returns the pending action on the selected block. The
// pending action is consumed even when no block is selected.
func (p *HumanPlayer) GenerateMove(b *board.Block) (Move, bool) {
	if p.pending == nil {
		return Move{}, false
	}
	action := *p.pending
	p.pending = nil

	target := p.SelectedBlock(b)
	if target == nil {
		return Move{}, false
	}
	return Move{Action: action, Target: target}, true
}

package goal

import (
	"fmt"

	"github.com/vovakirdan/blocky/internal/board"
)

// PerimeterGoal rewards unit cells of the target colour on the outer edge
// of the board. Corner cells count twice.
type PerimeterGoal struct {
	colour board.Colour
}

// NewPerimeter creates a perimeter goal for colour.
func NewPerimeter(colour board.Colour) *PerimeterGoal {
	return &PerimeterGoal{colour: colour}
}

func (g *PerimeterGoal) Kind() string         { return KindPerimeter }
func (g *PerimeterGoal) Title() string        { return "Perimeter" }
func (g *PerimeterGoal) Colour() board.Colour { return g.colour }

// Description explains the goal to the player.
func (g *PerimeterGoal) Description() string {
	return fmt.Sprintf("Put as many %s cells as possible on the outer edge (corners count double)", g.colour.Hex())
}

// Score counts edge cells of the goal colour on b.
func (g *PerimeterGoal) Score(b *board.Block) int {
	return perimeterScore(Flatten(b), g.colour)
}

func perimeterScore(grid Grid, colour board.Colour) int {
	n := len(grid)
	if n == 1 {
		return edgeColumnScore(grid[0], colour)
	}

	score := edgeColumnScore(grid[0], colour) + edgeColumnScore(grid[n-1], colour)
	for _, column := range grid[1 : n-1] {
		if column[0] == colour {
			score++
		}
		if column[len(column)-1] == colour {
			score++
		}
	}
	return score
}

// edgeColumnScore scores a left or right edge column: the end cells lie on
// two edges each.
func edgeColumnScore(column []board.Colour, colour board.Colour) int {
	score := 0
	last := len(column) - 1
	for y, c := range column {
		if c != colour {
			continue
		}
		if y == 0 || y == last {
			score += 2
			if y == 0 && last == 0 {
				score += 2
			}
		} else {
			score++
		}
	}
	return score
}

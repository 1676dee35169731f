package player

import (
	"math/rand"

	"github.com/vovakirdan/blocky/internal/board"
)

// Point is a continuous position on the board, in pixels.
type Point struct {
	X, Y float64
}

// Locate returns the block containing p at the requested level, or the
// deepest leaf containing p when that leaf is shallower than level.
// Containment is half-open: a block covers [pos, pos+size) on each axis.
// ok is false only when p lies outside b.
func Locate(b *board.Block, p Point, level int) (found *board.Block, ok bool) {
	if !contains(b, p) {
		return nil, false
	}
	for level > b.Level() && !b.IsLeaf() {
		var next *board.Block
		for _, c := range b.Children() {
			if contains(c, p) {
				next = c
				break
			}
		}
		if next == nil {
			break
		}
		b = next
	}
	return b, true
}

func contains(b *board.Block, p Point) bool {
	pos := b.Position()
	x0, y0 := float64(pos.X), float64(pos.Y)
	size := float64(b.Size())
	return p.X >= x0 && p.X < x0+size && p.Y >= y0 && p.Y < y0+size
}

// randomBlock picks a block of b by choosing a depth uniformly in
// [0, MaxDepth] and a point uniformly over the board.
func randomBlock(rng *rand.Rand, b *board.Block) *board.Block {
	level := rng.Intn(b.MaxDepth() + 1)
	pos := b.Position()
	size := float64(b.Size())
	p := Point{
		X: float64(pos.X) + rng.Float64()*size,
		Y: float64(pos.Y) + rng.Float64()*size,
	}
	found, ok := Locate(b, p, level)
	if !ok {
		panic("player: random point fell outside the board")
	}
	return found
}

// corner returns the top-left corner of b as a Point.
func corner(b *board.Block) Point {
	pos := b.Position()
	return Point{X: float64(pos.X), Y: float64(pos.Y)}
}

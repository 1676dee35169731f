package board

import (
	"math"
	"math/rand"
)

// Square is a leaf as drawn on screen.
type Square struct {
	Colour   Colour
	Position Point
	Size     int
}

// Squares returns a Square for every leaf of the subtree, in pre-order.
func (b *Block) Squares() []Square {
	leaves := b.Leaves()
	squares := make([]Square, len(leaves))
	for i, l := range leaves {
		squares[i] = Square{Colour: l.colour, Position: l.position, Size: l.size}
	}
	return squares
}

// Generate builds a random starting board. The root is always subdivided
// (when maxDepth allows); below it a block at level l is subdivided again
// with probability exp(-0.25*l), otherwise it becomes a leaf of a random
// palette colour.
func Generate(rng *rand.Rand, size, maxDepth int, palette Palette) *Block {
	root := New(size, maxDepth, palette.Random(rng))
	if !root.Smash(rng, palette) {
		return root
	}
	for _, c := range root.children {
		grow(rng, c, palette)
	}
	return root
}

func grow(rng *rand.Rand, b *Block, palette Palette) {
	if b.level >= b.maxDepth {
		return
	}
	if rng.Float64() >= math.Exp(-0.25*float64(b.level)) {
		return
	}
	b.Smash(rng, palette)
	for _, c := range b.children {
		grow(rng, c, palette)
	}
}

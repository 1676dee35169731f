package board

import "math/rand"

// Swap axes.
const (
	AxisHorizontal = 0 // mirror left/right
	AxisVertical   = 1 // mirror top/bottom
)

// Rotation turns.
const (
	Clockwise        = 1
	CounterClockwise = 3
)

// Smash replaces the block (and any subtree) with four new leaves coloured
// at random from palette. It fails at the maximum depth or when the palette
// is empty.
func (b *Block) Smash(rng *rand.Rand, palette Palette) bool {
	if b.level >= b.maxDepth || len(palette) == 0 {
		return false
	}
	var colours [4]Colour
	for i := range colours {
		colours[i] = palette.Random(rng)
	}
	b.children = nil
	return b.Split(colours)
}

// Swap mirrors the block's children along axis. Only direct children
// change quadrant; descendants move with them. Leaves cannot be swapped.
func (b *Block) Swap(axis int) bool {
	if b.IsLeaf() {
		return false
	}
	c := b.children
	switch axis {
	case AxisHorizontal:
		c[TopRight], c[TopLeft] = c[TopLeft], c[TopRight]
		c[BottomLeft], c[BottomRight] = c[BottomRight], c[BottomLeft]
	case AxisVertical:
		c[TopRight], c[BottomRight] = c[BottomRight], c[TopRight]
		c[TopLeft], c[BottomLeft] = c[BottomLeft], c[TopLeft]
	default:
		return false
	}
	b.relayout(b.position)
	return true
}

// Rotate turns the block's children a quarter turn: Clockwise (1) or
// CounterClockwise (3). Leaves cannot be rotated.
func (b *Block) Rotate(turns int) bool {
	if b.IsLeaf() || (turns != Clockwise && turns != CounterClockwise) {
		return false
	}
	old := b.children
	next := make([]*Block, 4)
	for i := range next {
		next[i] = old[(i+turns)%4]
	}
	b.children = next
	b.relayout(b.position)
	return true
}

// Combine collapses four leaf children into a single leaf coloured with the
// strict majority colour among them. When two or more colours tie for the
// highest count the board is left unchanged and Combine fails.
func (b *Block) Combine() bool {
	if b.IsLeaf() {
		return false
	}
	for _, c := range b.children {
		if !c.IsLeaf() {
			return false
		}
	}

	type tally struct {
		colour Colour
		count  int
	}
	var counts []tally
	for _, c := range b.children {
		found := false
		for i := range counts {
			if counts[i].colour == c.colour {
				counts[i].count++
				found = true
				break
			}
		}
		if !found {
			counts = append(counts, tally{c.colour, 1})
		}
	}

	best, tied := counts[0], false
	for _, t := range counts[1:] {
		switch {
		case t.count > best.count:
			best, tied = t, false
		case t.count == best.count:
			tied = true
		}
	}
	if tied {
		return false
	}

	b.children = nil
	b.colour = best.colour
	return true
}

// Paint recolours a leaf.
func (b *Block) Paint(colour Colour) bool {
	if !b.IsLeaf() {
		return false
	}
	b.colour = colour
	return true
}

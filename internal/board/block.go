// Package board implements the Blocky board: a square region recursively
// subdivided into four quadrants down to a fixed maximum depth.
package board

import (
	"fmt"
	"strings"
)

// Point is an absolute pixel position on the board.
type Point struct {
	X, Y int
}

// Quadrant indices of a block's children.
const (
	TopRight = iota
	TopLeft
	BottomLeft
	BottomRight
)

// Block is a node of the board quad-tree.
// A block is either a coloured leaf or has exactly four children.
type Block struct {
	position Point
	size     int
	level    int
	maxDepth int
	colour   Colour
	children []*Block // nil for leaves, otherwise len 4
}

// New creates a root leaf block anchored at (0, 0).
func New(size, maxDepth int, colour Colour) *Block {
	return NewAt(Point{}, size, maxDepth, colour)
}

// NewAt creates a root leaf block anchored at pos.
func NewAt(pos Point, size, maxDepth int, colour Colour) *Block {
	return &Block{
		position: pos,
		size:     size,
		maxDepth: maxDepth,
		colour:   colour,
	}
}

// Position returns the top-left corner of the block.
func (b *Block) Position() Point { return b.position }

// Size returns the edge length of the block in pixels.
func (b *Block) Size() int { return b.size }

// Level returns the depth of the block; the root is level 0.
func (b *Block) Level() int { return b.level }

// MaxDepth returns the deepest level any block in the tree may reach.
func (b *Block) MaxDepth() int { return b.maxDepth }

// IsLeaf reports whether the block has no children.
func (b *Block) IsLeaf() bool { return len(b.children) == 0 }

// Colour returns the block's colour. Only leaves are coloured; for an
// interior block ok is false.
func (b *Block) Colour() (c Colour, ok bool) {
	if !b.IsLeaf() {
		return Colour{}, false
	}
	return b.colour, true
}

// Children returns the four children in quadrant order, or nil for a leaf.
// The returned slice must not be modified.
func (b *Block) Children() []*Block { return b.children }

// Child returns the child in quadrant q, or nil for a leaf.
func (b *Block) Child(q int) *Block {
	if b.IsLeaf() || q < 0 || q >= 4 {
		return nil
	}
	return b.children[q]
}

// Split turns a leaf into an interior block whose four leaf children have
// the given colours, in quadrant order. It fails on an interior block or
// at the maximum depth.
func (b *Block) Split(colours [4]Colour) bool {
	if !b.IsLeaf() || b.level >= b.maxDepth {
		return false
	}
	b.children = make([]*Block, 4)
	pos := childPositions(b.position, b.size)
	half := childSize(b.size)
	for i := range b.children {
		b.children[i] = &Block{
			position: pos[i],
			size:     half,
			level:    b.level + 1,
			maxDepth: b.maxDepth,
			colour:   colours[i],
		}
	}
	b.colour = Colour{}
	return true
}

// Snapshot returns a deep copy of the subtree rooted at b.
func (b *Block) Snapshot() *Block {
	cp := *b
	if !b.IsLeaf() {
		cp.children = make([]*Block, 4)
		for i, c := range b.children {
			cp.children[i] = c.Snapshot()
		}
	}
	return &cp
}

// Equal reports whether two trees have the same shape, levels, sizes and
// leaf colours. Positions are not compared; see SamePlacement.
func (b *Block) Equal(other *Block) bool {
	return b.equal(other, false)
}

// SamePlacement is like Equal but also requires every node to sit at the
// same position.
func (b *Block) SamePlacement(other *Block) bool {
	return b.equal(other, true)
}

func (b *Block) equal(other *Block, placement bool) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.level != other.level || b.maxDepth != other.maxDepth || b.size != other.size {
		return false
	}
	if placement && b.position != other.position {
		return false
	}
	if b.IsLeaf() != other.IsLeaf() {
		return false
	}
	if b.IsLeaf() {
		return b.colour == other.colour
	}
	for i := range b.children {
		if !b.children[i].equal(other.children[i], placement) {
			return false
		}
	}
	return true
}

// Walk visits the subtree in pre-order. Returning false from fn skips the
// node's children.
func (b *Block) Walk(fn func(*Block) bool) {
	if !fn(b) {
		return
	}
	for _, c := range b.children {
		c.Walk(fn)
	}
}

// Leaves returns every leaf of the subtree in pre-order.
func (b *Block) Leaves() []*Block {
	var leaves []*Block
	b.Walk(func(n *Block) bool {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

// Contains reports whether the pixel p lies inside the block.
func (b *Block) Contains(p Point) bool {
	return p.X >= b.position.X && p.X < b.position.X+b.size &&
		p.Y >= b.position.Y && p.Y < b.position.Y+b.size
}

// String returns an indented dump of the tree.
func (b *Block) String() string {
	var sb strings.Builder
	b.dump(&sb)
	return sb.String()
}

func (b *Block) dump(sb *strings.Builder) {
	indent := strings.Repeat("  ", b.level)
	if b.IsLeaf() {
		fmt.Fprintf(sb, "%sLeaf: colour=%s, pos=(%d, %d), size=%d, level=%d\n",
			indent, b.colour.Hex(), b.position.X, b.position.Y, b.size, b.level)
		return
	}
	fmt.Fprintf(sb, "%sParent: pos=(%d, %d), size=%d, level=%d\n",
		indent, b.position.X, b.position.Y, b.size, b.level)
	for _, c := range b.children {
		c.dump(sb)
	}
}

// childSize rounds half sizes up so that children always cover their parent.
func childSize(size int) int {
	return (size + 1) / 2
}

func childPositions(pos Point, size int) [4]Point {
	half := childSize(size)
	return [4]Point{
		TopRight:    {pos.X + half, pos.Y},
		TopLeft:     {pos.X, pos.Y},
		BottomLeft:  {pos.X, pos.Y + half},
		BottomRight: {pos.X + half, pos.Y + half},
	}
}

// relayout moves b to pos and recomputes every descendant's position.
func (b *Block) relayout(pos Point) {
	b.position = pos
	if b.IsLeaf() {
		return
	}
	cp := childPositions(pos, b.size)
	for i, c := range b.children {
		c.relayout(cp[i])
	}
}

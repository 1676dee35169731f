// Package boardtest provides hand-built boards for tests.
package boardtest

import "github.com/vovakirdan/blocky/internal/board"

// Palette colours in default order.
var (
	C0 = board.PacificPoint
	C1 = board.RealRed
	C2 = board.OldOlive
	C3 = board.DaffodilDelight
)

// Leaf is a 750px root leaf at its maximum depth.
func Leaf() *board.Block {
	return board.New(750, 0, C0)
}

// Board16x16 is a 750px board of depth 2 whose top-right quadrant is split:
//
//	C2 C2 C1 C0
//	C2 C2 C1 C3
//	C1 C1 C3 C3
//	C1 C1 C3 C3
func Board16x16() *board.Block {
	b := board.New(750, 2, C0)
	b.Split([4]board.Colour{C0, C2, C1, C3})
	b.Child(board.TopRight).Split([4]board.Colour{C0, C1, C1, C3})
	return b
}

// Board2x2 is a 750px board of depth 1 with four leaf quadrants.
func Board2x2() *board.Block {
	b := board.New(750, 1, C0)
	b.Split([4]board.Colour{C1, C2, C3, C0})
	return b
}

// Board2x2Deep is a depth 2 board with four leaf quadrants, so each
// quadrant covers a 2x2 area of unit cells.
func Board2x2Deep() *board.Block {
	b := board.New(750, 2, C0)
	b.Split([4]board.Colour{C1, C2, C2, C1})
	return b
}

// Board8x8 is a 100px board of depth 3 with mixed leaf depths.
func Board8x8() *board.Block {
	b := board.New(100, 3, C0)
	b.Split([4]board.Colour{C3, C0, C0, C0})

	tl := b.Child(board.TopLeft)
	tl.Split([4]board.Colour{C1, C0, C0, C1})
	tl.Child(board.TopLeft).Split([4]board.Colour{C0, C2, C3, C3})

	b.Child(board.BottomLeft).Split([4]board.Colour{C1, C2, C0, C0})
	b.Child(board.BottomRight).Split([4]board.Colour{C3, C3, C0, C2})
	return b
}

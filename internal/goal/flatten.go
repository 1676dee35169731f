package goal

import "github.com/vovakirdan/blocky/internal/board"

// Grid is a board flattened to unit cells. Grid[x][y] is the colour of
// column x (0 = left edge), row y (0 = top edge).
type Grid [][]board.Colour

// Flatten returns the unit-cell grid of b. The grid is square with side
// 2^(MaxDepth-Level).
func Flatten(b *board.Block) Grid {
	side := 1 << (b.MaxDepth() - b.Level())
	if c, ok := b.Colour(); ok {
		grid := make(Grid, side)
		for x := range grid {
			column := make([]board.Colour, side)
			for y := range column {
				column[y] = c
			}
			grid[x] = column
		}
		return grid
	}

	tr := Flatten(b.Child(board.TopRight))
	tl := Flatten(b.Child(board.TopLeft))
	bl := Flatten(b.Child(board.BottomLeft))
	br := Flatten(b.Child(board.BottomRight))

	grid := make(Grid, 0, side)
	grid = append(grid, stack(tl, bl)...)
	grid = append(grid, stack(tr, br)...)
	return grid
}

// stack joins each column of top with the matching column of bottom.
func stack(top, bottom Grid) Grid {
	out := make(Grid, len(top))
	for x := range top {
		column := make([]board.Colour, 0, len(top[x])+len(bottom[x]))
		column = append(column, top[x]...)
		out[x] = append(column, bottom[x]...)
	}
	return out
}

// Side returns the edge length of the grid in cells.
func (g Grid) Side() int { return len(g) }

package goal

import (
	"fmt"

	"github.com/vovakirdan/blocky/internal/board"
)

// BlobGoal rewards the largest 4-connected region of the target colour.
type BlobGoal struct {
	colour board.Colour
}

// NewBlob creates a blob goal for colour.
func NewBlob(colour board.Colour) *BlobGoal {
	return &BlobGoal{colour: colour}
}

func (g *BlobGoal) Kind() string         { return KindBlob }
func (g *BlobGoal) Title() string        { return "Blob" }
func (g *BlobGoal) Colour() board.Colour { return g.colour }

// Description explains the goal to the player.
func (g *BlobGoal) Description() string {
	return fmt.Sprintf("Grow the largest connected blob of %s cells", g.colour.Hex())
}

// Score returns the size of the largest blob of the goal colour on b.
func (g *BlobGoal) Score(b *board.Block) int {
	return largestBlob(Flatten(b), g.colour)
}

type visit uint8

const (
	unvisited visit = iota
	visitedOther
	visitedMatch
)

type cell struct{ x, y int }

var neighbours = [4]cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// largestBlob scans every cell once; visited marks persist across blobs so
// the total work is linear in the number of cells.
func largestBlob(grid Grid, colour board.Colour) int {
	n := len(grid)
	visited := make([][]visit, n)
	for x := range visited {
		visited[x] = make([]visit, n)
	}

	best := 0
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if size := blobSize(grid, visited, colour, x, y); size > best {
				best = size
			}
		}
	}
	return best
}

// blobSize returns the size of the not yet visited blob containing (x, y),
// or 0 if the cell was visited already or has another colour.
func blobSize(grid Grid, visited [][]visit, colour board.Colour, x, y int) int {
	if visited[x][y] != unvisited {
		return 0
	}
	if grid[x][y] != colour {
		visited[x][y] = visitedOther
		return 0
	}

	n := len(grid)
	visited[x][y] = visitedMatch
	stack := []cell{{x, y}}
	size := 0
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++

		for _, d := range neighbours {
			nx, ny := c.x+d.x, c.y+d.y
			if nx < 0 || nx >= n || ny < 0 || ny >= n || visited[nx][ny] != unvisited {
				continue
			}
			if grid[nx][ny] != colour {
				visited[nx][ny] = visitedOther
				continue
			}
			visited[nx][ny] = visitedMatch
			stack = append(stack, cell{nx, ny})
		}
	}
	return size
}

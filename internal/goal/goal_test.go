package goal

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/blocky/internal/board"
	"github.com/vovakirdan/blocky/internal/board/boardtest"
	"github.com/vovakirdan/blocky/internal/registry"
)

var (
	c0 = boardtest.C0
	c1 = boardtest.C1
	c2 = boardtest.C2
	c3 = boardtest.C3
)

func TestFlatten(t *testing.T) {
	got := Flatten(boardtest.Board16x16())
	want := Grid{
		{c2, c2, c1, c1},
		{c2, c2, c1, c1},
		{c1, c1, c3, c3},
		{c0, c3, c3, c3},
	}
	if got.Side() != 4 {
		t.Fatalf("Side() = %d, want 4", got.Side())
	}
	for x := range want {
		for y := range want[x] {
			if got[x][y] != want[x][y] {
				t.Errorf("cell (%d,%d) = %s, want %s", x, y, got[x][y], want[x][y])
			}
		}
	}
}

func TestFlattenIsSquare(t *testing.T) {
	boards := map[string]*board.Block{
		"leaf":     boardtest.Leaf(),
		"2x2":      boardtest.Board2x2(),
		"2x2 deep": boardtest.Board2x2Deep(),
		"16x16":    boardtest.Board16x16(),
		"8x8":      boardtest.Board8x8(),
		"random":   board.Generate(rand.New(rand.NewSource(3)), 512, 5, board.DefaultPalette),
	}
	for name, b := range boards {
		t.Run(name, func(t *testing.T) {
			grid := Flatten(b)
			want := 1 << b.MaxDepth()
			if len(grid) != want {
				t.Fatalf("columns = %d, want %d", len(grid), want)
			}
			for x, column := range grid {
				if len(column) != want {
					t.Errorf("column %d has %d cells, want %d", x, len(column), want)
				}
			}
		})
	}
}

func TestFlattenSubtree(t *testing.T) {
	grid := Flatten(boardtest.Board16x16().Child(board.TopRight))
	want := Grid{{c1, c1}, {c0, c3}}
	for x := range want {
		for y := range want[x] {
			if grid[x][y] != want[x][y] {
				t.Errorf("cell (%d,%d) = %s, want %s", x, y, grid[x][y], want[x][y])
			}
		}
	}
}

func TestGoldenScores(t *testing.T) {
	tests := []struct {
		name      string
		board     func() *board.Block
		blob      map[board.Colour]int
		perimeter map[board.Colour]int
	}{
		{
			name:      "16x16",
			board:     boardtest.Board16x16,
			blob:      map[board.Colour]int{c0: 1, c1: 4, c2: 4, c3: 5},
			perimeter: map[board.Colour]int{c0: 2, c1: 5, c2: 4, c3: 5},
		},
		{
			name:      "2x2",
			board:     boardtest.Board2x2,
			blob:      map[board.Colour]int{c0: 1, c1: 1, c2: 1, c3: 1},
			perimeter: map[board.Colour]int{c0: 2, c1: 2, c2: 2, c3: 2},
		},
		{
			name:      "2x2 deep",
			board:     boardtest.Board2x2Deep,
			blob:      map[board.Colour]int{c0: 0, c1: 8, c2: 8, c3: 0},
			perimeter: map[board.Colour]int{c0: 0, c1: 8, c2: 8, c3: 0},
		},
		{
			name:      "8x8",
			board:     boardtest.Board8x8,
			blob:      map[board.Colour]int{c0: 12, c1: 12, c2: 4, c3: 24},
			perimeter: map[board.Colour]int{c0: 11, c1: 2, c2: 8, c3: 11},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.board()
			for colour, want := range tt.blob {
				if got := NewBlob(colour).Score(b); got != want {
					t.Errorf("blob %s = %d, want %d", colour, got, want)
				}
			}
			for colour, want := range tt.perimeter {
				if got := NewPerimeter(colour).Score(b); got != want {
					t.Errorf("perimeter %s = %d, want %d", colour, got, want)
				}
			}
		})
	}
}

func TestPerimeterSingleCell(t *testing.T) {
	leaf := boardtest.Leaf()
	if got := NewPerimeter(c0).Score(leaf); got != 4 {
		t.Errorf("1x1 matching = %d, want 4", got)
	}
	if got := NewPerimeter(c1).Score(leaf); got != 0 {
		t.Errorf("1x1 other colour = %d, want 0", got)
	}
}

func TestUniformBoard(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		b := board.New(256, depth, c2)
		side := 1 << depth
		if got := NewBlob(c2).Score(b); got != side*side {
			t.Errorf("depth %d: blob = %d, want %d", depth, got, side*side)
		}
		if got, want := NewPerimeter(c2).Score(b), 4*side; got != want {
			t.Errorf("depth %d: perimeter = %d, want %d", depth, got, want)
		}
	}
}

func TestBlobBounds(t *testing.T) {
	b := board.Generate(rand.New(rand.NewSource(11)), 640, 5, board.DefaultPalette)
	cells := 1 << (2 * b.MaxDepth())
	for _, c := range board.DefaultPalette {
		got := NewBlob(c).Score(b)
		if got < 0 || got > cells {
			t.Errorf("blob %s = %d, want within [0, %d]", c, got, cells)
		}
	}
}

func TestGoalsAreRegistered(t *testing.T) {
	for _, kind := range []string{KindBlob, KindPerimeter} {
		if !registry.Exists(kind) {
			t.Errorf("kind %q not registered", kind)
		}
		g, err := registry.Create(kind, c3)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", kind, err)
		}
		if g.Kind() != kind {
			t.Errorf("Kind() = %q, want %q", g.Kind(), kind)
		}
		if g.Colour() != c3 {
			t.Errorf("Colour() = %s, want %s", g.Colour(), c3)
		}
	}
}

func TestGenerate(t *testing.T) {
	t.Run("distinct colours same kind", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		goals, err := Generate(rng, 4, KindRandom, board.DefaultPalette)
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		seen := make(map[board.Colour]bool)
		for _, g := range goals {
			if g.Kind() != goals[0].Kind() {
				t.Errorf("mixed goal kinds %q and %q", g.Kind(), goals[0].Kind())
			}
			if seen[g.Colour()] {
				t.Errorf("colour %s used twice", g.Colour())
			}
			seen[g.Colour()] = true
		}
	})

	t.Run("explicit kind", func(t *testing.T) {
		goals, err := Generate(rand.New(rand.NewSource(1)), 2, KindBlob, board.DefaultPalette)
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		for _, g := range goals {
			if _, ok := g.(*BlobGoal); !ok {
				t.Errorf("got %T, want *BlobGoal", g)
			}
		}
	})

	t.Run("too many players", func(t *testing.T) {
		if _, err := Generate(rand.New(rand.NewSource(1)), 5, KindBlob, board.DefaultPalette); err == nil {
			t.Error("expected error for more goals than colours")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := Generate(rand.New(rand.NewSource(1)), 1, "diagonal", board.DefaultPalette); err == nil {
			t.Error("expected error for unknown kind")
		}
	})
}

package board_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/blocky/internal/board"
	"github.com/vovakirdan/blocky/internal/board/boardtest"
)

var (
	c0 = boardtest.C0
	c1 = boardtest.C1
	c2 = boardtest.C2
	c3 = boardtest.C3
)

// leafColours returns the colours of b's children; interior children
// report ok=false.
func leafColours(t *testing.T, b *board.Block) []*board.Colour {
	t.Helper()
	out := make([]*board.Colour, 0, 4)
	for _, c := range b.Children() {
		col, ok := c.Colour()
		if !ok {
			out = append(out, nil)
			continue
		}
		out = append(out, &col)
	}
	return out
}

func expectChildren(t *testing.T, b *board.Block, want ...*board.Colour) {
	t.Helper()
	got := leafColours(t, b)
	if len(got) != len(want) {
		t.Fatalf("children = %d, want %d", len(got), len(want))
	}
	for i := range want {
		switch {
		case want[i] == nil && got[i] != nil:
			t.Errorf("child %d is a leaf %s, want interior", i, got[i])
		case want[i] != nil && got[i] == nil:
			t.Errorf("child %d is interior, want %s", i, want[i])
		case want[i] != nil && *want[i] != *got[i]:
			t.Errorf("child %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func col(c board.Colour) *board.Colour { return &c }

func TestSplitLayout(t *testing.T) {
	b := boardtest.Board16x16()

	tests := []struct {
		name  string
		block *board.Block
		pos   board.Point
		size  int
		level int
	}{
		{"top right", b.Child(board.TopRight), board.Point{X: 375, Y: 0}, 375, 1},
		{"top left", b.Child(board.TopLeft), board.Point{X: 0, Y: 0}, 375, 1},
		{"bottom left", b.Child(board.BottomLeft), board.Point{X: 0, Y: 375}, 375, 1},
		{"bottom right", b.Child(board.BottomRight), board.Point{X: 375, Y: 375}, 375, 1},
		{"nested top right", b.Child(0).Child(board.TopRight), board.Point{X: 563, Y: 0}, 188, 2},
		{"nested bottom left", b.Child(0).Child(board.BottomLeft), board.Point{X: 375, Y: 188}, 188, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.block.Position() != tt.pos {
				t.Errorf("Position() = %v, want %v", tt.block.Position(), tt.pos)
			}
			if tt.block.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", tt.block.Size(), tt.size)
			}
			if tt.block.Level() != tt.level {
				t.Errorf("Level() = %d, want %d", tt.block.Level(), tt.level)
			}
			if tt.block.MaxDepth() != 2 {
				t.Errorf("MaxDepth() = %d, want 2", tt.block.MaxDepth())
			}
		})
	}
}

func TestColourOnlyOnLeaves(t *testing.T) {
	b := boardtest.Board16x16()
	if _, ok := b.Colour(); ok {
		t.Error("interior root reports a colour")
	}
	if c, ok := b.Child(board.TopLeft).Colour(); !ok || c != c2 {
		t.Errorf("top left = %v (ok=%v), want %s", c, ok, c2)
	}
	if b.Child(board.TopLeft).Child(0) != nil {
		t.Error("leaf returned a child")
	}
}

func TestSplitAtMaxDepthFails(t *testing.T) {
	b := boardtest.Leaf()
	if b.Split([4]board.Colour{c1, c1, c1, c1}) {
		t.Error("Split succeeded at max depth")
	}
	if !b.IsLeaf() {
		t.Error("block gained children")
	}
}

func TestSwap(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		b := boardtest.Board16x16()
		if !b.Swap(board.AxisHorizontal) {
			t.Fatal("Swap(0) failed")
		}
		expectChildren(t, b, col(c2), nil, col(c3), col(c1))
		expectChildren(t, b.Child(board.TopLeft), col(c0), col(c1), col(c1), col(c3))
		if got := b.Child(board.TopLeft).Position(); got != (board.Point{}) {
			t.Errorf("moved quadrant at %v, want (0,0)", got)
		}
		if got := b.Child(board.TopLeft).Child(board.TopRight).Position(); got != (board.Point{X: 188, Y: 0}) {
			t.Errorf("grandchild at %v, want (188,0)", got)
		}
	})

	t.Run("vertical", func(t *testing.T) {
		b := boardtest.Board16x16()
		if !b.Swap(board.AxisVertical) {
			t.Fatal("Swap(1) failed")
		}
		expectChildren(t, b, col(c3), col(c1), col(c2), nil)
		expectChildren(t, b.Child(board.BottomRight), col(c0), col(c1), col(c1), col(c3))
	})

	t.Run("nested", func(t *testing.T) {
		b := boardtest.Board16x16()
		if !b.Child(0).Swap(board.AxisHorizontal) {
			t.Fatal("child Swap(0) failed")
		}
		expectChildren(t, b.Child(0), col(c1), col(c0), col(c3), col(c1))
	})

	t.Run("swap then nested swap", func(t *testing.T) {
		b := boardtest.Board16x16()
		b.Swap(board.AxisHorizontal)
		if !b.Child(board.TopLeft).Swap(board.AxisVertical) {
			t.Fatal("nested Swap(1) failed")
		}
		expectChildren(t, b.Child(board.TopLeft), col(c3), col(c1), col(c1), col(c0))
	})

	t.Run("two by two", func(t *testing.T) {
		b := boardtest.Board2x2()
		b.Swap(board.AxisHorizontal)
		expectChildren(t, b, col(c2), col(c1), col(c0), col(c3))
	})

	t.Run("leaf", func(t *testing.T) {
		b := boardtest.Leaf()
		if b.Swap(board.AxisHorizontal) {
			t.Error("Swap on leaf succeeded")
		}
	})

	t.Run("bad axis", func(t *testing.T) {
		b := boardtest.Board16x16()
		if b.Swap(2) {
			t.Error("Swap(2) succeeded")
		}
		if !b.SamePlacement(boardtest.Board16x16()) {
			t.Error("failed Swap mutated the board")
		}
	})

	t.Run("twice is identity", func(t *testing.T) {
		for _, axis := range []int{board.AxisHorizontal, board.AxisVertical} {
			b := boardtest.Board8x8()
			b.Swap(axis)
			b.Swap(axis)
			if !b.SamePlacement(boardtest.Board8x8()) {
				t.Errorf("axis %d: double swap changed the board", axis)
			}
		}
	})
}

func TestRotate(t *testing.T) {
	t.Run("clockwise", func(t *testing.T) {
		b := boardtest.Board16x16()
		if !b.Child(0).Rotate(board.Clockwise) {
			t.Fatal("Rotate(1) failed")
		}
		expectChildren(t, b.Child(0), col(c1), col(c1), col(c3), col(c0))
	})

	t.Run("counter clockwise", func(t *testing.T) {
		b := boardtest.Board16x16()
		b.Child(0).Rotate(board.CounterClockwise)
		expectChildren(t, b.Child(0), col(c3), col(c0), col(c1), col(c1))
	})

	t.Run("root counter clockwise", func(t *testing.T) {
		b := boardtest.Board16x16()
		b.Rotate(board.CounterClockwise)
		expectChildren(t, b, col(c3), nil, col(c2), col(c1))
		expectChildren(t, b.Child(board.TopLeft), col(c0), col(c1), col(c1), col(c3))
		if got := b.Child(board.TopLeft).Child(board.BottomRight).Position(); got != (board.Point{X: 188, Y: 188}) {
			t.Errorf("grandchild at %v, want (188,188)", got)
		}
	})

	t.Run("four turns is identity", func(t *testing.T) {
		b := boardtest.Board8x8()
		for i := 0; i < 4; i++ {
			b.Rotate(board.Clockwise)
		}
		if !b.SamePlacement(boardtest.Board8x8()) {
			t.Error("four clockwise turns changed the board")
		}
	})

	t.Run("there and back", func(t *testing.T) {
		b := boardtest.Board8x8()
		b.Rotate(board.Clockwise)
		b.Rotate(board.CounterClockwise)
		if !b.SamePlacement(boardtest.Board8x8()) {
			t.Error("clockwise then counter clockwise changed the board")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if boardtest.Leaf().Rotate(board.Clockwise) {
			t.Error("Rotate on leaf succeeded")
		}
		if boardtest.Board2x2().Rotate(2) {
			t.Error("Rotate(2) succeeded")
		}
	})
}

func TestSmash(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("at max depth", func(t *testing.T) {
		b := boardtest.Leaf()
		if b.Smash(rng, board.DefaultPalette) {
			t.Error("Smash at max depth succeeded")
		}
		if c, ok := b.Colour(); !ok || c != c0 {
			t.Errorf("colour = %v (ok=%v), want %s", c, ok, c0)
		}
	})

	t.Run("leaf", func(t *testing.T) {
		b := boardtest.Board2x2Deep()
		target := b.Child(board.BottomLeft)
		if !target.Smash(rng, board.DefaultPalette) {
			t.Fatal("Smash failed")
		}
		if len(target.Children()) != 4 {
			t.Fatalf("children = %d, want 4", len(target.Children()))
		}
		for i, c := range target.Children() {
			colour, ok := c.Colour()
			if !ok {
				t.Errorf("child %d is not a leaf", i)
			}
			if !board.DefaultPalette.Contains(colour) {
				t.Errorf("child %d colour %s not in palette", i, colour)
			}
			if c.Level() != target.Level()+1 {
				t.Errorf("child %d level = %d, want %d", i, c.Level(), target.Level()+1)
			}
			if c.Size() != 188 {
				t.Errorf("child %d size = %d, want 188", i, c.Size())
			}
		}
	})

	t.Run("discards subtree", func(t *testing.T) {
		b := boardtest.Board16x16()
		if !b.Smash(rng, board.DefaultPalette) {
			t.Fatal("Smash failed")
		}
		for i, c := range b.Children() {
			if !c.IsLeaf() {
				t.Errorf("child %d kept its subtree", i)
			}
		}
	})

	t.Run("empty palette", func(t *testing.T) {
		b := boardtest.Board2x2()
		if b.Smash(rng, nil) {
			t.Error("Smash with empty palette succeeded")
		}
	})
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name    string
		colours [4]board.Colour
		ok      bool
		want    board.Colour
	}{
		{"unanimous", [4]board.Colour{c1, c1, c1, c1}, true, c1},
		{"three to one", [4]board.Colour{c2, c0, c2, c2}, true, c2},
		{"two to one to one", [4]board.Colour{c3, c1, c0, c1}, true, c1},
		{"two to two", [4]board.Colour{c0, c1, c1, c0}, false, board.Colour{}},
		{"all different", [4]board.Colour{c0, c1, c2, c3}, false, board.Colour{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board.New(100, 1, c0)
			b.Split(tt.colours)
			if got := b.Combine(); got != tt.ok {
				t.Fatalf("Combine() = %v, want %v", got, tt.ok)
			}
			if !tt.ok {
				if b.IsLeaf() {
					t.Error("failed Combine removed the children")
				}
				return
			}
			if c, ok := b.Colour(); !ok || c != tt.want {
				t.Errorf("colour = %v (ok=%v), want %s", c, ok, tt.want)
			}
		})
	}

	t.Run("grandchildren", func(t *testing.T) {
		if boardtest.Board16x16().Combine() {
			t.Error("Combine over an interior child succeeded")
		}
	})

	t.Run("leaf", func(t *testing.T) {
		if boardtest.Leaf().Combine() {
			t.Error("Combine on leaf succeeded")
		}
	})
}

func TestPaint(t *testing.T) {
	b := boardtest.Board2x2()
	if b.Paint(c3) {
		t.Error("Paint on interior block succeeded")
	}
	leaf := b.Child(board.TopLeft)
	if !leaf.Paint(c3) {
		t.Fatal("Paint on leaf failed")
	}
	if c, _ := leaf.Colour(); c != c3 {
		t.Errorf("colour = %s, want %s", c, c3)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	b := boardtest.Board16x16()
	cp := b.Snapshot()
	if !cp.SamePlacement(b) {
		t.Fatal("snapshot differs from original")
	}

	cp.Child(0).Child(0).Paint(c3)
	cp.Swap(board.AxisVertical)

	if !b.SamePlacement(boardtest.Board16x16()) {
		t.Error("mutating the snapshot changed the original")
	}
	if cp.Equal(b) {
		t.Error("mutated snapshot still equals original")
	}
}

func TestEqualIgnoresPosition(t *testing.T) {
	a := board.NewAt(board.Point{X: 10, Y: 10}, 100, 1, c0)
	b := board.New(100, 1, c0)
	a.Split([4]board.Colour{c0, c1, c2, c3})
	b.Split([4]board.Colour{c0, c1, c2, c3})

	if !a.Equal(b) {
		t.Error("Equal() = false for trees that differ only in position")
	}
	if a.SamePlacement(b) {
		t.Error("SamePlacement() = true for trees at different positions")
	}
}

func TestSquares(t *testing.T) {
	got := boardtest.Board16x16().Squares()
	want := []board.Square{
		{Colour: c0, Position: board.Point{X: 563, Y: 0}, Size: 188},
		{Colour: c1, Position: board.Point{X: 375, Y: 0}, Size: 188},
		{Colour: c1, Position: board.Point{X: 375, Y: 188}, Size: 188},
		{Colour: c3, Position: board.Point{X: 563, Y: 188}, Size: 188},
		{Colour: c2, Position: board.Point{X: 0, Y: 0}, Size: 375},
		{Colour: c1, Position: board.Point{X: 0, Y: 375}, Size: 375},
		{Colour: c3, Position: board.Point{X: 375, Y: 375}, Size: 375},
	}
	if len(got) != len(want) {
		t.Fatalf("Squares() returned %d squares, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("square %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGenerate(t *testing.T) {
	b1 := board.Generate(rand.New(rand.NewSource(7)), 768, 4, board.DefaultPalette)
	b2 := board.Generate(rand.New(rand.NewSource(7)), 768, 4, board.DefaultPalette)
	if !b1.SamePlacement(b2) {
		t.Error("same seed produced different boards")
	}
	if b1.IsLeaf() {
		t.Fatal("root was not subdivided")
	}
	b1.Walk(func(n *board.Block) bool {
		if n.Level() > n.MaxDepth() {
			t.Errorf("block at level %d exceeds max depth %d", n.Level(), n.MaxDepth())
		}
		if !n.IsLeaf() && len(n.Children()) != 4 {
			t.Errorf("interior block has %d children", len(n.Children()))
		}
		if c, ok := n.Colour(); ok && !board.DefaultPalette.Contains(c) {
			t.Errorf("leaf colour %s not in palette", c)
		}
		return true
	})

	if leaf := board.Generate(rand.New(rand.NewSource(7)), 64, 0, board.DefaultPalette); !leaf.IsLeaf() {
		t.Error("depth 0 board was subdivided")
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in      string
		want    board.Colour
		wantErr bool
	}{
		{"#0180b5", board.PacificPoint, false},
		{"c72c3a", board.RealRed, false},
		{" #FFD35C ", board.DaffodilDelight, false},
		{"#fff", board.Colour{}, true},
		{"#gggggg", board.Colour{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := board.ParseColour(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColour(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColour(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if got := board.OldOlive.Hex(); got != "#8a9747" {
		t.Errorf("Hex() = %q, want #8a9747", got)
	}
}

func TestParsePalette(t *testing.T) {
	p, err := board.ParsePalette([]string{"#0180b5", "#c72c3a"})
	if err != nil {
		t.Fatalf("ParsePalette() error: %v", err)
	}
	if p.Index(board.RealRed) != 1 || p.Index(board.OldOlive) != -1 {
		t.Errorf("Index() = %d, %d, want 1, -1", p.Index(board.RealRed), p.Index(board.OldOlive))
	}

	if _, err := board.ParsePalette([]string{"#0180b5", "#0180B5"}); err == nil {
		t.Error("duplicate colours accepted")
	}
	if _, err := board.ParsePalette([]string{"#0180b5", "red"}); err == nil {
		t.Error("invalid colour accepted")
	}
}

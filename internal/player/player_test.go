package player

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blocky/internal/board"
	"github.com/vovakirdan/blocky/internal/board/boardtest"
	"github.com/vovakirdan/blocky/internal/goal"
)

func TestLocate(t *testing.T) {
	b16 := boardtest.Board16x16()
	b2 := boardtest.Board2x2()
	b2deep := boardtest.Board2x2Deep()

	tests := []struct {
		name  string
		root  *board.Block
		p     Point
		level int
		want  *board.Block
	}{
		{"origin root", b16, Point{0, 0}, 0, b16},
		{"origin level 1", b16, Point{0, 0}, 1, b16.Child(board.TopLeft)},
		{"top right level 0", b16, Point{749, 0}, 0, b16},
		{"top right level 1", b16, Point{749, 0}, 1, b16.Child(board.TopRight)},
		{"top right level 2", b16, Point{749, 0}, 2, b16.Child(board.TopRight).Child(board.TopRight)},
		{"bottom left level 1", b16, Point{0, 749}, 1, b16.Child(board.BottomLeft)},
		{"bottom left shallow leaf", b16, Point{0, 749}, 2, b16.Child(board.BottomLeft)},
		{"middle", b2, Point{375, 375}, 1, b2.Child(board.BottomRight)},
		{"middle deep", b2deep, Point{375, 375}, 2, b2deep.Child(board.BottomRight)},
		{"left middle", b2deep, Point{0, 375}, 1, b2deep.Child(board.BottomLeft)},
		{"fractional", b16, Point{374.9, 374.9}, 1, b16.Child(board.TopLeft)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Locate(tt.root, tt.p, tt.level)
			require.True(t, ok)
			require.Same(t, tt.want, got)
		})
	}
}

func TestLocateOutside(t *testing.T) {
	b := boardtest.Board16x16()
	for _, p := range []Point{{-0.5, 0}, {750, 0}, {0, 750}, {750, 750}} {
		_, ok := Locate(b, p, 1)
		require.False(t, ok, "point %v", p)
	}
}

func TestApply(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	require.False(t, Apply(Move{Action: Paint}, boardtest.C0, rng, board.DefaultPalette), "nil target")

	b := boardtest.Board16x16()
	require.False(t, Apply(Move{Action: Paint, Target: b}, boardtest.C0, rng, board.DefaultPalette))
	require.True(t, Apply(PassMove(b), boardtest.C0, rng, board.DefaultPalette))
	require.True(t, b.SamePlacement(boardtest.Board16x16()), "pass changed the board")

	require.True(t, Apply(Move{Action: SwapVertical, Target: b}, boardtest.C0, rng, board.DefaultPalette))
	want := boardtest.Board16x16()
	want.Swap(board.AxisVertical)
	require.True(t, b.SamePlacement(want))

	leaf := b.Child(board.TopRight)
	require.True(t, Apply(Move{Action: Paint, Target: leaf}, boardtest.C2, rng, board.DefaultPalette))
	c, ok := leaf.Colour()
	require.True(t, ok)
	require.Equal(t, boardtest.C2, c)
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    int
		ok     bool
	}{
		{RotateClockwise, board.Clockwise, true},
		{RotateCounterClockwise, board.CounterClockwise, true},
		{SwapHorizontal, board.AxisHorizontal, true},
		{SwapVertical, board.AxisVertical, true},
		{Smash, 0, false},
		{Pass, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			dir, ok := tt.action.Direction()
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.dir, dir)
		})
	}
}

// containsNode reports whether n is a node of the tree rooted at root.
func containsNode(root, n *board.Block) bool {
	found := false
	root.Walk(func(b *board.Block) bool {
		if b == n {
			found = true
		}
		return !found
	})
	return found
}

func TestRandomMoveLeavesBoardAlone(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := board.Generate(rng, 768, 4, board.DefaultPalette)
		orig := b.Snapshot()

		m, after := RandomMove(rng, b, boardtest.C1, SearchOptions{})

		require.True(t, b.SamePlacement(orig), "seed %d: board was mutated", seed)
		require.NotNil(t, m.Target, "seed %d", seed)
		require.True(t, containsNode(b, m.Target), "seed %d: target is not a node of the board", seed)
		require.False(t, containsNode(after, m.Target), "seed %d: target belongs to the snapshot", seed)

		// Everything but smash is deterministic, so replaying the move on
		// the real board must reproduce the snapshot.
		if m.Action == Smash || m.Action == Pass {
			continue
		}
		require.True(t, Apply(m, boardtest.C1, rng, board.DefaultPalette), "seed %d: %s", seed, m)
		require.True(t, b.SamePlacement(after), "seed %d: replayed %s differs from snapshot", seed, m)
	}
}

func TestRandomMoveFallsBackToPass(t *testing.T) {
	// A single leaf at max depth only accepts paint; with one attempt per
	// search some searches must give up.
	var passes, paints int
	for seed := int64(1); seed <= 60; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := board.New(64, 0, boardtest.C0)

		m, _ := RandomMove(rng, b, boardtest.C1, SearchOptions{MaxAttempts: 1})
		require.Same(t, b, m.Target)
		switch m.Action {
		case Pass:
			passes++
		case Paint:
			paints++
		default:
			t.Fatalf("seed %d: unexpected action %s", seed, m.Action)
		}
	}
	require.Positive(t, passes)
	require.Positive(t, paints)
}

func TestGreedyMove(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := board.Generate(rng, 768, 3, board.DefaultPalette)
		g := goal.NewBlob(boardtest.C2)
		orig := b.Snapshot()

		res := GreedyMove(rng, b, g, 10, SearchOptions{})

		require.True(t, b.SamePlacement(orig), "seed %d: board was mutated", seed)
		require.Len(t, res.Trials, 10)
		require.Equal(t, g.Score(b), res.Original)
		for _, tr := range res.Trials {
			require.GreaterOrEqual(t, res.Best, tr.Score)
		}
		require.NotEmpty(t, res.BestMoves)

		if res.Best <= res.Original {
			require.Equal(t, Pass, res.Move.Action)
			require.Same(t, b, res.Move.Target)
			require.False(t, res.Improved())
			continue
		}
		require.True(t, res.Improved())
		require.Equal(t, res.BestMoves[len(res.BestMoves)-1], res.Move)

		if res.Move.Action != Smash {
			require.True(t, Apply(res.Move, g.Colour(), rng, board.DefaultPalette))
			require.Equal(t, res.Best, g.Score(b), "seed %d: replayed %s", seed, res.Move)
		}
	}
}

func TestGreedyMovePassesWithoutImprovement(t *testing.T) {
	// A uniform board already scores the maximum for its own colour.
	b := board.New(100, 1, boardtest.C0)
	g := goal.NewBlob(boardtest.C0)

	res := GreedyMove(rand.New(rand.NewSource(9)), b, g, 25, SearchOptions{})
	require.Equal(t, 4, res.Original)
	require.Equal(t, Pass, res.Move.Action)
	require.Same(t, b, res.Move.Target)
}

func TestGreedyMoveNoTrials(t *testing.T) {
	b := boardtest.Board16x16()
	res := GreedyMove(rand.New(rand.NewSource(1)), b, goal.NewPerimeter(boardtest.C1), 0, SearchOptions{})
	require.Equal(t, Pass, res.Move.Action)
	require.Equal(t, res.Original, res.Best)
	require.Empty(t, res.Trials)
}

func TestHumanPlayer(t *testing.T) {
	b := boardtest.Board16x16()
	h := NewHuman(0, goal.NewBlob(boardtest.C0), b.MaxDepth())

	_, ok := h.GenerateMove(b)
	require.False(t, ok, "move without pending action")
	require.Nil(t, h.SelectedBlock(b), "selection without pointer")

	h.ProcessEvent(Event{Kind: EventPointer, Point: Point{700, 10}})
	require.Same(t, b, h.SelectedBlock(b))

	h.ProcessEvent(Event{Kind: EventLevelUp})
	require.Equal(t, 0, h.Level(), "level went above the root")

	for i := 0; i < 5; i++ {
		h.ProcessEvent(Event{Kind: EventLevelDown})
	}
	require.Equal(t, 2, h.Level(), "level went below max depth")
	require.Same(t, b.Child(board.TopRight).Child(board.TopRight), h.SelectedBlock(b))

	h.ProcessEvent(Event{Kind: EventLevelUp})
	h.ProcessEvent(Event{Kind: EventAction, Action: RotateClockwise})
	m, ok := h.GenerateMove(b)
	require.True(t, ok)
	require.Equal(t, RotateClockwise, m.Action)
	require.Same(t, b.Child(board.TopRight), m.Target)

	_, ok = h.GenerateMove(b)
	require.False(t, ok, "pending action was not consumed")

	h.ProcessEvent(Event{Kind: EventTrigger})
	_, ok = h.GenerateMove(b)
	require.False(t, ok, "trigger produced a human move")
}

func TestComputerPlayersWaitForTrigger(t *testing.T) {
	b := boardtest.Board16x16()
	rng := rand.New(rand.NewSource(4))
	players := []Player{
		NewRandom(0, goal.NewBlob(boardtest.C0), rng, SearchOptions{}),
		NewSmart(1, goal.NewPerimeter(boardtest.C1), 3, rng, SearchOptions{}),
	}
	for _, p := range players {
		t.Run(string(p.Kind()), func(t *testing.T) {
			_, ok := p.GenerateMove(b)
			require.False(t, ok, "moved without trigger")

			p.ProcessEvent(Event{Kind: EventPointer, Point: Point{1, 1}})
			require.Nil(t, p.SelectedBlock(b))

			p.ProcessEvent(Event{Kind: EventTrigger})
			m, ok := p.GenerateMove(b)
			require.True(t, ok)
			require.NotNil(t, m.Target)

			_, ok = p.GenerateMove(b)
			require.False(t, ok, "trigger was not consumed")
		})
	}
	require.Len(t, players[1].(*SmartPlayer).LastSearch().Trials, 3)
}

func TestCreate(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	goals, err := goal.Generate(rng, 4, goal.KindBlob, board.DefaultPalette)
	require.NoError(t, err)

	players, err := Create(rng, Roster{Humans: 1, Random: 1, Smart: []int{2, 8}}, goals, 4, SearchOptions{})
	require.NoError(t, err)
	require.Len(t, players, 4)

	wantKinds := []Kind{KindHuman, KindRandom, KindSmart, KindSmart}
	for i, p := range players {
		require.Equal(t, i, p.ID())
		require.Equal(t, wantKinds[i], p.Kind())
		require.Equal(t, goals[i], p.Goal())
	}
	require.Equal(t, 2, players[2].(*SmartPlayer).Difficulty())
	require.Equal(t, 8, players[3].(*SmartPlayer).Difficulty())

	_, err = Create(rng, Roster{Humans: 3, Random: 2}, goals, 4, SearchOptions{})
	require.Error(t, err, "more players than goals")

	_, err = Create(rng, Roster{Smart: []int{0}}, goals, 4, SearchOptions{})
	require.Error(t, err, "zero difficulty")
}

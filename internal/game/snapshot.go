package game

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Moves    int
	Round    int
	Current  int
	Scores   []int
	Board    string
	LastMove string
	GameOver bool
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Moves:    g.moves,
		Round:    g.round,
		Current:  g.current,
		Scores:   g.Scores(),
		Board:    g.board.String(),
		LastMove: g.lastMove,
		GameOver: g.gameOver,
	}
}

// Package game drives a Blocky game: it owns the board, asks the current
// player for a move each tick and applies it.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blocky/internal/board"
	"github.com/vovakirdan/blocky/internal/core"
	"github.com/vovakirdan/blocky/internal/goal"
	"github.com/vovakirdan/blocky/internal/player"
	"github.com/vovakirdan/blocky/internal/storage"
)

// ErrHumanPlayers is returned by PlayOut when the game needs human input.
var ErrHumanPlayers = errors.New("game: cannot play out a game with human players")

// humanActions maps input actions to move actions.
var humanActions = []struct {
	input  core.Action
	action player.Action
}{
	{core.ActionRotateCW, player.RotateClockwise},
	{core.ActionRotateCCW, player.RotateCounterClockwise},
	{core.ActionSwapHorizontal, player.SwapHorizontal},
	{core.ActionSwapVertical, player.SwapVertical},
	{core.ActionSmash, player.Smash},
	{core.ActionCombine, player.Combine},
	{core.ActionPaint, player.Paint},
	{core.ActionPass, player.Pass},
}

// cursor is a unit cell position on the board grid.
type cursor struct {
	col, row int
}

// Game is a single Blocky game.
type Game struct {
	opts   Options
	cfg    core.RuntimeConfig
	logger *log.Logger

	rng      *rand.Rand
	board    *board.Block
	goalKind string
	players  []player.Player

	tick     uint64
	current  int // Index of the player to move
	round    int // Completed rounds
	moves    int // Moves applied
	botWait  int // Ticks the current computer player has waited
	cursor   cursor
	lastMove string
	status   string

	gameOver bool
	paused   bool

	screenW int
	screenH int
}

// New creates a game. Call Reset before stepping it.
// A nil logger discards log output.
func New(opts Options, logger *log.Logger) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts.Search.Palette = opts.palette()
	return &Game{opts: opts, logger: logger}, nil
}

// Reset starts a new game from cfg.Seed: a random board, one goal per
// player and the players themselves.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.board = board.Generate(g.rng, g.opts.Size, g.opts.MaxDepth, g.opts.Search.Palette)

	goals, err := goal.Generate(g.rng, g.opts.Roster.Total(), g.opts.GoalKind, g.opts.Search.Palette)
	if err != nil {
		return fmt.Errorf("game: cannot assign goals: %w", err)
	}
	g.goalKind = goals[0].Kind()

	g.players, err = player.Create(g.rng, g.opts.Roster, goals, g.opts.MaxDepth, g.opts.Search)
	if err != nil {
		return fmt.Errorf("game: cannot create players: %w", err)
	}

	g.tick = 0
	g.current = 0
	g.round = 0
	g.moves = 0
	g.botWait = 0
	g.cursor = cursor{}
	g.lastMove = ""
	g.status = ""
	g.gameOver = false
	g.paused = false
	g.pointCurrent()

	g.logger.Info("new game",
		"seed", cfg.Seed,
		"players", len(g.players),
		"goal", g.goalKind,
		"depth", g.opts.MaxDepth,
	)
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.gameOver {
		next := g.cfg
		next.Seed++
		if err := g.Reset(next); err != nil {
			g.logger.Error("restart failed", "err", err)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	cur := g.players[g.current]
	if cur.Kind() == player.KindHuman {
		g.handleHumanInput(cur, in)
	} else {
		g.handleComputerTurn(cur, in)
	}

	moved := false
	if m, ok := cur.GenerateMove(g.board); ok {
		moved = g.apply(cur, m)
	}
	return core.StepResult{State: g.State(), Moved: moved}
}

func (g *Game) handleHumanInput(cur player.Player, in core.InputFrame) {
	side := g.side()
	moved := false
	if in.Pointer != nil {
		if c, ok := g.screenToCell(in.Pointer.X, in.Pointer.Y); ok {
			g.cursor = c
			moved = true
		}
	}
	if in.Has(core.ActionUp) {
		g.cursor.row--
		moved = true
	}
	if in.Has(core.ActionDown) {
		g.cursor.row++
		moved = true
	}
	if in.Has(core.ActionLeft) {
		g.cursor.col--
		moved = true
	}
	if in.Has(core.ActionRight) {
		g.cursor.col++
		moved = true
	}
	if moved {
		g.cursor.col = core.Clamp(g.cursor.col, 0, side-1)
		g.cursor.row = core.Clamp(g.cursor.row, 0, side-1)
		g.pointCurrent()
	}

	if in.Has(core.ActionLevelUp) {
		cur.ProcessEvent(player.Event{Kind: player.EventLevelUp})
	}
	if in.Has(core.ActionLevelDown) {
		cur.ProcessEvent(player.Event{Kind: player.EventLevelDown})
	}
	for _, ha := range humanActions {
		if in.Has(ha.input) {
			cur.ProcessEvent(player.Event{Kind: player.EventAction, Action: ha.action})
		}
	}
}

func (g *Game) handleComputerTurn(cur player.Player, in core.InputFrame) {
	if in.Has(core.ActionTrigger) || (g.opts.AutoPlay && g.botWait >= g.opts.BotDelayTicks) {
		cur.ProcessEvent(player.Event{Kind: player.EventTrigger})
		return
	}
	g.botWait++
}

// apply performs a move for cur on the board and ends the turn. Invalid
// moves leave the turn with cur.
func (g *Game) apply(cur player.Player, m player.Move) bool {
	if !player.Apply(m, cur.Goal().Colour(), g.rng, g.opts.Search.Palette) {
		g.status = fmt.Sprintf("P%d cannot %s there", cur.ID()+1, m.Action)
		g.logger.Debug("invalid move", "player", cur.ID(), "move", m.String())
		return false
	}

	g.moves++
	g.lastMove = fmt.Sprintf("P%d %s", cur.ID()+1, m)
	g.status = ""
	g.logger.Debug("move",
		"player", cur.ID(),
		"kind", cur.Kind(),
		"move", m.String(),
		"score", cur.Goal().Score(g.board),
	)
	g.advance()
	return true
}

func (g *Game) advance() {
	g.botWait = 0
	g.current = (g.current + 1) % len(g.players)
	if g.current == 0 {
		g.round++
	}
	if g.round >= g.opts.MaxTurns {
		g.gameOver = true
		g.logger.Info("game over", "moves", g.moves, "scores", g.Scores(), "winners", g.Winners())
		return
	}
	g.pointCurrent()
}

// pointCurrent moves the current player's pointer to the cursor cell.
func (g *Game) pointCurrent() {
	if len(g.players) == 0 {
		return
	}
	g.players[g.current].ProcessEvent(player.Event{
		Kind:  player.EventPointer,
		Point: g.cellCentre(g.cursor),
	})
}

// PlayOut runs a game without human players until it is over.
func (g *Game) PlayOut(ctx context.Context) error {
	for _, p := range g.players {
		if p.Kind() == player.KindHuman {
			return ErrHumanPlayers
		}
	}

	in := core.NewInputFrame()
	in.Set(core.ActionTrigger)
	for !g.gameOver {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game: play out interrupted: %w", err)
		}
		g.Step(in)
	}
	return nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	best := 0
	for _, s := range g.Scores() {
		best = max(best, s)
	}
	return core.GameState{
		Score:    best,
		Turn:     g.moves,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *board.Block { return g.board }

// Players returns the players in turn order.
func (g *Game) Players() []player.Player { return g.players }

// Current returns the player to move.
func (g *Game) Current() player.Player { return g.players[g.current] }

// GoalKind returns the kind of goal every player was dealt.
func (g *Game) GoalKind() string { return g.goalKind }

// Scores returns each player's goal score on the current board.
func (g *Game) Scores() []int {
	scores := make([]int, len(g.players))
	for i, p := range g.players {
		scores[i] = p.Goal().Score(g.board)
	}
	return scores
}

// Winners returns the ids of the players with the highest score.
func (g *Game) Winners() []int {
	scores := g.Scores()
	best := -1
	var winners []int
	for i, s := range scores {
		switch {
		case s > best:
			best = s
			winners = []int{i}
		case s == best:
			winners = append(winners, i)
		}
	}
	return winners
}

// Record converts the game into a storage record.
func (g *Game) Record() storage.GameRecord {
	scores := g.Scores()
	winners := make(map[int]bool)
	for _, id := range g.Winners() {
		winners[id] = true
	}

	rec := storage.GameRecord{
		Seed:     g.cfg.Seed,
		Size:     g.opts.Size,
		MaxDepth: g.opts.MaxDepth,
		Turns:    g.moves,
		GoalKind: g.goalKind,
	}
	for i, p := range g.players {
		rec.Results = append(rec.Results, storage.PlayerResult{
			PlayerID:   p.ID(),
			PlayerKind: string(p.Kind()),
			GoalColour: p.Goal().Colour().Hex(),
			Score:      scores[i],
			Winner:     winners[i],
		})
	}
	return rec
}

// side returns the board edge in unit cells.
func (g *Game) side() int {
	return 1 << g.opts.MaxDepth
}

// cellCentre returns the board point at the centre of a unit cell.
func (g *Game) cellCentre(c cursor) player.Point {
	pos := g.board.Position()
	unit := float64(g.board.Size()) / float64(g.side())
	return player.Point{
		X: float64(pos.X) + (float64(c.col)+0.5)*unit,
		Y: float64(pos.Y) + (float64(c.row)+0.5)*unit,
	}
}

package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blocky/internal/board"
	"github.com/vovakirdan/blocky/internal/config"
	"github.com/vovakirdan/blocky/internal/goal"
	"github.com/vovakirdan/blocky/internal/player"
	"github.com/vovakirdan/blocky/internal/registry"
)

// Options define a game.
type Options struct {
	Size     int
	MaxDepth int
	Roster   player.Roster
	GoalKind string // registered kind or goal.KindRandom

	MaxTurns      int // Rounds; every player moves once per round
	AutoPlay      bool
	BotDelayTicks int

	Search player.SearchOptions // Search.Palette is the game palette
}

// OptionsFromConfig validates cfg and converts it to game options.
func OptionsFromConfig(cfg config.BlockyConfig) (Options, error) {
	if err := cfg.Validate(); err != nil {
		return Options{}, err
	}
	palette, err := cfg.ParsePalette()
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		Size:     cfg.Board.Size,
		MaxDepth: cfg.Board.MaxDepth,
		Roster: player.Roster{
			Humans: cfg.Players.Humans,
			Random: cfg.Players.Random,
			Smart:  append([]int(nil), cfg.Players.Smart...),
		},
		GoalKind:      cfg.Goal.Kind,
		MaxTurns:      cfg.Game.MaxTurns,
		AutoPlay:      cfg.Game.AutoPlay,
		BotDelayTicks: cfg.Game.BotDelayTicks,
		Search: player.SearchOptions{
			MaxAttempts: cfg.Search.MaxAttempts,
			Palette:     palette,
		},
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// DefaultOptions returns the options of the built-in configuration.
func DefaultOptions() Options {
	opts, err := OptionsFromConfig(config.DefaultBlockyConfig())
	if err != nil {
		panic(fmt.Sprintf("game: default configuration is invalid: %v", err))
	}
	return opts
}

// Validate checks options that config validation cannot, such as the
// goal kind, which depends on registered goals.
func (o Options) Validate() error {
	var errs []error
	if o.MaxDepth < 0 || o.Size < 1<<max(o.MaxDepth, 0) {
		errs = append(errs, fmt.Errorf("board of size %d cannot reach depth %d", o.Size, o.MaxDepth))
	}
	if o.Roster.Total() == 0 {
		errs = append(errs, errors.New("no players"))
	}
	if n, p := o.Roster.Total(), len(o.palette()); n > p {
		errs = append(errs, fmt.Errorf("%d players but only %d colours", n, p))
	}
	if o.GoalKind != "" && o.GoalKind != goal.KindRandom && !registry.Exists(o.GoalKind) {
		errs = append(errs, fmt.Errorf("unknown goal kind %q (known: %v)", o.GoalKind, registry.Kinds()))
	}
	if o.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("max turns must be positive, got %d", o.MaxTurns))
	}
	if len(errs) > 0 {
		return fmt.Errorf("game: invalid options: %w", errors.Join(errs...))
	}
	return nil
}

func (o Options) palette() board.Palette {
	if len(o.Search.Palette) == 0 {
		return board.DefaultPalette
	}
	return o.Search.Palette
}

// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for Blocky.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blocky/internal/board"
)

// BlockyConfig contains all configuration for a Blocky game.
type BlockyConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Players PlayersConfig `yaml:"players"`
	Goal    GoalConfig    `yaml:"goal"`
	Game    GameConfig    `yaml:"game"`
	Search  SearchConfig  `yaml:"search"`
	Palette []string      `yaml:"palette"` // "#rrggbb" colours
}

// BoardConfig defines the board geometry.
type BoardConfig struct {
	Size     int `yaml:"size"`      // Edge length in pixels
	MaxDepth int `yaml:"max_depth"` // Deepest level a block may reach
}

// PlayersConfig defines who plays, in turn order: humans, random, smart.
type PlayersConfig struct {
	Humans int   `yaml:"humans"`
	Random int   `yaml:"random"`
	Smart  []int `yaml:"smart"` // One difficulty (candidate moves per turn) per smart player
}

// Total returns the number of players.
func (p PlayersConfig) Total() int {
	return p.Humans + p.Random + len(p.Smart)
}

// GoalConfig selects the goal kind shared by all players.
type GoalConfig struct {
	Kind string `yaml:"kind"` // "perimeter", "blob" or "random"
}

// GameConfig defines turn flow.
type GameConfig struct {
	MaxTurns      int  `yaml:"max_turns"`       // Rounds; every player moves once per round
	AutoPlay      bool `yaml:"auto_play"`       // Computer players move without a trigger
	BotDelayTicks int  `yaml:"bot_delay_ticks"` // Ticks a computer player waits before auto-moving
}

// SearchConfig tunes computer player move search.
type SearchConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Random tries before a computer player passes
}

// ParsePalette returns the configured palette.
func (c BlockyConfig) ParsePalette() (board.Palette, error) {
	p, err := board.ParsePalette(c.Palette)
	if err != nil {
		return nil, fmt.Errorf("config: palette: %w", err)
	}
	return p, nil
}

// Validate checks the configuration for values the game cannot run with.
// All problems are reported together.
func (c BlockyConfig) Validate() error {
	var errs []error

	if c.Board.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("board.max_depth must be >= 0, got %d", c.Board.MaxDepth))
	}
	if c.Board.MaxDepth > 10 {
		errs = append(errs, fmt.Errorf("board.max_depth must be <= 10, got %d", c.Board.MaxDepth))
	}
	if c.Board.MaxDepth >= 0 && c.Board.MaxDepth <= 10 && c.Board.Size < 1<<c.Board.MaxDepth {
		errs = append(errs, fmt.Errorf("board.size %d is smaller than 2^max_depth (%d)", c.Board.Size, 1<<c.Board.MaxDepth))
	}

	if c.Players.Humans < 0 || c.Players.Random < 0 {
		errs = append(errs, errors.New("players: counts must be >= 0"))
	}
	if c.Players.Total() == 0 {
		errs = append(errs, errors.New("players: at least one player is required"))
	}
	for i, d := range c.Players.Smart {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("players.smart[%d]: difficulty must be > 0, got %d", i, d))
		}
	}

	if c.Goal.Kind == "" {
		errs = append(errs, errors.New("goal.kind must be set"))
	}

	if c.Game.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("game.max_turns must be > 0, got %d", c.Game.MaxTurns))
	}
	if c.Game.BotDelayTicks < 0 {
		errs = append(errs, fmt.Errorf("game.bot_delay_ticks must be >= 0, got %d", c.Game.BotDelayTicks))
	}
	if c.Search.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("search.max_attempts must be >= 0, got %d", c.Search.MaxAttempts))
	}

	palette, err := board.ParsePalette(c.Palette)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("palette: %w", err))
	case len(palette) == 0:
		errs = append(errs, errors.New("palette must not be empty"))
	case c.Players.Total() > len(palette):
		errs = append(errs, fmt.Errorf("palette has %d colours but %d players need distinct goal colours",
			len(palette), c.Players.Total()))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// SizeIsExact reports whether the board size halves evenly down to the
// maximum depth. Other sizes still play, but neighbouring leaves may
// overlap by a pixel.
func (c BlockyConfig) SizeIsExact() bool {
	if c.Board.MaxDepth < 0 || c.Board.MaxDepth > 30 {
		return false
	}
	return c.Board.Size%(1<<c.Board.MaxDepth) == 0
}

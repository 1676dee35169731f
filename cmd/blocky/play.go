package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blocky/internal/core"
	"github.com/vovakirdan/blocky/internal/platform/tui"
	"github.com/vovakirdan/blocky/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the terminal. Players take turns in order: humans first,
then random players, then smart players.

Controls:
  Arrows/WASD, mouse  - Move the cursor
  [ / ]               - Select a bigger / smaller block
  E / Q               - Rotate clockwise / counter-clockwise
  H / V               - Swap left-right / top-bottom
  X                   - Smash
  C                   - Combine
  F                   - Paint
  Tab                 - Pass
  Space, click        - Let a computer player move
  P                   - Pause
  R                   - New game (after game over)
  ?                   - Show all keys
  Esc/Ctrl+C          - Quit

Difficulty options (smart players):
  easy   - Each smart player tries 1 move per turn
  normal - 5 moves per turn
  hard   - 25 moves per turn
  fixed  - Use the difficulties from the config

Examples:
  blocky play
  blocky play --humans 2 --random 0 --smart 0
  blocky play --difficulty hard --goal perimeter
  blocky play --config ./my-blocky.yaml --log /tmp/blocky.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write log messages to this file")
}

func runPlay(cmd *cobra.Command, _ []string) {
	opts, err := loadOptions(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The game owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "blocky")

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(opts, store, logger, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

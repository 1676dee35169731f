// blocky is a terminal version of Blocky, a game played on a recursively
// subdivided board of coloured blocks.
//
// Usage:
//
//	blocky play              - Play a game in the terminal
//	blocky sim               - Play computer-only games without a UI
//	blocky goals             - List the goal kinds
//	blocky scores            - Show the best stored results
//	blocky serve             - Start an SSH server hosting games
//	blocky config            - Print the default configuration
//
// Global flags:
//
//	--seed <value>       - RNG seed for a reproducible game (0 = time based)
//	--db <path>          - Results database (default: ~/.blocky/results.db)
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Smart player preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocky/internal/config"
	"github.com/vovakirdan/blocky/internal/game"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool

	// Game overrides
	flagDepth  int
	flagGoal   string
	flagTurns  int
	flagHumans int
	flagRandom int
	flagSmart  []int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocky",
	Short: "Blocky - a board of nested coloured blocks",
	Long: `Blocky is a turn-based game on a square board that is recursively
divided into four quadrants. Each player has a secret goal colour and
scores by the blob it forms or by how much of the board's edge it covers.
Players rotate, swap, smash, combine and paint blocks to raise their score.

Available commands:
  play    - Play a game in the terminal
  sim     - Play computer-only games and record the results
  goals   - List the goal kinds
  scores  - Show the best stored results
  serve   - Start an SSH server for remote play
  config  - Print or check the configuration

Examples:
  blocky play
  blocky play --depth 3 --smart 5,25 --goal blob
  blocky sim --games 100 --random 2 --smart 1,5
  blocky scores --goal perimeter
  blocky serve --ssh :2222`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.blocky/results.db", "Path to results database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Smart player preset: easy, normal, hard, fixed")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	pf.IntVar(&flagDepth, "depth", 0, "Maximum board depth")
	pf.StringVar(&flagGoal, "goal", "", "Goal kind: blob, perimeter or random")
	pf.IntVar(&flagTurns, "turns", 0, "Rounds to play")
	pf.IntVar(&flagHumans, "humans", 0, "Number of human players")
	pf.IntVar(&flagRandom, "random", 0, "Number of random players")
	pf.IntSliceVar(&flagSmart, "smart", nil, "Difficulty of each smart player, e.g. 5,25")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadOptions builds game options from the config file, the difficulty
// preset and any override flags the user set.
func loadOptions(cmd *cobra.Command) (game.Options, error) {
	cfg, err := config.LoadBlocky(flagConfig)
	if err != nil {
		return game.Options{}, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return game.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("depth") {
		cfg.Board.MaxDepth = flagDepth
	}
	if flags.Changed("goal") {
		cfg.Goal.Kind = flagGoal
	}
	if flags.Changed("turns") {
		cfg.Game.MaxTurns = flagTurns
	}
	if flags.Changed("humans") {
		cfg.Players.Humans = flagHumans
	}
	if flags.Changed("random") {
		cfg.Players.Random = flagRandom
	}
	if flags.Changed("smart") {
		cfg.Players.Smart = flagSmart
	}
	config.ApplyBlockyPreset(&cfg, preset)

	if !cfg.SizeIsExact() {
		fmt.Fprintf(os.Stderr, "Warning: board size %d does not halve evenly to depth %d\n",
			cfg.Board.Size, cfg.Board.MaxDepth)
	}
	return game.OptionsFromConfig(cfg)
}

// newLogger returns a logger writing to w, at debug level with --verbose.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

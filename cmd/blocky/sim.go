package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocky/internal/game"
	"github.com/vovakirdan/blocky/internal/storage"
)

var (
	flagGames   int
	flagWorkers int
	flagNoSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play computer-only games without a UI",
	Long: `Play games between computer players and print the results.
Human seats from the config are taken by random players.

Game i uses seed --seed + i, so a run with a fixed --seed is reproducible.
Results are stored in the results database unless --no-save is given.

Examples:
  blocky sim
  blocky sim --games 50 --random 1 --smart 1,5,25
  blocky sim --games 200 --workers 4 --goal blob --seed 7 --no-save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVarP(&flagGames, "games", "n", 1, "Number of games to play")
	simCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Games played at once (0 = one per CPU)")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not store the results")
}

func runSim(cmd *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "blocky-sim")

	opts, err := loadOptions(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagGames <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --games must be positive")
		os.Exit(1)
	}

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}
	seeds := make([]int64, flagGames)
	for i := range seeds {
		seeds[i] = base + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	records, err := game.Simulate(ctx, opts, seeds, flagWorkers, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("simulation finished", "games", len(records), "elapsed", time.Since(start).Round(time.Millisecond))

	printRecords(records)

	if flagNoSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return
	}
	defer store.Close()
	for _, rec := range records {
		if _, err := store.SaveGame(rec); err != nil {
			logger.Warn("could not save game", "seed", rec.Seed, "err", err)
		}
	}
}

// printRecords prints one line per game and a per-seat summary.
func printRecords(records []storage.GameRecord) {
	if len(records) == 0 {
		return
	}
	seats := len(records[0].Results)

	fmt.Printf("  %-20s  %-10s", "Seed", "Goal")
	for i := 0; i < seats; i++ {
		fmt.Printf("  %8s", fmt.Sprintf("P%d", i+1))
	}
	fmt.Println()
	fmt.Printf("  %-20s  %-10s%s\n", "----", "----", strings.Repeat("  --------", seats))

	wins := make([]int, seats)
	totals := make([]int, seats)
	for _, rec := range records {
		fmt.Printf("  %-20d  %-10s", rec.Seed, rec.GoalKind)
		for i, r := range rec.Results {
			mark := " "
			if r.Winner {
				mark = "*"
				wins[i]++
			}
			totals[i] += r.Score
			fmt.Printf("  %7d%s", r.Score, mark)
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Printf("  %-5s  %-8s  %6s  %9s\n", "Seat", "Player", "Wins", "Avg score")
	for i, r := range records[0].Results {
		fmt.Printf("  P%-4d  %-8s  %6d  %9.1f\n",
			i+1, r.PlayerKind, wins[i], float64(totals[i])/float64(len(records)))
	}
	fmt.Println()
	fmt.Println("* winner (ties share the win)")
}

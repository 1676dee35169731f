package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blocky/internal/platform/tui"
	"github.com/vovakirdan/blocky/internal/registry"
	"github.com/vovakirdan/blocky/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagClear       bool
	flagRecent      int
	flagGameID      string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best stored results",
	Long: `Display the best player results for each goal kind, followed by
statistics per player kind. --goal limits the output to one goal kind.

Examples:
  blocky scores
  blocky scores --goal blob --limit 20
  blocky scores -i
  blocky scores --recent 5
  blocky scores --game 3f2c9a1e-...
  blocky scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Results per goal kind")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the results in the terminal UI")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored results")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Show the most recent games instead")
	scoresCmd.Flags().StringVar(&flagGameID, "game", "", "Show one game by ID")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagGoal != "" && !registry.Exists(flagGoal) {
		fmt.Fprintf(os.Stderr, "Error: unknown goal kind %q\n", flagGoal)
		fmt.Fprintln(os.Stderr, "Run 'blocky goals' to see the goal kinds.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearGames(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			return
		}
		fmt.Println("All results deleted.")
		return
	}

	switch {
	case flagGameID != "":
		rec, err := store.Game(flagGameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving game: %v\n", err)
			return
		}
		if rec == nil {
			fmt.Fprintf(os.Stderr, "No game with ID %q\n", flagGameID)
			os.Exit(1)
		}
		printGame(*rec)
		return
	case flagRecent > 0:
		games, err := store.RecentGames(flagRecent)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
			return
		}
		if len(games) == 0 {
			fmt.Println("No games recorded yet.")
		}
		for _, rec := range games {
			printGame(rec)
		}
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunResults(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	for _, g := range registry.List() {
		if flagGoal != "" && g.Kind != flagGoal {
			continue
		}
		if err := printTopResults(store, g); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
			return
		}
	}

	stats, err := store.PlayerKindStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		return
	}
	if len(stats) == 0 {
		return
	}
	fmt.Println("Player kinds")
	fmt.Println()
	fmt.Printf("  %-8s  %6s  %6s  %6s  %9s\n", "Player", "Games", "Wins", "Best", "Avg score")
	for _, s := range stats {
		fmt.Printf("  %-8s  %6d  %6d  %6d  %9.1f\n", s.PlayerKind, s.Games, s.Wins, s.BestScore, s.AvgScore)
	}
}

func printTopResults(store *storage.Store, g registry.GoalInfo) error {
	entries, err := store.TopResults(g.Kind, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best results - %s\n", g.Title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("  No games recorded yet.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-8s  %-7s  %s\n", "Rank", "Score", "Player", "Colour", "When")
	fmt.Printf("  %-4s  %-7s  %-8s  %-7s  %s\n", "----", "-----", "------", "------", "----")
	for i, e := range entries {
		score := fmt.Sprintf("%d", e.Score)
		if e.Winner {
			score += "*"
		}
		fmt.Printf("  %-4d  %-7s  %-8s  %-7s  %s\n",
			i+1, score, e.PlayerKind, e.GoalColour, humanize.Time(e.CreatedAt))
	}
	fmt.Println()
	return nil
}

// printGame prints a stored game with its player results.
func printGame(rec storage.GameRecord) {
	fmt.Printf("Game %s (%s)\n", rec.ID, humanize.Time(rec.CreatedAt))
	fmt.Printf("  seed %d, size %d, depth %d, goal %s, %d moves\n",
		rec.Seed, rec.Size, rec.MaxDepth, rec.GoalKind, rec.Turns)
	for _, r := range rec.Results {
		mark := ""
		if r.Winner {
			mark = "  winner"
		}
		fmt.Printf("  P%-3d %-8s %-8s %6d%s\n", r.PlayerID+1, r.PlayerKind, r.GoalColour, r.Score, mark)
	}
	fmt.Println()
}

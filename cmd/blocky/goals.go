package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocky/internal/board"
	"github.com/vovakirdan/blocky/internal/goal"
	"github.com/vovakirdan/blocky/internal/registry"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List the goal kinds",
	Long:  `Shows the goal kinds a game can deal to its players.`,
	Args:  cobra.NoArgs,
	Run:   runGoals,
}

func runGoals(_ *cobra.Command, _ []string) {
	goals := registry.List()

	if len(goals) == 0 {
		fmt.Println("No goals available.")
		return
	}

	fmt.Println("Goal kinds:")
	fmt.Println()

	maxKindLen := len(goal.KindRandom)
	for _, g := range goals {
		maxKindLen = max(maxKindLen, len(g.Kind))
	}

	for _, g := range goals {
		fmt.Printf("  %-*s  %s\n", maxKindLen, g.Kind, g.Title)
		if sample, err := registry.Create(g.Kind, board.PacificPoint); err == nil {
			fmt.Printf("  %-*s  %s\n", maxKindLen, "", sample.Description())
		}
	}
	fmt.Printf("  %-*s  %s\n", maxKindLen, goal.KindRandom, "One of the above, chosen per game")

	fmt.Println()
	fmt.Println("Run 'blocky play --goal <kind>' to play with a goal kind.")
}

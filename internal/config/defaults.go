package config

import (
	_ "embed"
)

//go:embed defaults/blocky.yaml
var defaultBlockyYAML []byte

// DefaultBlockyConfig returns the built-in Blocky configuration.
func DefaultBlockyConfig() BlockyConfig {
	return BlockyConfig{
		Board: BoardConfig{
			Size:     768,
			MaxDepth: 4,
		},
		Players: PlayersConfig{
			Humans: 1,
			Random: 1,
			Smart:  []int{5},
		},
		Goal: GoalConfig{
			Kind: "random",
		},
		Game: GameConfig{
			MaxTurns:      10,
			AutoPlay:      true,
			BotDelayTicks: 20,
		},
		Search: SearchConfig{
			MaxAttempts: 1000,
		},
		Palette: []string{"#0180b5", "#c72c3a", "#8a9747", "#ffd35c"},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBlockyYAML
}

package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a flag value to a preset.
// An empty string selects DifficultyFixed (use the configured values).
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// SmartDifficultyForPreset returns how many candidate moves a smart player
// evaluates per turn under a preset.
func SmartDifficultyForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 25
	default:
		return 5
	}
}

// IsFixedPreset returns true if the preset keeps the configured difficulties.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

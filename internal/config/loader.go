package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlocky loads the Blocky configuration.
// Search order: customPath -> ~/.blocky/configs/blocky.yaml -> ./configs/blocky.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it changes.
func LoadBlocky(customPath string) (BlockyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlockyConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BlockyConfig{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blocky.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "blocky.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBlockyYAML)
	if err != nil {
		return DefaultBlockyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the built-in defaults.
func parse(data []byte) (BlockyConfig, error) {
	cfg := DefaultBlockyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlockyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocky", "configs", filename)
}

// ApplyBlockyPreset sets every smart player's difficulty from a preset.
// The fixed preset keeps the configured difficulties.
func ApplyBlockyPreset(cfg *BlockyConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		return
	}
	d := SmartDifficultyForPreset(preset)
	for i := range cfg.Players.Smart {
		cfg.Players.Smart[i] = d
	}

	switch preset {
	case DifficultyEasy:
		cfg.Game.BotDelayTicks = 30
	case DifficultyHard:
		cfg.Game.BotDelayTicks = 10
	}
}

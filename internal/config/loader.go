package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPursuit loads pursuit configuration. Keys missing from a file keep
// their default values.
// Search order: customPath -> ~/.pursuit/configs/pursuit.yaml -> ./configs/pursuit.yaml -> embedded default
func LoadPursuit(customPath string) (PursuitConfig, error) {
	cfg := DefaultPursuitConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pursuit.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultPursuitConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pursuit.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultPursuitConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPursuitYAML, &cfg); err != nil {
		return DefaultPursuitConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pursuit", "configs", filename)
}

// ApplyPursuitPreset modifies the config based on a difficulty preset.
func ApplyPursuitPreset(cfg *PursuitConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Ghosts.BaseSpeed *= 0.75
		cfg.Difficulty.SpeedIncrement = 0.1
		cfg.Difficulty.FireUnlockScore = 3
		cfg.Projectiles.FireChance /= 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Ghosts.BaseSpeed *= 1.5
		cfg.Difficulty.SpeedIncrement = 0.25
		cfg.Difficulty.FireUnlockScore = 1
		cfg.Projectiles.FireChance *= 2
	}
}

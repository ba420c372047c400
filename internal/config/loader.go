package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMemerun loads Meme Run configuration.
// Search order: customPath -> ~/.memerun/configs/memerun.yaml -> ./configs/memerun.yaml -> embedded default
func LoadMemerun(customPath string) (MemerunConfig, error) {
	// Files overlay the defaults so a partial YAML only overrides what it names.
	cfg := DefaultMemerunConfig()

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

	if userCfgPath := userConfigPath("memerun.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultMemerunConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/memerun.yaml"); err == nil {
		candidate := DefaultMemerunConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	candidate := DefaultMemerunConfig()
	if err := yaml.Unmarshal(defaultMemerunYAML, &candidate); err != nil {
		return DefaultMemerunConfig(), nil // Fallback to hardcoded if embed fails
	}
	return candidate, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memerun", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *MemerunConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.LevelIntervalMs = IntervalForPreset(preset)
	}
}

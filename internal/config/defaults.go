package config

import (
	_ "embed"
)

//go:embed defaults/memerun.yaml
var defaultMemerunYAML []byte

// DefaultMemerunConfig returns the built-in Meme Run configuration.
// It mirrors defaults/memerun.yaml and is used if the embedded file is unreadable.
func DefaultMemerunConfig() MemerunConfig {
	return MemerunConfig{
		Field: FieldConfig{
			Width:       800,
			Height:      450,
			EdgeBuffer:  20,
			SpawnDepth:  120,
			ScrollSpeed: 4,
		},
		Player: PlayerConfig{
			X:      100,
			Width:  50,
			Height: 50,
			Step:   12,
		},
		Obstacles: ObstacleConfig{
			MinSpacing:   50,
			TokenMargin:  70,
			MaxDimension: 90,
			Attempts:     20,
			JitterStep:   12,
			Sizes: map[string]SizeWH{
				"rug":   {Width: 60, Height: 40},
				"fud":   {Width: 50, Height: 50},
				"bear":  {Width: 70, Height: 60},
				"paper": {Width: 40, Height: 55},
				"scam":  {Width: 55, Height: 45},
			},
		},
		Tokens: TokenConfig{
			Size:           40,
			Value:          10,
			ObstacleMargin: 90,
			TokenMargin:    50,
			LookAhead:      150,
			LookAheadPad:   30,
			Attempts:       15,
			JitterStep:     10,
		},
		Patterns: PatternConfig{
			SwitchEveryMs:      20000,
			RandomCooldownMs:   500,
			WaveCooldownMs:     1000,
			CorridorCooldownMs: 800,
			ClusterCooldownMs:  1200,
			WaveHeight:         150,
			WaveFrequency:      0.3,
			CorridorBaseGap:    80,
			CorridorGapStep:    20,
			ClusterSpacing:     110,
			ClusterJitter:      30,
			ClusterMax:         3,
		},
		Session: SessionConfig{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			StartLevel:      1,
			MaxLevel:        10,
			LevelIntervalMs: 15000,
			Scaling: Scaling{
				ObstacleChanceBase: 0.008,
				ObstacleChanceStep: 0.003,
				TokenChanceBase:    0.015,
				TokenChanceStep:    0.002,
				MaxObstaclesBase:   8,
				MaxTokensBase:      6,
				SizeGrowthPerLevel: 0.05,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMemerunYAML
}

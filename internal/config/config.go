// Package config provides YAML-based game configuration loading and
// difficulty management for memerun.
package config

// MemerunConfig contains all configuration for the Meme Run game.
type MemerunConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Tokens     TokenConfig      `yaml:"tokens"`
	Patterns   PatternConfig    `yaml:"patterns"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playfield in world units.
type FieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	EdgeBuffer  float64 `yaml:"edge_buffer"`  // Keep-out band along the top and bottom
	SpawnDepth  float64 `yaml:"spawn_depth"`  // Width of the off-screen spawn band
	ScrollSpeed float64 `yaml:"scroll_speed"` // Units per tick every entity moves left
}

// PlayerConfig defines the player hitbox and movement.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"` // Units moved per directional input
}

// ObstacleConfig defines obstacle sizing and spacing.
type ObstacleConfig struct {
	MinSpacing   float64           `yaml:"min_spacing"`   // Floor for obstacle-obstacle margin
	TokenMargin  float64           `yaml:"token_margin"`  // Obstacle vs existing tokens
	MaxDimension float64           `yaml:"max_dimension"` // Cap after size scaling
	Attempts     int               `yaml:"attempts"`      // Placement attempts
	JitterStep   float64           `yaml:"jitter_step"`   // Search radius growth per attempt
	Sizes        map[string]SizeWH `yaml:"sizes"`         // Base size per obstacle type
}

// SizeWH is a width/height pair.
type SizeWH struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TokenConfig defines collectible sizing and spacing.
type TokenConfig struct {
	Size           float64 `yaml:"size"`
	Value          int     `yaml:"value"`
	ObstacleMargin float64 `yaml:"obstacle_margin"` // Token vs existing obstacles
	TokenMargin    float64 `yaml:"token_margin"`    // Token vs existing tokens
	LookAhead      float64 `yaml:"look_ahead"`      // Obstacles further right than this are checked for alignment
	LookAheadPad   float64 `yaml:"look_ahead_pad"`  // Extra vertical clearance for the look-ahead check
	Attempts       int     `yaml:"attempts"`
	JitterStep     float64 `yaml:"jitter_step"`
}

// PatternConfig defines spawning pattern parameters. Cooldowns are in milliseconds.
type PatternConfig struct {
	SwitchEveryMs      int     `yaml:"switch_every_ms"`
	RandomCooldownMs   int     `yaml:"random_cooldown_ms"`
	WaveCooldownMs     int     `yaml:"wave_cooldown_ms"`
	CorridorCooldownMs int     `yaml:"corridor_cooldown_ms"`
	ClusterCooldownMs  int     `yaml:"cluster_cooldown_ms"`
	WaveHeight         float64 `yaml:"wave_height"`
	WaveFrequency      float64 `yaml:"wave_frequency"`
	CorridorBaseGap    float64 `yaml:"corridor_base_gap"`
	CorridorGapStep    float64 `yaml:"corridor_gap_step"`
	ClusterSpacing     float64 `yaml:"cluster_spacing"`
	ClusterJitter      float64 `yaml:"cluster_jitter"`
	ClusterMax         int     `yaml:"cluster_max"`
}

// SessionConfig defines session rules.
type SessionConfig struct {
	Lives int `yaml:"lives"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	StartLevel      int     `yaml:"start_level"`
	MaxLevel        int     `yaml:"max_level"`
	LevelIntervalMs int     `yaml:"level_interval_ms"`
	Scaling         Scaling `yaml:"scaling"`
}

// Scaling defines how derived spawn values grow with level.
type Scaling struct {
	ObstacleChanceBase float64 `yaml:"obstacle_chance_base"`
	ObstacleChanceStep float64 `yaml:"obstacle_chance_step"`
	TokenChanceBase    float64 `yaml:"token_chance_base"`
	TokenChanceStep    float64 `yaml:"token_chance_step"`
	MaxObstaclesBase   int     `yaml:"max_obstacles_base"`
	MaxTokensBase      int     `yaml:"max_tokens_base"`
	SizeGrowthPerLevel float64 `yaml:"size_growth_per_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IntervalForPreset returns the level interval in milliseconds for a preset.
func IntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 20000
	case DifficultyHard:
		return 10000
	default:
		return 15000
	}
}

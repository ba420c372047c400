package config

import (
	"math"
	"time"
)

// Difficulty maps elapsed session time to an integer level and derives the
// spawn parameters that depend on it. Level never decreases as time grows.
type Difficulty struct {
	cfg DifficultyConfig
}

// NewDifficulty creates a difficulty controller. Zero values in cfg fall back
// to the stock progression (levels 1..10, one level per 15 seconds).
func NewDifficulty(cfg DifficultyConfig) *Difficulty {
	if cfg.StartLevel < 1 {
		cfg.StartLevel = 1
	}
	if cfg.MaxLevel < cfg.StartLevel {
		cfg.MaxLevel = 10
	}
	if cfg.LevelIntervalMs <= 0 {
		cfg.LevelIntervalMs = 15000
	}
	return &Difficulty{cfg: cfg}
}

// MaxLevel returns the level cap.
func (d *Difficulty) MaxLevel() int {
	return d.cfg.MaxLevel
}

// Level returns the difficulty level for the given elapsed session time:
// start + floor(elapsed / interval), clamped to [1, MaxLevel].
func (d *Difficulty) Level(elapsed time.Duration) int {
	if !d.cfg.Enabled || elapsed < 0 {
		return clampLevel(d.cfg.StartLevel, d.cfg.MaxLevel)
	}
	steps := int(elapsed.Milliseconds() / int64(d.cfg.LevelIntervalMs))
	return clampLevel(d.cfg.StartLevel+steps, d.cfg.MaxLevel)
}

// ObstacleChance returns the per-tick probability of an obstacle spawn attempt.
func (d *Difficulty) ObstacleChance(level int) float64 {
	s := d.cfg.Scaling
	return s.ObstacleChanceBase + float64(level)*s.ObstacleChanceStep
}

// TokenChance returns the per-tick probability of a token spawn attempt.
func (d *Difficulty) TokenChance(level int) float64 {
	s := d.cfg.Scaling
	return s.TokenChanceBase + float64(level)*s.TokenChanceStep
}

// MaxObstacles returns the concurrent obstacle cap for a level.
func (d *Difficulty) MaxObstacles(level int) int {
	return d.cfg.Scaling.MaxObstaclesBase + level
}

// MaxTokens returns the concurrent token cap for a level.
func (d *Difficulty) MaxTokens(level int) int {
	return d.cfg.Scaling.MaxTokensBase + level/2
}

// SizeMultiplier returns the obstacle size multiplier for a level.
func (d *Difficulty) SizeMultiplier(level int) float64 {
	return 1 + float64(level-1)*d.cfg.Scaling.SizeGrowthPerLevel
}

// ScaleDim scales a base dimension for a level without exceeding limit.
func (d *Difficulty) ScaleDim(base float64, level int, limit float64) float64 {
	return math.Min(base*d.SizeMultiplier(level), limit)
}

func clampLevel(level, maxLevel int) int {
	if level < 1 {
		return 1
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}

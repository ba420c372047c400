package memerun

import (
	"math"

	"github.com/vovakirdan/memerun/internal/config"
	"github.com/vovakirdan/memerun/internal/core"
)

// Region bounds where a placed box may sit. The whole box must fit inside.
type Region struct {
	Left, Top, Right, Bottom float64
}

// clamp moves b so it lies within the region. Boxes larger than the region
// are pinned to its top-left corner.
func (r Region) clamp(b core.Box) core.Box {
	b.X = core.ClampF(b.X, r.Left, r.Right-b.W)
	b.Y = core.ClampF(b.Y, r.Top, r.Bottom-b.H)
	return b
}

// PlacementRequest describes one spawn attempt. Obstacles and Tokens are
// snapshots of everything already on the field plus anything placed earlier
// in the same tick.
type PlacementRequest struct {
	Kind      EntityKind
	Proposed  core.Box
	Obstacles []core.Box
	Tokens    []core.Box
	Region    Region
}

// PlacementRules are the spacing constraints the solver enforces.
type PlacementRules struct {
	ObstacleMinSpacing  float64 // floor for obstacle vs obstacle margin
	ObstacleTokenMargin float64 // obstacle candidate vs tokens
	TokenObstacleMargin float64 // token candidate vs obstacles
	TokenTokenMargin    float64 // token candidate vs tokens
	LookAhead           float64
	LookAheadPad        float64
	ObstacleAttempts    int
	TokenAttempts       int
	ObstacleJitter      float64
	TokenJitter         float64
}

// RulesFromConfig extracts placement rules from the game config.
func RulesFromConfig(cfg config.MemerunConfig) PlacementRules {
	return PlacementRules{
		ObstacleMinSpacing:  cfg.Obstacles.MinSpacing,
		ObstacleTokenMargin: cfg.Obstacles.TokenMargin,
		TokenObstacleMargin: cfg.Tokens.ObstacleMargin,
		TokenTokenMargin:    cfg.Tokens.TokenMargin,
		LookAhead:           cfg.Tokens.LookAhead,
		LookAheadPad:        cfg.Tokens.LookAheadPad,
		ObstacleAttempts:    cfg.Obstacles.Attempts,
		TokenAttempts:       cfg.Tokens.Attempts,
		ObstacleJitter:      cfg.Obstacles.JitterStep,
		TokenJitter:         cfg.Tokens.JitterStep,
	}
}

// Solver finds collision-free spawn positions with a bounded jitter search.
type Solver struct {
	rules PlacementRules
}

// NewSolver creates a placement solver.
func NewSolver(rules PlacementRules) *Solver {
	if rules.ObstacleAttempts <= 0 {
		rules.ObstacleAttempts = 20
	}
	if rules.TokenAttempts <= 0 {
		rules.TokenAttempts = 15
	}
	return &Solver{rules: rules}
}

// FindSafePosition searches near the proposed box for a position that keeps
// the required spacing from every existing entity. Attempt 0 tries the
// proposal as given; attempt i jitters by up to i*step on both axes and
// re-clamps to the region. It returns false when every attempt fails, which
// callers treat as a skipped spawn rather than an error.
func (s *Solver) FindSafePosition(req PlacementRequest, rng RNG) (core.Box, bool) {
	attempts, step := s.rules.ObstacleAttempts, s.rules.ObstacleJitter
	if req.Kind == KindToken {
		attempts, step = s.rules.TokenAttempts, s.rules.TokenJitter
	}

	for i := 0; i < attempts; i++ {
		candidate := req.Proposed
		if i > 0 {
			radius := float64(i) * step
			candidate.X += signed(rng, radius)
			candidate.Y += signed(rng, radius)
		}
		candidate = req.Region.clamp(candidate)

		if s.Safe(req.Kind, candidate, req.Obstacles, req.Tokens) {
			return candidate, true
		}
	}
	return core.Box{}, false
}

// Safe reports whether candidate satisfies every spacing rule for its kind.
func (s *Solver) Safe(kind EntityKind, candidate core.Box, obstacles, tokens []core.Box) bool {
	if kind == KindObstacle {
		margin := math.Max(s.rules.ObstacleMinSpacing, candidate.W/2+candidate.H/2)
		for _, o := range obstacles {
			if core.Overlaps(candidate, o, margin) {
				return false
			}
		}
		for _, t := range tokens {
			if core.Overlaps(candidate, t, s.rules.ObstacleTokenMargin) {
				return false
			}
		}
		return true
	}

	for _, o := range obstacles {
		if core.Overlaps(candidate, o, s.rules.TokenObstacleMargin) {
			return false
		}
		if s.alignedAhead(candidate, o) {
			return false
		}
	}
	for _, t := range tokens {
		if core.Overlaps(candidate, t, s.rules.TokenTokenMargin) {
			return false
		}
	}
	return true
}

// alignedAhead reports an obstacle more than LookAhead units right of the
// token whose row nearly matches the token's. Both scroll at the same speed,
// so the obstacle stays in the lane the player takes to reach the token.
func (s *Solver) alignedAhead(token, obstacle core.Box) bool {
	if obstacle.X <= token.X+s.rules.LookAhead {
		return false
	}
	_, ty := token.Center()
	_, oy := obstacle.Center()
	return math.Abs(ty-oy) < token.H/2+obstacle.H/2+s.rules.LookAheadPad
}

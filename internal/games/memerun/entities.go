package memerun

import "github.com/vovakirdan/memerun/internal/core"

// ObstacleType selects an obstacle's size profile and sprite.
type ObstacleType int

const (
	ObstacleRug ObstacleType = iota
	ObstacleFud
	ObstacleBear
	ObstaclePaper
	ObstacleScam
)

// String returns the lowercase type name used in config and sprite sheets.
func (t ObstacleType) String() string {
	switch t {
	case ObstacleRug:
		return "rug"
	case ObstacleFud:
		return "fud"
	case ObstacleBear:
		return "bear"
	case ObstaclePaper:
		return "paper"
	case ObstacleScam:
		return "scam"
	default:
		return "unknown"
	}
}

// MarshalText encodes the type by name for telemetry payloads.
func (t ObstacleType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Damage is the number of lives a hit costs. Every type costs one today.
func (t ObstacleType) Damage() int {
	return 1
}

// Obstacle is a hazard scrolling toward the player.
type Obstacle struct {
	ID   int
	Box  core.Box
	Type ObstacleType
}

// Token is a collectible worth a fixed score.
type Token struct {
	ID  int
	Box core.Box
}

// EntityKind distinguishes the two spawnable categories.
type EntityKind int

const (
	KindObstacle EntityKind = iota
	KindToken
)

// Direction is one discrete movement delta from the input source.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Input holds the movement deltas consumed by one tick, in arrival order.
type Input struct {
	Moves []Direction
}

// InputFromFrame converts platform actions into movement deltas. Non-move
// actions are skipped.
func InputFromFrame(f core.InputFrame) Input {
	var in Input
	for _, a := range f.Actions() {
		if a.IsMove() {
			// Directions are declared in the same order as the move actions.
			in.Moves = append(in.Moves, Direction(a-core.ActionUp))
		}
	}
	return in
}

func boxesOfObstacles(obs []Obstacle) []core.Box {
	out := make([]core.Box, len(obs))
	for i, o := range obs {
		out[i] = o.Box
	}
	return out
}

func boxesOfTokens(toks []Token) []core.Box {
	out := make([]core.Box, len(toks))
	for i, t := range toks {
		out[i] = t.Box
	}
	return out
}

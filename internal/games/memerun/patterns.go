package memerun

import (
	"math"
	"time"

	"github.com/vovakirdan/memerun/internal/config"
	"github.com/vovakirdan/memerun/internal/core"
)

// PatternKind names an obstacle generation strategy.
type PatternKind int

const (
	PatternRandom PatternKind = iota
	PatternWave
	PatternCorridor
	PatternCluster
	patternCount
)

// String returns the pattern name.
func (k PatternKind) String() string {
	switch k {
	case PatternRandom:
		return "random"
	case PatternWave:
		return "wave"
	case PatternCorridor:
		return "corridor"
	case PatternCluster:
		return "cluster"
	default:
		return "unknown"
	}
}

// MarshalText encodes the pattern by name.
func (k PatternKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// neverSpawned marks a pattern that has not spawned yet this session.
const neverSpawned = -time.Hour

// PatternState is the selector's per-session state. LastSpawn holds the
// elapsed session time of each pattern's most recent successful spawn.
type PatternState struct {
	Kind      PatternKind
	Progress  int
	Epoch     int
	LastSpawn [patternCount]time.Duration
}

// NewPatternState returns the initial state: random pattern, no cooldowns pending.
func NewPatternState() PatternState {
	st := PatternState{Kind: PatternRandom}
	for i := range st.LastSpawn {
		st.LastSpawn[i] = neverSpawned
	}
	return st
}

// spawnContext is the read-only input of one pattern spawn. Obstacles and
// Tokens are snapshots of the field at the start of the tick.
type spawnContext struct {
	Elapsed   time.Duration
	Level     int
	Room      int
	Obstacles []core.Box
	Tokens    []core.Box
}

// PatternSelector runs the timed pattern state machine and turns each
// eligible spawn into concrete obstacles via the placement solver.
type PatternSelector struct {
	cfg        config.PatternConfig
	field      config.FieldConfig
	obstacles  config.ObstacleConfig
	difficulty *config.Difficulty
	solver     *Solver
}

// NewPatternSelector creates a selector bound to the game config.
func NewPatternSelector(cfg config.MemerunConfig, diff *config.Difficulty, solver *Solver) *PatternSelector {
	return &PatternSelector{
		cfg:        cfg.Patterns,
		field:      cfg.Field,
		obstacles:  cfg.Obstacles,
		difficulty: diff,
		solver:     solver,
	}
}

// Cooldown returns the minimum time between two spawns of a pattern.
func (p *PatternSelector) Cooldown(kind PatternKind) time.Duration {
	var ms int
	switch kind {
	case PatternWave:
		ms = p.cfg.WaveCooldownMs
	case PatternCorridor:
		ms = p.cfg.CorridorCooldownMs
	case PatternCluster:
		ms = p.cfg.ClusterCooldownMs
	default:
		ms = p.cfg.RandomCooldownMs
	}
	return time.Duration(ms) * time.Millisecond
}

// Refresh reselects the active pattern when elapsed crosses into a new
// switch window. The progress counter resets only when the kind changes.
func (p *PatternSelector) Refresh(st *PatternState, elapsed time.Duration, rng RNG) {
	if p.cfg.SwitchEveryMs <= 0 {
		return
	}
	epoch := int(elapsed / (time.Duration(p.cfg.SwitchEveryMs) * time.Millisecond))
	if epoch <= st.Epoch {
		return
	}
	st.Epoch = epoch
	next := PatternKind(rng.Intn(int(patternCount)))
	if next != st.Kind {
		st.Kind = next
		st.Progress = 0
	}
}

// Spawn runs the active pattern once. It returns nil while the pattern is
// cooling down or when placement fails; neither is an error.
func (p *PatternSelector) Spawn(st *PatternState, sc spawnContext, rng RNG) []Obstacle {
	if sc.Room <= 0 {
		return nil
	}
	if sc.Elapsed-st.LastSpawn[st.Kind] < p.Cooldown(st.Kind) {
		return nil
	}

	var placed []Obstacle
	switch st.Kind {
	case PatternWave:
		placed = p.spawnWave(st, sc, rng)
	case PatternCorridor:
		placed = p.spawnCorridor(sc, rng)
	case PatternCluster:
		placed = p.spawnCluster(sc, rng)
	default:
		placed = p.spawnRandom(sc, rng)
	}

	if len(placed) > 0 {
		st.LastSpawn[st.Kind] = sc.Elapsed
	}
	return placed
}

func (p *PatternSelector) spawnRandom(sc spawnContext, rng RNG) []Obstacle {
	typ := p.drawType(sc.Level, rng)
	w, h := p.size(typ, sc.Level)
	region := p.spawnRegion(0)
	proposed := core.NewBox(
		between(rng, region.Left, region.Right-w),
		between(rng, region.Top, region.Bottom-h),
		w, h,
	)
	return p.placeOne(typ, proposed, region, sc.Obstacles, sc.Tokens, rng)
}

func (p *PatternSelector) spawnWave(st *PatternState, sc spawnContext, rng RNG) []Obstacle {
	typ := p.drawType(sc.Level, rng)
	w, h := p.size(typ, sc.Level)
	region := p.spawnRegion(0)
	centerY := p.field.Height / 2
	y := centerY + math.Sin(float64(st.Progress)*p.cfg.WaveFrequency)*p.cfg.WaveHeight - h/2
	proposed := core.NewBox(between(rng, region.Left, region.Right-w), y, w, h)

	placed := p.placeOne(typ, proposed, region, sc.Obstacles, sc.Tokens, rng)
	if len(placed) > 0 {
		st.Progress++
	}
	return placed
}

// spawnCorridor places a top/bottom pair around a horizontal gap. The pair
// is atomic: if either half cannot be placed, nothing is returned.
func (p *PatternSelector) spawnCorridor(sc spawnContext, rng RNG) []Obstacle {
	if sc.Room < 2 {
		return nil
	}
	region := p.spawnRegion(0)

	topType := p.drawType(sc.Level, rng)
	bottomType := p.drawType(sc.Level, rng)
	tw, th := p.size(topType, sc.Level)
	bw, bh := p.size(bottomType, sc.Level)

	gap := p.CorridorGap(sc.Level)
	// The gap plus both halves must fit between the edge buffers.
	gap = math.Min(gap, (region.Bottom-region.Top)-th-bh)
	if gap <= 0 {
		return nil
	}
	gapTop := between(rng, region.Top+th, region.Bottom-bh-gap)
	x := between(rng, region.Left, region.Right-math.Max(tw, bw))

	top, ok := p.solver.FindSafePosition(PlacementRequest{
		Kind:      KindObstacle,
		Proposed:  core.NewBox(x, gapTop-th, tw, th),
		Obstacles: sc.Obstacles,
		Tokens:    sc.Tokens,
		Region:    region,
	}, rng)
	if !ok {
		return nil
	}

	withTop := append(append(make([]core.Box, 0, len(sc.Obstacles)+1), sc.Obstacles...), top)
	bottom, ok := p.solver.FindSafePosition(PlacementRequest{
		Kind:      KindObstacle,
		Proposed:  core.NewBox(x, gapTop+gap, bw, bh),
		Obstacles: withTop,
		Tokens:    sc.Tokens,
		Region:    region,
	}, rng)
	if !ok {
		return nil
	}

	return []Obstacle{
		{Box: top, Type: topType},
		{Box: bottom, Type: bottomType},
	}
}

// spawnCluster spreads several obstacles horizontally around one row. The
// first is always a rug.
func (p *PatternSelector) spawnCluster(sc spawnContext, rng RNG) []Obstacle {
	limit := p.cfg.ClusterMax
	if limit <= 0 || limit > sc.Room {
		limit = sc.Room
	}
	tries := 2 + sc.Level/3
	region := p.spawnRegion(p.cfg.ClusterSpacing * float64(tries-1))

	baseX := between(rng, region.Left, p.field.Width+p.field.SpawnDepth/2)
	baseY := between(rng, region.Top, region.Bottom-p.obstacles.MaxDimension)

	snapshot := append(make([]core.Box, 0, len(sc.Obstacles)+limit), sc.Obstacles...)
	var placed []Obstacle
	for i := 0; i < tries && len(placed) < limit; i++ {
		typ := ObstacleRug
		if i > 0 {
			typ = p.drawType(sc.Level, rng)
		}
		w, h := p.size(typ, sc.Level)
		proposed := core.NewBox(
			baseX+float64(i)*p.cfg.ClusterSpacing,
			baseY+signed(rng, p.cfg.ClusterJitter),
			w, h,
		)
		box, ok := p.solver.FindSafePosition(PlacementRequest{
			Kind:      KindObstacle,
			Proposed:  proposed,
			Obstacles: snapshot,
			Tokens:    sc.Tokens,
			Region:    region,
		}, rng)
		if !ok {
			continue
		}
		snapshot = append(snapshot, box)
		placed = append(placed, Obstacle{Box: box, Type: typ})
	}
	return placed
}

func (p *PatternSelector) placeOne(typ ObstacleType, proposed core.Box, region Region, obstacles, tokens []core.Box, rng RNG) []Obstacle {
	box, ok := p.solver.FindSafePosition(PlacementRequest{
		Kind:      KindObstacle,
		Proposed:  proposed,
		Obstacles: obstacles,
		Tokens:    tokens,
		Region:    region,
	}, rng)
	if !ok {
		return nil
	}
	return []Obstacle{{Box: box, Type: typ}}
}

// CorridorGap returns the tunnel height for a level; it narrows as the
// level rises.
func (p *PatternSelector) CorridorGap(level int) float64 {
	steps := p.difficulty.MaxLevel() - level
	if steps < 0 {
		steps = 0
	}
	return p.cfg.CorridorBaseGap + p.cfg.CorridorGapStep*float64(steps)
}

// spawnRegion is the off-screen band new obstacles enter from, widened by
// extra units for patterns that spread horizontally.
func (p *PatternSelector) spawnRegion(extra float64) Region {
	return spawnRegion(p.field, p.field.SpawnDepth+extra)
}

func spawnRegion(field config.FieldConfig, depth float64) Region {
	return Region{
		Left:   field.Width,
		Top:    field.EdgeBuffer,
		Right:  field.Width + depth,
		Bottom: field.Height - field.EdgeBuffer,
	}
}

// size returns the level-scaled dimensions for an obstacle type.
func (p *PatternSelector) size(typ ObstacleType, level int) (float64, float64) {
	base, ok := p.obstacles.Sizes[typ.String()]
	if !ok {
		base = config.SizeWH{Width: 50, Height: 50}
	}
	limit := p.obstacles.MaxDimension
	if limit <= 0 {
		limit = math.Inf(1)
	}
	return p.difficulty.ScaleDim(base.Width, level, limit),
		p.difficulty.ScaleDim(base.Height, level, limit)
}

// typeWeight is one entry of the obstacle type distribution.
type typeWeight struct {
	typ    ObstacleType
	weight float64
}

// weightsForLevel returns the obstacle type distribution for a level. Rugs and
// scams grow more common as the level rises; fud and paper recede.
func weightsForLevel(level int) []typeWeight {
	tier := func(above int, hi, lo float64) float64 {
		if level > above {
			return hi
		}
		return lo
	}
	return []typeWeight{
		{ObstacleRug, tier(5, 0.30, 0.15)},
		{ObstacleBear, tier(3, 0.25, 0.20)},
		{ObstacleFud, tier(2, 0.25, 0.30)},
		{ObstaclePaper, tier(4, 0.10, 0.25)},
		{ObstacleScam, tier(7, 0.20, 0.10)},
	}
}

// drawType samples the cumulative type distribution with one uniform draw.
func (p *PatternSelector) drawType(level int, rng RNG) ObstacleType {
	return pickType(weightsForLevel(level), rng.Float64())
}

func pickType(weights []typeWeight, u float64) ObstacleType {
	total := 0.0
	for _, w := range weights {
		total += w.weight
	}
	target := u * total
	acc := 0.0
	for _, w := range weights {
		acc += w.weight
		if target < acc {
			return w.typ
		}
	}
	return weights[len(weights)-1].typ
}

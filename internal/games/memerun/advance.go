package memerun

import (
	"time"

	"github.com/vovakirdan/memerun/internal/config"
	"github.com/vovakirdan/memerun/internal/core"
)

// State is one completed simulation snapshot. It is a value: Advance never
// mutates the State it is given.
type State struct {
	Player  core.Box
	Level   int
	Store   EntityStore
	Pattern PatternState
	Ledger  Ledger
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	s.Store = s.Store.Clone()
	return s
}

// Engine holds the immutable rules of a game: config, difficulty curve,
// placement solver and pattern selector. All session data lives in State.
type Engine struct {
	cfg        config.MemerunConfig
	difficulty *config.Difficulty
	solver     *Solver
	patterns   *PatternSelector
}

// NewEngine builds an engine from a game config.
func NewEngine(cfg config.MemerunConfig) *Engine {
	diff := config.NewDifficulty(cfg.Difficulty)
	solver := NewSolver(RulesFromConfig(cfg))
	return &Engine{
		cfg:        cfg,
		difficulty: diff,
		solver:     solver,
		patterns:   NewPatternSelector(cfg, diff, solver),
	}
}

// Config returns the engine's config.
func (e *Engine) Config() config.MemerunConfig {
	return e.cfg
}

// Difficulty returns the difficulty controller.
func (e *Engine) Difficulty() *config.Difficulty {
	return e.difficulty
}

// Patterns returns the pattern selector.
func (e *Engine) Patterns() *PatternSelector {
	return e.patterns
}

// Solver returns the placement solver.
func (e *Engine) Solver() *Solver {
	return e.solver
}

// NewState returns an empty waiting state with the player at its start position.
func (e *Engine) NewState() State {
	return State{
		Player:  e.startBox(),
		Level:   e.difficulty.Level(0),
		Store:   NewEntityStore(),
		Pattern: NewPatternState(),
		Ledger:  Ledger{Lives: e.cfg.Session.Lives},
	}
}

func (e *Engine) startBox() core.Box {
	p := e.cfg.Player
	return core.NewBox(p.X, e.cfg.Field.Height/2-p.Height/2, p.Width, p.Height)
}

// Start begins a new session from a waiting or finished state. Every
// counter, the entity store and the pattern state are reinitialized.
func (e *Engine) Start(s State, now time.Time) (State, []Event, error) {
	if s.Ledger.Playing() {
		return s, nil, ErrAlreadyPlaying
	}
	next := e.NewState()
	if err := next.Ledger.Start(e.cfg.Session.Lives, now); err != nil {
		return s, nil, err
	}
	return next, []Event{{
		Kind:  EventSessionStart,
		Lives: next.Ledger.Lives,
	}}, nil
}

// Stop finishes a playing session. It is idempotent: stopping a state that
// is not playing returns it unchanged with no events.
func (e *Engine) Stop(s State) (State, []Event) {
	if !s.Ledger.Playing() {
		return s, nil
	}
	next := s.Clone()
	next.Ledger.Stop()
	return next, []Event{gameOverEvent(&next.Ledger)}
}

// Advance runs one fixed tick and returns the next snapshot together with
// the events it produced. States that are not playing are returned as is.
//
// Order within a tick: player movement, level refresh, pattern spawn, token
// spawn, scroll and cull, collisions, terminal check.
func (e *Engine) Advance(s State, in Input, rng RNG, dt time.Duration) (State, []Event) {
	if !s.Ledger.Playing() {
		return s, nil
	}

	next := s.Clone()
	next.Ledger.Tick(dt)
	elapsed := next.Ledger.Elapsed

	next.Player = e.move(next.Player, in)
	next.Level = e.difficulty.Level(elapsed)
	level := next.Level

	e.patterns.Refresh(&next.Pattern, elapsed, rng)

	obstacles := boxesOfObstacles(next.Store.Obstacles())
	tokens := boxesOfTokens(next.Store.Tokens())

	maxObstacles := e.difficulty.MaxObstacles(level)
	if room := maxObstacles - len(obstacles); room > 0 && rng.Float64() < e.difficulty.ObstacleChance(level) {
		placed := e.patterns.Spawn(&next.Pattern, spawnContext{
			Elapsed:   elapsed,
			Level:     level,
			Room:      room,
			Obstacles: obstacles,
			Tokens:    tokens,
		}, rng)
		if next.Store.AddObstacles(maxObstacles, placed...) > 0 {
			obstacles = boxesOfObstacles(next.Store.Obstacles())
		}
	}

	maxTokens := e.difficulty.MaxTokens(level)
	if len(tokens) < maxTokens && rng.Float64() < e.difficulty.TokenChance(level) {
		if box, ok := e.spawnToken(obstacles, tokens, rng); ok {
			next.Store.AddToken(maxTokens, box)
		}
	}

	next.Store.Advance(e.cfg.Field.ScrollSpeed)

	events := ResolveCollisions(next.Player, &next.Store, &next.Ledger, e.cfg.Tokens.Value, elapsed)
	if next.Ledger.Finished() {
		events = append(events, gameOverEvent(&next.Ledger))
	}
	return next, events
}

// spawnToken proposes a token in the spawn band and asks the solver for a
// safe spot against obstacles placed earlier in the same tick.
func (e *Engine) spawnToken(obstacles, tokens []core.Box, rng RNG) (core.Box, bool) {
	size := e.cfg.Tokens.Size
	region := spawnRegion(e.cfg.Field, e.cfg.Field.SpawnDepth)
	proposed := core.NewBox(
		between(rng, region.Left, region.Right-size),
		between(rng, region.Top, region.Bottom-size),
		size, size,
	)
	return e.solver.FindSafePosition(PlacementRequest{
		Kind:      KindToken,
		Proposed:  proposed,
		Obstacles: obstacles,
		Tokens:    tokens,
		Region:    region,
	}, rng)
}

// move applies the tick's movement deltas in order, clamping to the field.
func (e *Engine) move(player core.Box, in Input) core.Box {
	step := e.cfg.Player.Step
	for _, d := range in.Moves {
		switch d {
		case DirUp:
			player.Y -= step
		case DirDown:
			player.Y += step
		case DirLeft:
			player.X -= step
		case DirRight:
			player.X += step
		}
		player.X = core.ClampF(player.X, 0, e.cfg.Field.Width-player.W)
		player.Y = core.ClampF(player.Y, 0, e.cfg.Field.Height-player.H)
	}
	return player
}

func gameOverEvent(l *Ledger) Event {
	result := l.Result()
	return Event{
		Kind:    EventGameOver,
		Elapsed: l.Elapsed,
		Score:   l.Score,
		Lives:   l.Lives,
		Result:  &result,
	}
}

// Package memerun implements Meme Run, a side-scrolling dodge game: the
// player steers around rugs, bears and scams while collecting tokens.
//
// The simulation is split into a pure step (Engine.Advance) and a separate
// render pass (Render). Game adapts both to the registry.Game interface.
package memerun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memerun/internal/config"
	"github.com/vovakirdan/memerun/internal/core"
	"github.com/vovakirdan/memerun/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "memerun"

// ErrStartDenied is returned when the entry gate refuses a session.
var ErrStartDenied = errors.New("memerun: entry denied")

// gateTimeout bounds a single entry gate decision.
const gateTimeout = 2 * time.Second

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game runs one player's sessions and owns the collaborators around the engine.
type Game struct {
	engine  *Engine
	state   State
	rng     RNG
	runtime core.RuntimeConfig
	rc      RenderContext
	paused  bool
	notice  string
	best    int

	gate          Gate
	events        EventSink
	scores        ScoreSink
	assets        Assets
	logger        *log.Logger
	now           func() time.Time
	submitTimeout time.Duration
	pending       <-chan Submission
}

// Option configures a Game.
type Option func(*Game)

// WithGate sets the entry gate consulted before each session.
func WithGate(g Gate) Option {
	return func(game *Game) { game.gate = g }
}

// WithEventSink sets the receiver of gameplay notifications.
func WithEventSink(s EventSink) Option {
	return func(game *Game) { game.events = s }
}

// WithScoreSink sets where finished sessions are submitted.
func WithScoreSink(s ScoreSink) Option {
	return func(game *Game) { game.scores = s }
}

// WithAssets sets the sprite provider.
func WithAssets(a Assets) Option {
	return func(game *Game) { game.assets = a }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(game *Game) { game.logger = l }
}

// WithBestScore seeds the high score shown on the game-over overlay.
func WithBestScore(best int) Option {
	return func(game *Game) { game.best = best }
}

// WithClock replaces the wall clock used for session start times.
func WithClock(now func() time.Time) Option {
	return func(game *Game) { game.now = now }
}

// WithSubmitTimeout bounds each score submission.
func WithSubmitTimeout(d time.Duration) Option {
	return func(game *Game) { game.submitTimeout = d }
}

// New creates a Meme Run game instance.
func New(opts ...Option) *Game {
	g := &Game{
		events:        discardSink{},
		logger:        log.New(io.Discard),
		now:           time.Now,
		submitTimeout: DefaultSubmitTimeout,
	}
	g.Apply(opts...)
	return g
}

// Apply applies options to an existing game.
func (g *Game) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(g)
	}
	if g.events == nil {
		g.events = discardSink{}
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Meme Run"
}

// Reset loads the config, reseeds the RNG and returns to the waiting phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	cfg, err := config.LoadMemerun(configPath)
	if err != nil {
		g.logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultMemerunConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	g.engine = NewEngine(cfg)
	g.rng = NewRNG(runtime.Seed)
	g.state = g.engine.NewState()
	g.paused = false
	g.notice = ""
	g.rc = RenderContext{}
}

// Start begins a session if the gate allows it.
func (g *Game) Start() error {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}
	if g.gate != nil {
		ctx, cancel := context.WithTimeout(context.Background(), gateTimeout)
		allowed := g.gate.CanStart(ctx, g.runtime.Player)
		cancel()
		if !allowed {
			g.notice = "Entry denied: not enough tokens held"
			g.logger.Info("session refused by gate", "player", g.runtime.Player)
			return ErrStartDenied
		}
	}

	next, events, err := g.engine.Start(g.state, g.now())
	if err != nil {
		return err
	}
	g.state = next
	g.paused = false
	g.notice = ""
	g.logger.Debug("session started", "player", g.runtime.Player, "session", next.Ledger.SessionID)
	g.emit(events)
	return nil
}

// Stop finishes the running session, if any. Repeated calls are no-ops.
func (g *Game) Stop() {
	if g.engine == nil {
		return
	}
	next, events := g.engine.Stop(g.state)
	g.state = next
	g.emit(events)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}
	g.pollSubmission()

	if in.Has(core.ActionQuit) {
		g.Stop()
		return core.StepResult{State: g.State()}
	}

	switch g.state.Ledger.Phase {
	case PhaseWaiting, PhaseFinished:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			//nolint:errcheck // A refusal is surfaced through the notice line
			g.Start()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	next, events := g.engine.Advance(g.state, InputFromFrame(in), g.rng, g.tick())
	g.state = next
	g.emit(events)

	return core.StepResult{State: g.State()}
}

func (g *Game) tick() time.Duration {
	return time.Second / time.Duration(g.runtime.TickRate)
}

// emit forwards events to the sink and handles the end of a session.
func (g *Game) emit(events []Event) {
	for _, e := range events {
		if e.Kind == EventGameOver && e.Result != nil {
			e.Result.Player = g.runtime.Player
			g.finish(*e.Result)
		}
		g.events.Notify(e)
	}
}

// finish records the local result and hands it to the score sink without
// waiting for the outcome.
func (g *Game) finish(result SessionResult) {
	if result.Score > g.best {
		g.best = result.Score
	}
	g.logger.Info("session finished",
		"player", result.Player,
		"score", result.Score,
		"tokens", result.TokensCollected,
		"hits", result.ObstaclesHit,
		"duration", result.Duration,
	)
	if g.scores == nil {
		return
	}
	g.pending = SubmitAsync(g.scores, result, g.submitTimeout)
}

// pollSubmission picks up a finished score submission without blocking.
func (g *Game) pollSubmission() {
	if g.pending == nil {
		return
	}
	select {
	case s := <-g.pending:
		g.pending = nil
		if s.Err != nil {
			g.notice = "Score not saved (local result kept)"
			g.logger.Warn("score submission failed", "session", s.Result.SessionID, "err", s.Err)
			return
		}
		g.notice = "Score saved"
	default:
	}
}

// Flush blocks until an in-flight score submission completes or the submit
// timeout elapses. It is meant for shutdown, never for the tick path.
func (g *Game) Flush() error {
	if g.pending == nil {
		return nil
	}
	select {
	case s := <-g.pending:
		g.pending = nil
		return s.Err
	case <-time.After(g.submitTimeout):
		return context.DeadlineExceeded
	}
}

// Render draws the current snapshot and any overlay into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	field := g.engine.Config().Field
	g.rc.Update(dst.Width(), dst.Height(), field.Width, field.Height)

	cmds := Render(g.state, g.assets, g.rc)

	w, h := dst.Width(), dst.Height()
	switch {
	case g.state.Ledger.Phase == PhaseWaiting:
		cmds = append(cmds, Overlay(w, h, "MEME RUN", "Press Enter to start")...)
	case g.state.Ledger.Finished():
		cmds = append(cmds, Overlay(w, h, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  Press R to restart", g.state.Ledger.Score, g.best))...)
	case g.paused:
		cmds = append(cmds, Overlay(w, h, "PAUSED", "Press P to resume")...)
	}

	if g.notice != "" {
		cmds = append(cmds, DrawCommand{
			Kind:  DrawText,
			Rect:  core.NewRect(1, h-1, 0, 0),
			Text:  g.notice,
			Color: core.ColorOrange,
		})
	}

	Paint(dst, cmds)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	l := g.state.Ledger
	return core.GameState{
		Score:    l.Score,
		Lives:    l.Lives,
		Level:    g.state.Level,
		Started:  l.Phase != PhaseWaiting,
		GameOver: l.Phase == PhaseFinished,
		Paused:   g.paused,
	}
}

// Snapshot returns the latest completed simulation state.
func (g *Game) Snapshot() State {
	return g.state.Clone()
}

// Notice returns the current status line, empty if none.
func (g *Game) Notice() string {
	return g.notice
}

// Best returns the highest score seen by this game instance.
func (g *Game) Best() int {
	return g.best
}

var _ registry.Session = (*Game)(nil)

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

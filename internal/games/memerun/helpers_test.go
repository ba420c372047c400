package memerun

import (
	"time"

	"github.com/vovakirdan/memerun/internal/config"
	"github.com/vovakirdan/memerun/internal/core"
)

// constRNG returns the same draw every time. With v == 0 every jitter is
// negative and every range draw returns its lower bound.
type constRNG struct{ v float64 }

func (r constRNG) Float64() float64 { return r.v }
func (r constRNG) Intn(n int) int   { return int(r.v * float64(n)) }

// quietConfig is the stock config with spawning switched off, so tests can
// place entities by hand.
func quietConfig() config.MemerunConfig {
	cfg := config.DefaultMemerunConfig()
	cfg.Difficulty.Scaling.ObstacleChanceBase = 0
	cfg.Difficulty.Scaling.ObstacleChanceStep = 0
	cfg.Difficulty.Scaling.TokenChanceBase = 0
	cfg.Difficulty.Scaling.TokenChanceStep = 0
	return cfg
}

const tick = time.Second / 60

func startedState(e *Engine) State {
	s, _, err := e.Start(e.NewState(), time.Unix(0, 0))
	if err != nil {
		panic(err)
	}
	return s
}

// onPlayer returns a box covering the player's current hitbox.
func onPlayer(s State, w, h float64) core.Box {
	return core.NewBox(s.Player.X, s.Player.Y, w, h)
}

// Package telemetry fans gameplay events out to observers: a structured
// log, websocket subscribers, or any other memerun.EventSink.
package telemetry

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memerun/internal/games/memerun"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// LogSink writes each event as a structured log line.
type LogSink struct {
	Logger *log.Logger
}

// NewLogSink returns a sink writing to logger. A nil logger discards output.
func NewLogSink(logger *log.Logger) LogSink {
	if logger == nil {
		logger = discardLogger()
	}
	return LogSink{Logger: logger.WithPrefix("event")}
}

// Notify logs e. Game over is logged at info level, everything else at debug.
func (s LogSink) Notify(e memerun.Event) {
	kv := []any{"elapsed", e.Elapsed, "score", e.Score, "lives", e.Lives}
	if e.EntityID != 0 {
		kv = append(kv, "entity", e.EntityID)
	}
	if e.Obstacle != "" {
		kv = append(kv, "obstacle", e.Obstacle)
	}

	switch e.Kind {
	case memerun.EventGameOver:
		if e.Result != nil {
			kv = append(kv,
				"session", e.Result.SessionID,
				"player", e.Result.Player,
				"tokens", e.Result.TokensCollected,
				"hits", e.Result.ObstaclesHit,
			)
		}
		s.Logger.Info(string(e.Kind), kv...)
	default:
		s.Logger.Debug(string(e.Kind), kv...)
	}
}

// Fanout forwards every event to each of its sinks in order.
type Fanout []memerun.EventSink

// Notify forwards e. Nil sinks are skipped.
func (f Fanout) Notify(e memerun.Event) {
	for _, s := range f {
		if s != nil {
			s.Notify(e)
		}
	}
}

var (
	_ memerun.EventSink = LogSink{}
	_ memerun.EventSink = Fanout(nil)
)

package memerun

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrAlreadyPlaying is returned when a session is started while one is running.
var ErrAlreadyPlaying = errors.New("memerun: session already playing")

// Phase is the session lifecycle stage.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhasePlaying
	PhaseFinished
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Ledger accumulates the counters of one session and owns its state machine:
// waiting -> playing -> finished. Once finished, mutations are rejected.
type Ledger struct {
	SessionID       uuid.UUID
	Phase           Phase
	Score           int
	TokensCollected int
	ObstaclesHit    int
	Lives           int
	StartedAt       time.Time
	Elapsed         time.Duration
}

// SessionResult is the final record of a finished session.
type SessionResult struct {
	SessionID       uuid.UUID     `json:"session_id"`
	Player          string        `json:"player,omitempty"`
	Score           int           `json:"score"`
	TokensCollected int           `json:"tokens_collected"`
	ObstaclesHit    int           `json:"obstacles_hit"`
	Duration        time.Duration `json:"-"`
	Lives           int           `json:"lives"`
}

type sessionResultJSON struct {
	sessionResultFields
	DurationMs int64 `json:"duration_ms"`
}

type sessionResultFields SessionResult

// MarshalJSON encodes Duration as whole milliseconds in duration_ms.
func (r SessionResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(sessionResultJSON{
		sessionResultFields: sessionResultFields(r),
		DurationMs:          r.Duration.Milliseconds(),
	})
}

// UnmarshalJSON reads duration_ms back into Duration.
func (r *SessionResult) UnmarshalJSON(data []byte) error {
	var raw sessionResultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = SessionResult(raw.sessionResultFields)
	r.Duration = time.Duration(raw.DurationMs) * time.Millisecond
	return nil
}

// Start resets every counter and enters the playing phase.
func (l *Ledger) Start(lives int, now time.Time) error {
	if l.Phase == PhasePlaying {
		return ErrAlreadyPlaying
	}
	*l = Ledger{
		SessionID: uuid.New(),
		Phase:     PhasePlaying,
		Lives:     lives,
		StartedAt: now,
	}
	return nil
}

// Playing reports whether ticks are being processed.
func (l Ledger) Playing() bool {
	return l.Phase == PhasePlaying
}

// Finished reports whether the session reached its terminal phase.
func (l Ledger) Finished() bool {
	return l.Phase == PhaseFinished
}

// Collect records one token worth value points. It returns false once the
// session is no longer playing.
func (l *Ledger) Collect(value int) bool {
	if l.Phase != PhasePlaying {
		return false
	}
	l.TokensCollected++
	l.Score += value
	return true
}

// Hit records an obstacle collision costing damage lives. Lives never drop
// below zero and reaching zero finishes the session.
func (l *Ledger) Hit(damage int) bool {
	if l.Phase != PhasePlaying {
		return false
	}
	l.ObstaclesHit++
	l.Lives -= damage
	if l.Lives <= 0 {
		l.Lives = 0
		l.Phase = PhaseFinished
	}
	return true
}

// Tick adds dt of session time while playing.
func (l *Ledger) Tick(dt time.Duration) {
	if l.Phase == PhasePlaying {
		l.Elapsed += dt
	}
}

// Stop finishes a playing session. Calling it again, or before a session
// has started, has no effect. It reports whether the phase changed.
func (l *Ledger) Stop() bool {
	if l.Phase != PhasePlaying {
		return false
	}
	l.Phase = PhaseFinished
	return true
}

// Result snapshots the session counters.
func (l Ledger) Result() SessionResult {
	return SessionResult{
		SessionID:       l.SessionID,
		Score:           l.Score,
		TokensCollected: l.TokensCollected,
		ObstaclesHit:    l.ObstaclesHit,
		Duration:        l.Elapsed,
		Lives:           l.Lives,
	}
}

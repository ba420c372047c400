package memerun

import (
	"encoding/json"
	"time"
)

// EventKind identifies a gameplay notification.
type EventKind string

const (
	EventSessionStart EventKind = "session_start"
	EventCollect      EventKind = "collect"
	EventHit          EventKind = "hit"
	EventLifeLost     EventKind = "life_lost"
	EventGameOver     EventKind = "game_over"
)

// Event is a fire-and-forget notification emitted by a tick. Only the fields
// relevant to the kind are set.
type Event struct {
	Kind     EventKind      `json:"kind"`
	Elapsed  time.Duration  `json:"-"`
	Score    int            `json:"score"`
	Lives    int            `json:"lives"`
	EntityID int            `json:"entity_id,omitempty"`
	Obstacle string         `json:"obstacle,omitempty"`
	Result   *SessionResult `json:"result,omitempty"`
}

type eventFields Event

type eventJSON struct {
	eventFields
	ElapsedMs int64 `json:"elapsed_ms"`
}

// MarshalJSON encodes Elapsed as whole milliseconds in elapsed_ms.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{eventFields: eventFields(e), ElapsedMs: e.Elapsed.Milliseconds()})
}

// UnmarshalJSON reads elapsed_ms back into Elapsed.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw eventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Event(raw.eventFields)
	e.Elapsed = time.Duration(raw.ElapsedMs) * time.Millisecond
	return nil
}

// EventSink receives gameplay notifications. Notify must not block the caller.
type EventSink interface {
	Notify(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// Notify calls f(e).
func (f EventSinkFunc) Notify(e Event) { f(e) }

type discardSink struct{}

func (discardSink) Notify(Event) {}

package memerun

import (
	"time"

	"github.com/vovakirdan/memerun/internal/core"
)

// ResolveCollisions tests the player against every token and then every
// obstacle using strict edge intersection. Each hit the ledger accepts
// removes the entity from the store. Hits arriving after the ledger has
// finished are ignored and their entities stay in place.
func ResolveCollisions(player core.Box, store *EntityStore, ledger *Ledger, tokenValue int, elapsed time.Duration) []Event {
	var events []Event

	var collected []int
	for _, t := range store.Tokens() {
		if !player.Intersects(t.Box) {
			continue
		}
		if !ledger.Collect(tokenValue) {
			break
		}
		collected = append(collected, t.ID)
		events = append(events, Event{
			Kind:     EventCollect,
			Elapsed:  elapsed,
			Score:    ledger.Score,
			Lives:    ledger.Lives,
			EntityID: t.ID,
		})
	}
	for _, id := range collected {
		store.RemoveToken(id)
	}

	var hit []int
	for _, o := range store.Obstacles() {
		if !player.Intersects(o.Box) {
			continue
		}
		if !ledger.Hit(o.Type.Damage()) {
			break
		}
		hit = append(hit, o.ID)
		events = append(events,
			Event{
				Kind:     EventHit,
				Elapsed:  elapsed,
				Score:    ledger.Score,
				Lives:    ledger.Lives,
				EntityID: o.ID,
				Obstacle: o.Type.String(),
			},
			Event{
				Kind:    EventLifeLost,
				Elapsed: elapsed,
				Score:   ledger.Score,
				Lives:   ledger.Lives,
			},
		)
	}
	for _, id := range hit {
		store.RemoveObstacle(id)
	}

	return events
}

package memerun

import (
	"context"
	"time"
)

// Gate decides whether a player may start a session.
type Gate interface {
	CanStart(ctx context.Context, player string) bool
}

// ScoreSink persists the result of a finished session.
type ScoreSink interface {
	SubmitScore(ctx context.Context, result SessionResult) error
}

// Submission is the outcome of one asynchronous score submission.
type Submission struct {
	Result SessionResult
	Err    error
}

// DefaultSubmitTimeout bounds a single score submission.
const DefaultSubmitTimeout = 5 * time.Second

// SubmitAsync sends result to sink on its own goroutine. The returned
// channel receives exactly one Submission and is never closed early, so a
// caller may poll it without blocking.
func SubmitAsync(sink ScoreSink, result SessionResult, timeout time.Duration) <-chan Submission {
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	out := make(chan Submission, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		out <- Submission{Result: result, Err: sink.SubmitScore(ctx, result)}
	}()
	return out
}

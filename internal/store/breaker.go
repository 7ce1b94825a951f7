package store

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"

	"SharedSlate/internal/session"
	"SharedSlate/internal/state"
)

// Breaker wraps a snapshot store with a circuit breaker so persistent
// storage failures fail fast instead of stalling every debounced flush.
// While the breaker is open the sync channel sees the failures and reports
// disconnected status; re-pushes on later edits probe for recovery.
type Breaker struct {
	inner session.Store
	load  *gobreaker.CircuitBreaker[state.Document]
	save  *gobreaker.CircuitBreaker[struct{}]
}

// NewBreaker wraps inner. The breaker trips after 5 consecutive failures
// and probes again after 30 seconds.
func NewBreaker(inner session.Store) *Breaker {
	trip := func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= 5
	}
	return &Breaker{
		inner: inner,
		load: gobreaker.NewCircuitBreaker[state.Document](gobreaker.Settings{
			Name:        "snapshot-load",
			Timeout:     30 * time.Second,
			ReadyToTrip: trip,
			IsSuccessful: func(err error) bool {
				// A missing snapshot is an answer, not a storage failure.
				return err == nil || errors.Is(err, session.ErrNotFound)
			},
		}),
		save: gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name:        "snapshot-save",
			Timeout:     30 * time.Second,
			ReadyToTrip: trip,
		}),
	}
}

func (b *Breaker) Load(ctx context.Context, sessionID string) (state.Document, error) {
	return b.load.Execute(func() (state.Document, error) {
		return b.inner.Load(ctx, sessionID)
	})
}

func (b *Breaker) Save(ctx context.Context, sessionID string, doc state.Document) error {
	_, err := b.save.Execute(func() (struct{}, error) {
		return struct{}{}, b.inner.Save(ctx, sessionID, doc)
	})
	return err
}

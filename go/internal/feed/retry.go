package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Retrying retries a failed publish with a linearly growing delay
type Retrying struct {
	Publisher  Publisher
	MaxRetries int
	RetryDelay time.Duration
	Clock      clockwork.Clock
}

// NewRetrying wraps p with the default retry policy
func NewRetrying(p Publisher) *Retrying {
	return &Retrying{
		Publisher:  p,
		MaxRetries: 2,
		RetryDelay: 100 * time.Millisecond,
		Clock:      clockwork.NewRealClock(),
	}
}

func (r *Retrying) Publish(ctx context.Context, ev Event) error {
	var lastErr error

	for attempt := 0; attempt <= r.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-r.Clock.After(r.RetryDelay * time.Duration(attempt)):
			}
		}

		if err := r.Publisher.Publish(ctx, ev); err != nil {
			lastErr = err
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("event_id", ev.ID.String()).
				Msg("failed to publish, retrying")
			continue
		}

		if attempt > 0 {
			log.Info().
				Int("attempt", attempt+1).
				Str("event_id", ev.ID.String()).
				Msg("publish succeeded after retry")
		}
		return nil
	}

	return fmt.Errorf("publish failed after %d attempts: %w", r.MaxRetries+1, lastErr)
}

package feed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// EventType names a change in scouting data
type EventType string

const (
	EventGradeSaved        EventType = "grade.saved"
	EventGradeDeleted      EventType = "grade.deleted"
	EventAttachmentAdded   EventType = "attachment.added"
	EventAttachmentRemoved EventType = "attachment.removed"
)

// Event is the envelope published to subscribers
type Event struct {
	ID        uuid.UUID       `json:"eventId"`
	Type      EventType       `json:"eventType"`
	PlayerID  string          `json:"playerId,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// NewEvent builds an event with a fresh id. A payload that cannot be
// marshalled is dropped.
func NewEvent(t EventType, playerID string, at time.Time, payload interface{}) Event {
	ev := Event{
		ID:        uuid.New(),
		Type:      t,
		PlayerID:  playerID,
		Timestamp: at.UTC(),
	}
	if payload != nil {
		if data, err := json.Marshal(payload); err == nil {
			ev.Payload = data
		}
	}
	return ev
}

// Publisher delivers events to interested parties
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Noop discards every event
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }

// Fanout publishes to every wrapped publisher and joins their errors
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, ev Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

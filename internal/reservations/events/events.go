package events

import (
	"context"
	"time"

	"seoulier/pkg/kafka"
	"seoulier/pkg/logger"
	"seoulier/pkg/model"
)

const (
	TypeCreated       = "reservation.created"
	TypeUpdated       = "reservation.updated"
	TypeStatusChanged = "reservation.status_changed"
	TypeDeleted       = "reservation.deleted"

	source = "reservations"
)

// Event is the payload published after a successful mutation. Consumers
// get the full record snapshot; deletions carry only the id.
type Event struct {
	Type        string             `json:"type"`
	Reservation *model.Reservation `json:"reservation,omitempty"`
	ID          string             `json:"id"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// Publisher emits reservation lifecycle events. Publication is best-effort:
// the mutation is already durable when an event goes out, so a broker
// failure is logged and swallowed, never bubbled to the caller.
type Publisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

// NewPublisher returns a nil-safe publisher; pass a nil producer to
// disable event emission entirely.
func NewPublisher(producer *kafka.Producer, log *logger.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		log:      log,
	}
}

func (p *Publisher) Created(ctx context.Context, res *model.Reservation) {
	p.publish(ctx, TypeCreated, res.ID, res)
}

func (p *Publisher) Updated(ctx context.Context, res *model.Reservation) {
	p.publish(ctx, TypeUpdated, res.ID, res)
}

func (p *Publisher) StatusChanged(ctx context.Context, res *model.Reservation) {
	p.publish(ctx, TypeStatusChanged, res.ID, res)
}

func (p *Publisher) Deleted(ctx context.Context, id string) {
	p.publish(ctx, TypeDeleted, id, nil)
}

func (p *Publisher) publish(ctx context.Context, eventType, id string, res *model.Reservation) {
	if p == nil || p.producer == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(id).
		WithEventType(eventType).
		WithSource(source).
		WithValue(Event{
			Type:        eventType,
			Reservation: res,
			ID:          id,
			OccurredAt:  time.Now().UTC(),
		}).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Warn("Failed to publish reservation event",
			"event_type", eventType,
			"reservation_id", id,
			"error", err,
		)
	}
}

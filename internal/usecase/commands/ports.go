package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Booking lifecycle event topics.
const (
	TopicBookingCreated       = "booking.created"
	TopicBookingUpdated       = "booking.updated"
	TopicBookingCancelled     = "booking.cancelled"
	TopicBookingStatusChanged = "booking.status_changed"
	TopicBookingDeleted       = "booking.deleted"
)

// BookingEvent is pushed to the message broker after a lifecycle transition
// commits, so clients refresh on notification instead of polling.
type BookingEvent struct {
	Topic       string    `json:"topic"`
	BookingID   uuid.UUID `json:"booking_id"`
	UserID      uuid.UUID `json:"user_id"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amount_cents,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher delivers booking events best-effort. Implementations must
// not fail the originating request; the write has already committed.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (NopPublisher) PublishBookingEvent(context.Context, BookingEvent) error {
	return nil
}

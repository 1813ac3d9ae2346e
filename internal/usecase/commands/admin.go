package commands

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// AdminCommands adjudicate bookings across all users. Status changes skip
// the availability re-check on purpose: confirming does not re-verify the
// room, it only records the decision.
type AdminCommands interface {
	SetStatus(ctx context.Context, bookingID uuid.UUID, status string) error
	Delete(ctx context.Context, bookingID uuid.UUID) error
}

type adminCommandsImpl struct {
	uow    shared.UnitOfWork
	events EventPublisher
	clock  clock.Clock
}

func NewAdminCommands(uow shared.UnitOfWork, events EventPublisher, clk clock.Clock) AdminCommands {
	return &adminCommandsImpl{uow: uow, events: events, clock: clk}
}

func (c *adminCommandsImpl) SetStatus(ctx context.Context, bookingID uuid.UUID, status string) error {
	newStatus := booking.Status(status)
	if !newStatus.IsValid() {
		return errs.ErrInvalidStatus
	}

	var owner uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().BookingByID(ctx, bookingID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}
		owner = snap.UserID

		// Booking and its transaction change status in lockstep.
		// Re-activating a cancelled booking can hit the no-overlap
		// constraint when its range was taken in the meantime.
		if err := tx.Bookings().UpdateStatus(ctx, bookingID, newStatus); err != nil {
			return mapWriteErr(err)
		}
		if err := tx.Bookings().UpdateTransactionStatus(ctx, bookingID, newStatus); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.publish(ctx, BookingEvent{
		Topic:     TopicBookingStatusChanged,
		BookingID: bookingID,
		UserID:    owner,
		Status:    newStatus.String(),
	})
	return nil
}

func (c *adminCommandsImpl) Delete(ctx context.Context, bookingID uuid.UUID) error {
	var owner uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().BookingByID(ctx, bookingID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(readErr, errs.ErrDatabaseOperationFailed)
		}
		owner = snap.UserID

		if err := tx.Bookings().DeleteWithTransaction(ctx, bookingID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.publish(ctx, BookingEvent{
		Topic:     TopicBookingDeleted,
		BookingID: bookingID,
		UserID:    owner,
	})
	return nil
}

func (c *adminCommandsImpl) publish(ctx context.Context, event BookingEvent) {
	event.OccurredAt = c.clock.Now()
	// Best-effort, same policy as the customer-side commands.
	_ = c.events.PublishBookingEvent(ctx, event)
}

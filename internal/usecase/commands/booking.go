package commands

import (
	"context"
	"log/slog"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	RoomTypeName  string
	CheckIn       string
	CheckOut      string
	PaymentMethod string
}

type UpdateBookingInput struct {
	RoomTypeName string
	CheckIn      string
	CheckOut     string
}

type BookingCommands interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error)
	Update(ctx context.Context, userID, bookingID uuid.UUID, in UpdateBookingInput) (*queries.BookingView, error)
	// Cancel is an idempotent no-op on an already-cancelled booking.
	Cancel(ctx context.Context, userID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	calc           booking.PriceCalculator
	bookingQueries queries.BookingQueries
	events         EventPublisher
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	calc booking.PriceCalculator,
	bookingQueries queries.BookingQueries,
	events EventPublisher,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		calc:           calc,
		bookingQueries: bookingQueries,
		events:         events,
		clock:          clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, userID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error) {
	if in.RoomTypeName == "" || in.CheckIn == "" || in.CheckOut == "" || in.PaymentMethod == "" {
		return nil, errs.ErrValidation
	}

	stay, err := booking.ParseStayPeriod(in.CheckIn, in.CheckOut, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	method, err := booking.NewPaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var (
		bookingID   uuid.UUID
		amountCents int64
	)
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, buildErr := c.buildBooking(ctx, tx, userID, in.RoomTypeName, stay, nil)
		if buildErr != nil {
			return buildErr
		}

		tr := booking.NewTransaction(entity, method, c.clock.Now())
		if createErr := tx.Bookings().Create(ctx, entity, tr); createErr != nil {
			return mapWriteErr(createErr)
		}
		bookingID = entity.ID()
		amountCents = entity.Amount().Cents()
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.publish(ctx, BookingEvent{
		Topic:       TopicBookingCreated,
		BookingID:   bookingID,
		UserID:      userID,
		Status:      booking.StatusPending.String(),
		AmountCents: amountCents,
	})

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (c *bookingCommandsImpl) Update(ctx context.Context, userID, bookingID uuid.UUID, in UpdateBookingInput) (*queries.BookingView, error) {
	if in.RoomTypeName == "" || in.CheckIn == "" || in.CheckOut == "" {
		return nil, errs.ErrValidation
	}

	stay, err := booking.ParseStayPeriod(in.CheckIn, in.CheckOut, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var amountCents int64
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := ownedBooking(ctx, tx, userID, bookingID)
		if readErr != nil {
			return readErr
		}

		entity, buildErr := c.buildBooking(ctx, tx, userID, in.RoomTypeName, stay, &snap.ID)
		if buildErr != nil {
			return buildErr
		}

		// The edit rewrites the booking row and restarts admin approval.
		// The payment transaction keeps its creation amount and status.
		updated := booking.ReconstructBooking(snap.ID, snap.UserID, snap.RoomID, booking.ReconstructStayPeriod(snap.CheckIn, snap.CheckOut), snap.Status, booking.NewMoney(snap.AmountCents))
		updated.Reschedule(entity.RoomID(), stay, entity.Amount())

		if updateErr := tx.Bookings().Update(ctx, updated); updateErr != nil {
			return mapWriteErr(updateErr)
		}
		amountCents = entity.Amount().Cents()
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.publish(ctx, BookingEvent{
		Topic:       TopicBookingUpdated,
		BookingID:   bookingID,
		UserID:      userID,
		Status:      booking.StatusPending.String(),
		AmountCents: amountCents,
	})

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, userID, bookingID uuid.UUID) error {
	var cancelled bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := ownedBooking(ctx, tx, userID, bookingID)
		if readErr != nil {
			return readErr
		}
		if snap.Status == booking.StatusCancelled {
			return nil
		}

		if err := tx.Bookings().UpdateStatus(ctx, bookingID, booking.StatusCancelled); err != nil {
			return mapWriteErr(err)
		}
		if err := tx.Bookings().UpdateTransactionStatus(ctx, bookingID, booking.StatusCancelled); err != nil {
			return mapWriteErr(err)
		}
		cancelled = true
		return nil
	})
	if err != nil {
		return err
	}

	if cancelled {
		c.publish(ctx, BookingEvent{
			Topic:     TopicBookingCancelled,
			BookingID: bookingID,
			UserID:    userID,
			Status:    booking.StatusCancelled.String(),
		})
	}
	return nil
}

// buildBooking resolves the room type, finds a free room and prices the stay.
// It must run inside the enclosing transaction so the availability answer and
// the subsequent insert commit atomically.
func (c *bookingCommandsImpl) buildBooking(
	ctx context.Context,
	tx shared.Tx,
	userID uuid.UUID,
	roomTypeName string,
	stay booking.StayPeriod,
	excludeBookingID *uuid.UUID,
) (*booking.Booking, error) {
	typeSnap, err := tx.Reads().RoomTypeByName(ctx, roomTypeName)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUnknownRoomType
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	roomSnap, err := tx.Reads().FindAvailableRoom(ctx, typeSnap.ID, stay, excludeBookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNoRoomAvailable
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	roomType, err := room.NewRoomType(typeSnap.ID, typeSnap.Name, typeSnap.BasePriceCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	amount := booking.NewMoney(c.calc.CalculatePriceCents(roomType, stay))
	return booking.NewBooking(userID, roomSnap.ID, stay, amount), nil
}

func (c *bookingCommandsImpl) publish(ctx context.Context, event BookingEvent) {
	event.OccurredAt = c.clock.Now()
	if err := c.events.PublishBookingEvent(ctx, event); err != nil {
		slog.Warn("failed to publish booking event",
			"topic", event.Topic,
			"booking_id", event.BookingID.String(),
			"error", err.Error())
	}
}

// ownedBooking loads a booking only if userID owns it; everything else is
// reported as not found so existence of other users' bookings never leaks.
func ownedBooking(ctx context.Context, tx shared.Tx, userID, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := tx.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.UserID != userID {
		return nil, errs.ErrBookingNotFound
	}
	return snap, nil
}

// mapWriteErr turns storage conflicts into the domain answer: the room range
// was taken by a concurrent writer, so no room is available.
func mapWriteErr(err error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return errs.ErrNoRoomAvailable
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

package repository

import (
	"context"
	"errors"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
	pgErrCodeForeignKeyViolated = "23503"
)

// BookingRepository is the write side over bookings and transactions. All
// methods run against the DBTX they were constructed with, which inside a
// unit of work is the transaction itself.
type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking, tr *booking.Transaction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, user_id, room_id, check_in, check_out, status, total_amount_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID(), b.UserID(), b.RoomID(),
		pgconv.DateToPgtype(b.Stay().CheckIn()), pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.Status().String(), b.Amount().Cents(),
	)
	if err != nil {
		return wrapWriteErr("failed to insert booking", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO transactions (id, booking_id, amount_cents, created_at, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		tr.ID(), tr.BookingID(), tr.Amount().Cents(),
		pgconv.TimeToPgtype(tr.CreatedAt()), tr.Method().String(), tr.Status().String(),
	)
	if err != nil {
		return wrapWriteErr("failed to insert transaction", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET room_id = $2, check_in = $3, check_out = $4, total_amount_cents = $5, status = $6, updated_at = now()
		WHERE id = $1`,
		b.ID(), b.RoomID(),
		pgconv.DateToPgtype(b.Stay().CheckIn()), pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.Amount().Cents(), b.Status().String(),
	)
	if err != nil {
		return wrapWriteErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		bookingID, status.String(),
	)
	if err != nil {
		return wrapWriteErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateTransactionStatus(ctx context.Context, bookingID uuid.UUID, status booking.Status) error {
	_, err := r.db.Exec(ctx,
		`UPDATE transactions SET status = $2 WHERE booking_id = $1`,
		bookingID, status.String(),
	)
	if err != nil {
		return wrapWriteErr("failed to update transaction status", err)
	}
	return nil
}

// DeleteWithTransaction removes the dependent transaction first so the
// foreign key never sees an orphan.
func (r *BookingRepository) DeleteWithTransaction(ctx context.Context, bookingID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE booking_id = $1`, bookingID); err != nil {
		return wrapWriteErr("failed to delete transaction", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		return wrapWriteErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolated:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}

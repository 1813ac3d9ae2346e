package readstore

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewSelect = `
	SELECT b.id, b.user_id, u.username, rt.name, r.room_number,
	       b.check_in, b.check_out, b.status, b.total_amount_cents
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN rooms r ON r.id = b.room_id
	JOIN room_types rt ON rt.id = r.room_type_id`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, bookingViewSelect+` WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to fetch booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, bookingViewSelect+`
		WHERE b.user_id = $1
		ORDER BY b.check_in DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, scanErr := scanBookingView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

// FindSnapshotByID reads the raw booking row for the write side, without
// the joined view columns.
func (s *BookingReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap     shared.BookingSnapshot
		checkIn  pgtype.Date
		checkOut pgtype.Date
		status   string
	)
	err := s.db.QueryRow(ctx, `
		SELECT id, user_id, room_id, check_in, check_out, status, total_amount_cents
		FROM bookings WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.UserID, &snap.RoomID, &checkIn, &checkOut, &status, &snap.AmountCents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to fetch booking", err)
	}
	snap.CheckIn = pgconv.DateFromPgtype(checkIn)
	snap.CheckOut = pgconv.DateFromPgtype(checkOut)
	snap.Status = booking.Status(status)
	return &snap, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		view     queries.BookingView
		checkIn  pgtype.Date
		checkOut pgtype.Date
	)
	if err := row.Scan(
		&view.ID, &view.UserID, &view.Username, &view.RoomTypeName, &view.RoomNumber,
		&checkIn, &checkOut, &view.Status, &view.AmountCents,
	); err != nil {
		return nil, err
	}
	view.CheckIn = pgconv.DateFromPgtype(checkIn)
	view.CheckOut = pgconv.DateFromPgtype(checkOut)
	return &view, nil
}

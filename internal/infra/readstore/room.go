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
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (s *RoomReadStore) RoomTypeByName(ctx context.Context, name string) (*shared.RoomTypeSnapshot, error) {
	var snap shared.RoomTypeSnapshot
	err := s.db.QueryRow(ctx,
		`SELECT id, name, base_price_cents FROM room_types WHERE name = $1`, name,
	).Scan(&snap.ID, &snap.Name, &snap.BasePriceCents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to fetch room type", err)
	}
	return &snap, nil
}

// FindAvailableRoom picks the lowest-numbered room of the type with no
// active booking overlapping [checkIn, checkOut). Ranges touching at the
// boundary do not overlap: checkout day is free for the next check-in.
// excludeBookingID lets a reschedule ignore its own current reservation.
func (s *RoomReadStore) FindAvailableRoom(ctx context.Context, roomTypeID uuid.UUID, stay booking.StayPeriod, excludeBookingID *uuid.UUID) (*shared.RoomSnapshot, error) {
	var snap shared.RoomSnapshot
	err := s.db.QueryRow(ctx, `
		SELECT r.id, r.room_type_id, r.room_number
		FROM rooms r
		WHERE r.room_type_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = r.id
			  AND b.status <> 'cancelled'
			  AND ($4::uuid IS NULL OR b.id <> $4)
			  AND b.check_in < $3
			  AND b.check_out > $2
		  )
		ORDER BY r.room_number
		LIMIT 1`,
		roomTypeID,
		pgconv.DateToPgtype(stay.CheckIn()), pgconv.DateToPgtype(stay.CheckOut()),
		excludeBookingID,
	).Scan(&snap.ID, &snap.RoomTypeID, &snap.RoomNumber)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no room available", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query room availability", err)
	}
	return &snap, nil
}

func (s *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomTypeView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, base_price_cents FROM room_types ORDER BY base_price_cents`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	views := make([]*queries.RoomTypeView, 0)
	for rows.Next() {
		var view queries.RoomTypeView
		if err := rows.Scan(&view.ID, &view.Name, &view.BasePriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room type rows", err)
	}
	return views, nil
}

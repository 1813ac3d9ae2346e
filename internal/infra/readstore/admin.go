package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type AdminReadStore struct {
	db db.DBTX
}

func NewAdminReadStore(dbtx db.DBTX) *AdminReadStore {
	return &AdminReadStore{db: dbtx}
}

func (s *AdminReadStore) FindAllBookings(ctx context.Context) ([]*queries.BookingView, error) {
	return s.listBookings(ctx, bookingViewSelect+` ORDER BY b.check_in DESC`)
}

func (s *AdminReadStore) FindConfirmedBookings(ctx context.Context) ([]*queries.BookingView, error) {
	return s.listBookings(ctx, bookingViewSelect+` WHERE b.status = 'confirmed' ORDER BY b.check_in DESC`)
}

func (s *AdminReadStore) listBookings(ctx context.Context, query string) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, query)
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

func (s *AdminReadStore) FindAllTransactions(ctx context.Context) ([]*queries.TransactionView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT t.id, t.booking_id, u.username, t.amount_cents, t.created_at, t.payment_method, t.status
		FROM transactions t
		JOIN bookings b ON b.id = t.booking_id
		JOIN users u ON u.id = b.user_id
		ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	defer rows.Close()

	views := make([]*queries.TransactionView, 0)
	for rows.Next() {
		var (
			view      queries.TransactionView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.BookingID, &view.Username,
			&view.AmountCents, &createdAt, &view.PaymentMethod, &view.Status,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transaction rows", err)
	}
	return views, nil
}

func (s *AdminReadStore) FindAllUsers(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, username, email, role FROM users ORDER BY username`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := make([]*queries.UserView, 0)
	for rows.Next() {
		var view queries.UserView
		if err := rows.Scan(&view.ID, &view.Username, &view.Email, &view.Role); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return views, nil
}

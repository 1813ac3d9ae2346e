package queries

import "context"

type AdminReadStore interface {
	FindAllBookings(ctx context.Context) ([]*BookingView, error)
	FindConfirmedBookings(ctx context.Context) ([]*BookingView, error)
	FindAllTransactions(ctx context.Context) ([]*TransactionView, error)
	FindAllUsers(ctx context.Context) ([]*UserView, error)
}

// AdminQueries are the cross-user projections behind the admin dashboard.
// Pure reads, no business logic.
type AdminQueries interface {
	ListAllBookings(ctx context.Context) ([]*BookingView, error)
	ListConfirmedBookings(ctx context.Context) ([]*BookingView, error)
	ListAllTransactions(ctx context.Context) ([]*TransactionView, error)
	ListUsers(ctx context.Context) ([]*UserView, error)
}

type adminQueriesImpl struct {
	store AdminReadStore
}

func NewAdminQueries(store AdminReadStore) AdminQueries {
	return &adminQueriesImpl{store: store}
}

func (q *adminQueriesImpl) ListAllBookings(ctx context.Context) ([]*BookingView, error) {
	return q.store.FindAllBookings(ctx)
}

func (q *adminQueriesImpl) ListConfirmedBookings(ctx context.Context) ([]*BookingView, error) {
	return q.store.FindConfirmedBookings(ctx)
}

func (q *adminQueriesImpl) ListAllTransactions(ctx context.Context) ([]*TransactionView, error) {
	return q.store.FindAllTransactions(ctx)
}

func (q *adminQueriesImpl) ListUsers(ctx context.Context) ([]*UserView, error) {
	return q.store.FindAllUsers(ctx)
}

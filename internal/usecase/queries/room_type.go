package queries

import "context"

type RoomTypeReadStore interface {
	FindAll(ctx context.Context) ([]*RoomTypeView, error)
}

// RoomTypeQueries lists the catalog for booking forms.
type RoomTypeQueries interface {
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
}

type roomTypeQueriesImpl struct {
	store RoomTypeReadStore
}

func NewRoomTypeQueries(store RoomTypeReadStore) RoomTypeQueries {
	return &roomTypeQueriesImpl{store: store}
}

func (q *roomTypeQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	return q.store.FindAll(ctx)
}

//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetOwned(t *testing.T) {
	ownerID := uuid.New()
	bookingID := uuid.New()
	view := &queries.BookingView{ID: bookingID, UserID: ownerID, Status: "pending"}

	cases := []struct {
		name      string
		actorID   uuid.UUID
		setupMock func(store *queriesmock.MockBookingReadStore)
		errIs     error
	}{
		{
			name:    "owner reads own booking",
			actorID: ownerID,
			setupMock: func(store *queriesmock.MockBookingReadStore) {
				store.EXPECT().FindByID(gomock.Any(), bookingID).Return(view, nil)
			},
		},
		{
			name:    "another user's booking is indistinguishable from missing",
			actorID: uuid.New(),
			setupMock: func(store *queriesmock.MockBookingReadStore) {
				store.EXPECT().FindByID(gomock.Any(), bookingID).Return(view, nil)
			},
			errIs: errs.ErrBookingNotFound,
		},
		{
			name:    "missing booking",
			actorID: ownerID,
			setupMock: func(store *queriesmock.MockBookingReadStore) {
				store.EXPECT().FindByID(gomock.Any(), bookingID).
					Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))
			},
			errIs: errs.ErrBookingNotFound,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockBookingReadStore(ctrl)
			c.setupMock(store)

			got, err := queries.NewBookingQueries(store).GetOwned(context.Background(), c.actorID, bookingID)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestBookingQueries_GetByIDSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	view := &queries.BookingView{ID: bookingID, UserID: uuid.New()}

	store := queriesmock.NewMockBookingReadStore(ctrl)
	store.EXPECT().FindByID(gomock.Any(), bookingID).Return(view, nil)

	// System reads skip the ownership check.
	got, err := queries.NewBookingQueries(store).GetByIDSystem(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, view, got)
}

func TestBookingQueries_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	views := []*queries.BookingView{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	store := queriesmock.NewMockBookingReadStore(ctrl)
	store.EXPECT().FindByUserID(gomock.Any(), userID).Return(views, nil)

	got, err := queries.NewBookingQueries(store).ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

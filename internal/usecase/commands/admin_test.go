//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/shared"
	commandsmock "hotel-booking-api/tests/mock/commands"
	sharedmock "hotel-booking-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUoW      *sharedmock.MockUnitOfWork
	mockTx       *sharedmock.MockTx
	mockReads    *sharedmock.MockCommandReads
	mockBookings *sharedmock.MockBookingRepository
	mockEvents   *commandsmock.MockEventPublisher
	commands     commands.AdminCommands
}

func (s *AdminCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockBookings = sharedmock.NewMockBookingRepository(s.mockCtrl)
	s.mockEvents = commandsmock.NewMockEventPublisher(s.mockCtrl)

	s.mockTx.EXPECT().Reads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().Bookings().Return(s.mockBookings).AnyTimes()
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).AnyTimes()

	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewAdminCommands(s.mockUoW, s.mockEvents, clk)
}

func (s *AdminCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminCommandsSuite(t *testing.T) {
	suite.Run(t, new(AdminCommandsTestSuite))
}

func (s *AdminCommandsTestSuite) TestSetStatus() {
	bookingID := uuid.New()
	ownerID := uuid.New()
	snap := &shared.BookingSnapshot{ID: bookingID, UserID: ownerID, Status: booking.StatusPending}

	s.Run("success: booking and transaction change status in lockstep", func() {
		s.mockReads.EXPECT().BookingByID(gomock.Any(), bookingID).Return(snap, nil).Times(1)
		s.mockBookings.EXPECT().UpdateStatus(gomock.Any(), bookingID, booking.StatusConfirmed).Return(nil).Times(1)
		s.mockBookings.EXPECT().UpdateTransactionStatus(gomock.Any(), bookingID, booking.StatusConfirmed).Return(nil).Times(1)
		s.mockEvents.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event commands.BookingEvent) error {
				s.Equal(commands.TopicBookingStatusChanged, event.Topic)
				s.Equal(ownerID, event.UserID)
				s.Equal("confirmed", event.Status)
				return nil
			}).Times(1)

		s.NoError(s.commands.SetStatus(context.Background(), bookingID, "confirmed"))
	})

	s.Run("error: re-activating into a taken range surfaces as no availability", func() {
		cancelledSnap := &shared.BookingSnapshot{ID: bookingID, UserID: ownerID, Status: booking.StatusCancelled}
		s.mockReads.EXPECT().BookingByID(gomock.Any(), bookingID).Return(cancelledSnap, nil).Times(1)
		s.mockBookings.EXPECT().UpdateStatus(gomock.Any(), bookingID, booking.StatusPending).
			Return(infra.WrapRepoErr("exclusion violation", nil, infra.KindConflict)).Times(1)

		err := s.commands.SetStatus(context.Background(), bookingID, "pending")
		s.ErrorIs(err, errs.ErrNoRoomAvailable)
	})

	s.Run("error: unknown status is rejected before any read", func() {
		err := s.commands.SetStatus(context.Background(), bookingID, "approved")
		s.ErrorIs(err, errs.ErrInvalidStatus)
	})

	s.Run("error: missing booking", func() {
		s.mockReads.EXPECT().BookingByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound)).Times(1)

		err := s.commands.SetStatus(context.Background(), bookingID, "cancelled")
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}

func (s *AdminCommandsTestSuite) TestDelete() {
	bookingID := uuid.New()
	ownerID := uuid.New()
	snap := &shared.BookingSnapshot{ID: bookingID, UserID: ownerID, Status: booking.StatusCancelled}

	s.Run("success: removes the booking and its transaction", func() {
		s.mockReads.EXPECT().BookingByID(gomock.Any(), bookingID).Return(snap, nil).Times(1)
		s.mockBookings.EXPECT().DeleteWithTransaction(gomock.Any(), bookingID).Return(nil).Times(1)
		s.mockEvents.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event commands.BookingEvent) error {
				s.Equal(commands.TopicBookingDeleted, event.Topic)
				s.Equal(ownerID, event.UserID)
				return nil
			}).Times(1)

		s.NoError(s.commands.Delete(context.Background(), bookingID))
	})

	s.Run("error: missing booking", func() {
		s.mockReads.EXPECT().BookingByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound)).Times(1)

		err := s.commands.Delete(context.Background(), bookingID)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}

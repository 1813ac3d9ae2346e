//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/tests/common/builder"
	"hotel-booking-api/tests/common/httptest"
	commandsmock "hotel-booking-api/tests/mock/commands"
	queriesmock "hotel-booking-api/tests/mock/queries"
	usecasemock "hotel-booking-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// The admin routes run through the real auth middleware with a mocked token
// validator, so the role gate is exercised along with the handlers.
type AdminHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockAdminCommands
	mockQueries   *queriesmock.MockAdminQueries
	mockValidator *usecasemock.MockTokenValidator
	handler       *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockQueries)

	auth := middleware.NewAuthMiddleware(s.mockValidator)
	admin := s.router.Group("/admin", auth.RequireAuth(), auth.RequireAdmin())
	admin.GET("/bookings", s.handler.ListBookings)
	admin.PUT("/bookings/:id/status", s.handler.SetBookingStatus)
	admin.DELETE("/bookings/:id", s.handler.DeleteBooking)
	admin.GET("/transactions", s.handler.ListTransactions)
	admin.GET("/users", s.handler.ListUsers)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) expectToken(role user.Role) {
	s.mockValidator.EXPECT().ValidateToken("bearer-token").
		Return(uuid.New(), role, nil).Times(1)
}

func (s *AdminHandlerTestSuite) TestListBookings() {
	url := "/admin/bookings"

	views := []*queries.BookingView{
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().BuildView(),
	}

	s.Run("success: lists bookings of every user", func() {
		s.expectToken(user.RoleAdmin)
		s.mockQueries.EXPECT().ListAllBookings(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: status=confirmed narrows the listing", func() {
		s.expectToken(user.RoleAdmin)
		s.mockQueries.EXPECT().ListConfirmedBookings(gomock.Any()).Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=confirmed", nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 403 Forbidden for a customer token", func() {
		s.expectToken(user.RoleCustomer)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *AdminHandlerTestSuite) TestSetBookingStatus() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/status"

	s.Run("success: returns 204 No Content", func() {
		s.expectToken(user.RoleAdmin)
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), bookingID, "confirmed").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]string{"status": "confirmed"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 Unprocessable Entity for an unknown status", func() {
		s.expectToken(user.RoleAdmin)
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), bookingID, "approved").
			Return(errs.ErrInvalidStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]string{"status": "approved"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid booking status")
	})

	s.Run("error: 409 Conflict when the booking's range was retaken", func() {
		s.expectToken(user.RoleAdmin)
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), bookingID, "pending").
			Return(errs.ErrNoRoomAvailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]string{"status": "pending"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No room of this type is available")
	})

	s.Run("error: 400 Bad Request when status is missing", func() {
		s.expectToken(user.RoleAdmin)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]string{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.expectToken(user.RoleAdmin)
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), bookingID, "cancelled").
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]string{"status": "cancelled"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *AdminHandlerTestSuite) TestDeleteBooking() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.expectToken(user.RoleAdmin)
		s.mockCommands.EXPECT().Delete(gomock.Any(), bookingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		s.expectToken(user.RoleAdmin)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.expectToken(user.RoleAdmin)
		s.mockCommands.EXPECT().Delete(gomock.Any(), bookingID).
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *AdminHandlerTestSuite) TestListTransactions() {
	url := "/admin/transactions"

	views := []*queries.TransactionView{
		{ID: uuid.New(), BookingID: uuid.New(), Username: "guest", AmountCents: 20000, PaymentMethod: "Cash", Status: "pending"},
	}

	s.Run("success: lists payment transactions", func() {
		s.expectToken(user.RoleAdmin)
		s.mockQueries.EXPECT().ListAllTransactions(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(int64(20000), response[0].AmountCents)
	})

	s.Run("error: 403 Forbidden for a customer token", func() {
		s.expectToken(user.RoleCustomer)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *AdminHandlerTestSuite) TestListUsers() {
	url := "/admin/users"

	views := []*queries.UserView{
		{ID: uuid.New(), Username: "admin", Email: "admin@example.com", Role: "admin"},
		{ID: uuid.New(), Username: "guest", Email: "guest@example.com", Role: "customer"},
	}

	s.Run("success: lists registered users", func() {
		s.expectToken(user.RoleAdmin)
		s.mockQueries.EXPECT().ListUsers(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 403 Forbidden for a customer token", func() {
		s.expectToken(user.RoleCustomer)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

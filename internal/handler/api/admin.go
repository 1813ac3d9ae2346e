package api

import (
	"net/http"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
	adminQueries  queries.AdminQueries
}

func NewAdminHandler(adminCommands commands.AdminCommands, adminQueries queries.AdminQueries) *AdminHandler {
	return &AdminHandler{
		adminCommands: adminCommands,
		adminQueries:  adminQueries,
	}
}

// @Summary List all bookings
// @Description List every booking across all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	var (
		views []*queries.BookingView
		err   error
	)
	if c.Query("status") == "confirmed" {
		views, err = h.adminQueries.ListConfirmedBookings(c.Request.Context())
	} else {
		views, err = h.adminQueries.ListAllBookings(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Set booking status
// @Description Confirm, cancel or reset a booking; its transaction follows
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.SetBookingStatusRequest true "Status request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{id}/status [put]
func (h *AdminHandler) SetBookingStatus(c *gin.Context) {
	bookingID, err := parseBookingID(c)
	if err != nil {
		return
	}

	var req reqdto.SetBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminCommands.SetStatus(c.Request.Context(), bookingID, req.Status); err != nil {
		abortBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete booking
// @Description Remove a booking and its payment transaction
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [delete]
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	bookingID, err := parseBookingID(c)
	if err != nil {
		return
	}

	if err := h.adminCommands.Delete(c.Request.Context(), bookingID); err != nil {
		abortBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List transactions
// @Description List every payment transaction, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/transactions [get]
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	views, err := h.adminQueries.ListAllTransactions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransactionViews(views))
}

// @Summary List users
// @Description List all registered users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	views, err := h.adminQueries.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

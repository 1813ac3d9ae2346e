package request

type SetBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

package response

import (
	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	Username     string    `json:"username"`
	RoomTypeName string    `json:"roomType"`
	RoomNumber   string    `json:"roomNumber"`
	CheckIn      string    `json:"checkIn"`
	CheckOut     string    `json:"checkOut"`
	Status       string    `json:"status"`
	AmountCents  int64     `json:"amountCents"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	resp.CheckIn = view.CheckIn.Format(booking.DateLayout)
	resp.CheckOut = view.CheckOut.Format(booking.DateLayout)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	resp := make([]*BookingResponse, len(views))
	for i, view := range views {
		resp[i] = FromBookingView(view)
	}
	return resp
}

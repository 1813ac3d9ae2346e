package request

import "hotel-booking-api/internal/usecase/commands"

// Dates use YYYY-MM-DD; parsing and range checks happen in the usecase.
type CreateBookingRequest struct {
	RoomType      string `json:"room_type" binding:"required"`
	CheckIn       string `json:"check_in" binding:"required"`
	CheckOut      string `json:"check_out" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		RoomTypeName:  r.RoomType,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		PaymentMethod: r.PaymentMethod,
	}
}

type UpdateBookingRequest struct {
	RoomType string `json:"room_type" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

func (r UpdateBookingRequest) ToInput() commands.UpdateBookingInput {
	return commands.UpdateBookingInput{
		RoomTypeName: r.RoomType,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
	}
}

//go:build unit || e2e

package builder

import (
	"time"

	dombooking "hotel-booking-api/internal/domain/booking"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID        uuid.UUID
	RoomID        uuid.UUID
	RoomType      string
	CheckIn       string
	CheckOut      string
	PaymentMethod string
	AmountCents   int64
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		UserID:        uuid.New(),
		RoomID:        uuid.New(),
		RoomType:      "Single",
		CheckIn:       "2026-03-10",
		CheckOut:      "2026-03-12",
		PaymentMethod: "Cash",
		AmountCents:   20000,
		Now:           now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildStay() (dombooking.StayPeriod, error) {
	return dombooking.ParseStayPeriod(b.CheckIn, b.CheckOut, b.Now)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	stay, err := b.BuildStay()
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.UserID, b.RoomID, stay, dombooking.NewMoney(b.AmountCents)), nil
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	checkIn, _ := time.Parse(dombooking.DateLayout, b.CheckIn)
	checkOut, _ := time.Parse(dombooking.DateLayout, b.CheckOut)
	return &queries.BookingView{
		ID:           uuid.New(),
		UserID:       b.UserID,
		Username:     "guest",
		RoomTypeName: b.RoomType,
		RoomNumber:   "101",
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Status:       "pending",
		AmountCents:  b.AmountCents,
	}
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomType:      b.RoomType,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		PaymentMethod: b.PaymentMethod,
	}
}

func (b *BookingBuilder) BuildUpdateDTO() reqdto.UpdateBookingRequest {
	return reqdto.UpdateBookingRequest{
		RoomType: b.RoomType,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
	}
}

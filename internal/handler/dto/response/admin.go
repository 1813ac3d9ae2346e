package response

import (
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TransactionResponse struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"bookingId"`
	Username      string    `json:"username"`
	AmountCents   int64     `json:"amountCents"`
	CreatedAt     time.Time `json:"createdAt"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
}

func FromTransactionViews(views []*queries.TransactionView) []*TransactionResponse {
	resp := make([]*TransactionResponse, len(views))
	for i, view := range views {
		var tr TransactionResponse
		_ = copier.Copy(&tr, view)
		resp[i] = &tr
	}
	return resp
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	resp := make([]*UserResponse, len(views))
	for i, view := range views {
		var u UserResponse
		_ = copier.Copy(&u, view)
		resp[i] = &u
	}
	return resp
}

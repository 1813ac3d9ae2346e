package response

import (
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomTypeResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BasePriceCents int64     `json:"basePriceCents"`
}

func FromRoomTypeViews(views []*queries.RoomTypeView) []*RoomTypeResponse {
	resp := make([]*RoomTypeResponse, len(views))
	for i, view := range views {
		var rt RoomTypeResponse
		_ = copier.Copy(&rt, view)
		resp[i] = &rt
	}
	return resp
}

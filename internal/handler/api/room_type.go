package api

import (
	"net/http"

	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomTypeHandler struct {
	roomTypeQueries queries.RoomTypeQueries
}

func NewRoomTypeHandler(roomTypeQueries queries.RoomTypeQueries) *RoomTypeHandler {
	return &RoomTypeHandler{
		roomTypeQueries: roomTypeQueries,
	}
}

// @Summary List room types
// @Description List the room catalog with nightly prices
// @Tags room-types
// @Produce json
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /room-types [get]
func (h *RoomTypeHandler) ListRoomTypes(c *gin.Context) {
	views, err := h.roomTypeQueries.ListRoomTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeViews(views))
}

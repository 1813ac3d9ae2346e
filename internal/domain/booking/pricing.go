package booking

import "hotel-booking-api/internal/domain/room"

// PriceCalculator sizes the charge for a stay of a given room type.
type PriceCalculator interface {
	CalculatePriceCents(roomType *room.RoomType, stay StayPeriod) int64
}

// NightlyPriceCalculator charges the type's base price per night. The number
// of nights is the whole-day difference check-out minus check-in.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (pc *NightlyPriceCalculator) CalculatePriceCents(roomType *room.RoomType, stay StayPeriod) int64 {
	return int64(stay.Nights()) * roomType.BasePriceCents()
}

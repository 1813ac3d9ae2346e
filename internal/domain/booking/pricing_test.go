//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNightlyPriceCalculator(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	calc := booking.NewNightlyPriceCalculator()

	cases := []struct {
		name           string
		basePriceCents int64
		checkIn        string
		checkOut       string
		expected       int64
	}{
		{name: "one night single", basePriceCents: 10000, checkIn: "2026-03-10", checkOut: "2026-03-11", expected: 10000},
		{name: "two nights double", basePriceCents: 15000, checkIn: "2026-03-10", checkOut: "2026-03-12", expected: 30000},
		{name: "week in a suite", basePriceCents: 25000, checkIn: "2026-03-10", checkOut: "2026-03-17", expected: 175000},
		{name: "free room type", basePriceCents: 0, checkIn: "2026-03-10", checkOut: "2026-03-12", expected: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rt, err := room.NewRoomType(uuid.New(), "Test", c.basePriceCents)
			require.NoError(t, err)
			stay, err := booking.ParseStayPeriod(c.checkIn, c.checkOut, now)
			require.NoError(t, err)

			assert.Equal(t, c.expected, calc.CalculatePriceCents(rt, stay))
		})
	}
}

func TestRoomType(t *testing.T) {
	_, err := room.NewRoomType(uuid.New(), "  ", 10000)
	require.ErrorIs(t, err, room.ErrInvalidTypeName)

	_, err = room.NewRoomType(uuid.New(), "Single", -1)
	require.ErrorIs(t, err, room.ErrNegativePrice)

	rt, err := room.NewRoomType(uuid.New(), " Single ", 10000)
	require.NoError(t, err)
	assert.Equal(t, "Single", rt.Name())
}

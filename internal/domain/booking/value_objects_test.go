//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stayCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestStayPeriod(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		stay, err := builder.NewBookingBuilder().BuildStay()
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), stay.CheckIn())
		assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), stay.CheckOut())
		assert.Equal(t, 2, stay.Nights())
	})

	t.Run("date validation", func(t *testing.T) {
		runStayCases(t, []stayCase{
			{
				name:   "one night stay",
				mutate: func(b *builder.BookingBuilder) { b.CheckOut = "2026-03-11" },
			},
			{
				name:   "check-in equals check-out",
				mutate: func(b *builder.BookingBuilder) { b.CheckOut = "2026-03-10" },
				errIs:  booking.ErrInvalidDateRange,
			},
			{
				name: "check-out before check-in",
				mutate: func(b *builder.BookingBuilder) {
					b.CheckIn = "2026-03-12"
					b.CheckOut = "2026-03-10"
				},
				errIs: booking.ErrInvalidDateRange,
			},
			{
				name: "check-in of today is accepted",
				mutate: func(b *builder.BookingBuilder) {
					b.CheckIn = "2026-03-01"
					b.CheckOut = "2026-03-02"
				},
			},
			{
				name: "check-in before today",
				mutate: func(b *builder.BookingBuilder) {
					b.CheckIn = "2026-02-28"
					b.CheckOut = "2026-03-02"
				},
				errIs: booking.ErrCheckInInPast,
			},
			{
				name:   "malformed check-in",
				mutate: func(b *builder.BookingBuilder) { b.CheckIn = "10-03-2026" },
				errIs:  booking.ErrInvalidDateFormat,
			},
			{
				name:   "malformed check-out",
				mutate: func(b *builder.BookingBuilder) { b.CheckOut = "not-a-date" },
				errIs:  booking.ErrInvalidDateFormat,
			},
		})
	})

	t.Run("today check uses the date, not the hour", func(t *testing.T) {
		// Late in the evening a check-in of the same day must still pass.
		now := time.Date(2026, 3, 1, 23, 50, 0, 0, time.UTC)
		_, err := booking.ParseStayPeriod("2026-03-01", "2026-03-03", now)
		require.NoError(t, err)
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		stay := func(in, out string) booking.StayPeriod {
			s, err := booking.ParseStayPeriod(in, out, now)
			require.NoError(t, err)
			return s
		}

		a := stay("2026-03-10", "2026-03-15")

		assert.True(t, a.Overlaps(stay("2026-03-12", "2026-03-13")), "contained range")
		assert.True(t, a.Overlaps(stay("2026-03-08", "2026-03-11")), "left overlap")
		assert.True(t, a.Overlaps(stay("2026-03-14", "2026-03-20")), "right overlap")
		assert.True(t, a.Overlaps(stay("2026-03-08", "2026-03-20")), "covering range")

		// Back-to-back stays share a boundary day but never a night.
		assert.False(t, a.Overlaps(stay("2026-03-15", "2026-03-18")), "starts on checkout day")
		assert.False(t, a.Overlaps(stay("2026-03-05", "2026-03-10")), "ends on check-in day")
		assert.False(t, a.Overlaps(stay("2026-03-20", "2026-03-22")), "disjoint")
	})

	t.Run("nights", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

		s, err := booking.ParseStayPeriod("2026-03-10", "2026-03-11", now)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Nights())

		s, err = booking.ParseStayPeriod("2026-03-10", "2026-03-17", now)
		require.NoError(t, err)
		assert.Equal(t, 7, s.Nights())
	})
}

func TestPaymentMethod(t *testing.T) {
	for _, valid := range []string{"Cash", "GCash", "Credit Card"} {
		m, err := booking.NewPaymentMethod(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, m.String())
	}

	for _, invalid := range []string{"", "cash", "Bitcoin", "credit card"} {
		_, err := booking.NewPaymentMethod(invalid)
		require.ErrorIs(t, err, booking.ErrInvalidPaymentMethod)
	}
}

func TestMoney(t *testing.T) {
	m := booking.NewMoney(25050)
	assert.Equal(t, int64(25050), m.Cents())
	assert.InDelta(t, 250.50, m.Dollars(), 0.001)
}

func runStayCases(t *testing.T, cases []stayCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := builder.NewBookingBuilder().With(c.mutate).BuildStay()

			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

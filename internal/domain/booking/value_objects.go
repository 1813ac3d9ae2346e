package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDateRange     = errors.New("check-out date must be after check-in date")
	ErrCheckInInPast        = errors.New("check-in date cannot be in the past")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

const DateLayout = "2006-01-02"

// StayPeriod is a half-open date range [checkIn, checkOut).
// Both dates are normalized to UTC midnight.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayPeriod validates date order and rejects a check-in strictly before
// today. A check-in of today is accepted.
func NewStayPeriod(checkIn, checkOut time.Time, now time.Time) (StayPeriod, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)

	if !out.After(in) {
		return StayPeriod{}, ErrInvalidDateRange
	}
	if in.Before(truncateToDate(now)) {
		return StayPeriod{}, ErrCheckInInPast
	}

	return StayPeriod{checkIn: in, checkOut: out}, nil
}

// ParseStayPeriod builds a StayPeriod from YYYY-MM-DD strings as supplied by
// the presentation layer.
func ParseStayPeriod(checkIn, checkOut string, now time.Time) (StayPeriod, error) {
	in, err := time.ParseInLocation(DateLayout, checkIn, time.UTC)
	if err != nil {
		return StayPeriod{}, ErrInvalidDateFormat
	}
	out, err := time.ParseInLocation(DateLayout, checkOut, time.UTC)
	if err != nil {
		return StayPeriod{}, ErrInvalidDateFormat
	}
	return NewStayPeriod(in, out, now)
}

// ReconstructStayPeriod rebuilds a persisted period without the "not in the
// past" check; stored bookings legitimately start in the past.
func ReconstructStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{checkIn: truncateToDate(checkIn), checkOut: truncateToDate(checkOut)}
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

// Overlaps uses the half-open test: [a1,a2) and [b1,b2) overlap iff
// a1 < b2 AND b1 < a2.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format(DateLayout), p.checkOut.Format(DateLayout))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

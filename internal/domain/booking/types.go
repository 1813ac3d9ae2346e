package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking still occupies its room for the
// overlap check. Only cancelled bookings release their date range.
func (s Status) IsActive() bool {
	return s != StatusCancelled
}

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "Cash"
	PaymentGCash      PaymentMethod = "GCash"
	PaymentCreditCard PaymentMethod = "Credit Card"
)

func NewPaymentMethod(value string) (PaymentMethod, error) {
	switch PaymentMethod(value) {
	case PaymentCash, PaymentGCash, PaymentCreditCard:
		return PaymentMethod(value), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}

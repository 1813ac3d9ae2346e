package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is owned by one user and assigned to one physical room. It is
// created pending and moves through confirmed/cancelled via its owner or an
// administrator.
type Booking struct {
	id     uuid.UUID
	userID uuid.UUID
	roomID uuid.UUID
	stay   StayPeriod
	status Status
	amount Money
}

func NewBooking(userID, roomID uuid.UUID, stay StayPeriod, amount Money) *Booking {
	return &Booking{
		id:     uuid.New(),
		userID: userID,
		roomID: roomID,
		stay:   stay,
		status: StatusPending,
		amount: amount,
	}
}

func ReconstructBooking(id, userID, roomID uuid.UUID, stay StayPeriod, status Status, amount Money) *Booking {
	return &Booking{
		id:     id,
		userID: userID,
		roomID: roomID,
		stay:   stay,
		status: status,
		amount: amount,
	}
}

func (b *Booking) ID() uuid.UUID     { return b.id }
func (b *Booking) UserID() uuid.UUID { return b.userID }
func (b *Booking) RoomID() uuid.UUID { return b.roomID }
func (b *Booking) Stay() StayPeriod  { return b.stay }
func (b *Booking) Status() Status    { return b.status }
func (b *Booking) Amount() Money     { return b.amount }

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

// Cancel is idempotent: cancelling an already-cancelled booking reports
// false and changes nothing.
func (b *Booking) Cancel() bool {
	if b.status == StatusCancelled {
		return false
	}
	b.status = StatusCancelled
	return true
}

// Reschedule applies an owner edit: new room, new dates, new price, and the
// booking re-enters pending to restart admin approval.
func (b *Booking) Reschedule(roomID uuid.UUID, stay StayPeriod, amount Money) {
	b.roomID = roomID
	b.stay = stay
	b.amount = amount
	b.status = StatusPending
}

// Transaction records the payment intent for exactly one booking. Its status
// mirrors the booking's through lifecycle transitions.
type Transaction struct {
	id        uuid.UUID
	bookingID uuid.UUID
	amount    Money
	createdAt time.Time
	method    PaymentMethod
	status    Status
}

func NewTransaction(b *Booking, method PaymentMethod, now time.Time) *Transaction {
	return &Transaction{
		id:        uuid.New(),
		bookingID: b.ID(),
		amount:    b.Amount(),
		createdAt: now,
		method:    method,
		status:    b.Status(),
	}
}

func ReconstructTransaction(id, bookingID uuid.UUID, amount Money, createdAt time.Time, method PaymentMethod, status Status) *Transaction {
	return &Transaction{
		id:        id,
		bookingID: bookingID,
		amount:    amount,
		createdAt: createdAt,
		method:    method,
		status:    status,
	}
}

func (t *Transaction) ID() uuid.UUID         { return t.id }
func (t *Transaction) BookingID() uuid.UUID  { return t.bookingID }
func (t *Transaction) Amount() Money         { return t.amount }
func (t *Transaction) CreatedAt() time.Time  { return t.createdAt }
func (t *Transaction) Method() PaymentMethod { return t.method }
func (t *Transaction) Status() Status        { return t.status }

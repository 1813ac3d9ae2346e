package shared

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes repository work to a single database transaction.
// Booking writes must use WithinSerializable: the availability check and the
// booking insert have to commit as one atomic unit, otherwise two concurrent
// requests could both pass the check and double-book a room.
type UnitOfWork interface {
	// Within: read-committed transaction for independent writes
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: serializable transaction with retry on 40001/40P01
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: validation reads outside any transaction
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the write-side lookups commands need. Obtained through
// Tx.Reads() they observe the enclosing transaction's snapshot.
type CommandReads interface {
	RoomTypeByName(ctx context.Context, name string) (*RoomTypeSnapshot, error)
	// FindAvailableRoom returns one room of the type with no active booking
	// overlapping stay, skipping excludeBookingID's own reservation when set.
	FindAvailableRoom(ctx context.Context, roomTypeID uuid.UUID, stay booking.StayPeriod, excludeBookingID *uuid.UUID) (*RoomSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

// Write-side snapshots keep commands off the read-side view types.
type RoomTypeSnapshot struct {
	ID             uuid.UUID
	Name           string
	BasePriceCents int64
}

type RoomSnapshot struct {
	ID         uuid.UUID
	RoomTypeID uuid.UUID
	RoomNumber string
}

type BookingSnapshot struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	RoomID      uuid.UUID
	CheckIn     time.Time
	CheckOut    time.Time
	Status      booking.Status
	AmountCents int64
}

type BookingRepository interface {
	// Create inserts the booking and its payment transaction as one unit.
	Create(ctx context.Context, b *booking.Booking, tr *booking.Transaction) error
	// Update rewrites room, dates, amount and status of the booking row only;
	// the payment transaction row is deliberately untouched.
	Update(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status booking.Status) error
	UpdateTransactionStatus(ctx context.Context, bookingID uuid.UUID, status booking.Status) error
	// DeleteWithTransaction removes the transaction then the booking.
	DeleteWithTransaction(ctx context.Context, bookingID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, username user.Username, email user.Email, passwordHash string, role user.Role) (uuid.UUID, error)
}

package errs

import "errors"

// Sentinel errors shared by the usecase layers.
var (
	// Validation errors
	ErrValidation       = errors.New("validation error")
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrCheckInInPast    = errors.New("check-in date cannot be in the past")

	// Catalog errors
	ErrUnknownRoomType = errors.New("unknown room type")

	// Booking errors
	ErrNoRoomAvailable = errors.New("no rooms available for selected dates")
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidStatus   = errors.New("invalid booking status")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateUser      = errors.New("username or email already taken")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

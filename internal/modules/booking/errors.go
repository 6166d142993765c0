package booking

import (
	"errors"
	"fmt"

	"azurea/internal/domain"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNotAvailable      = errors.New("booking not available")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPaymentMismatch   = errors.New("paid amount does not match booking total")
	ErrNotFound          = errors.New("booking not found")
	ErrForbidden         = errors.New("forbidden")
)

// ConflictError carries the status of the booking that blocked an
// availability check, so the API can tell a firm reservation apart
// from a soft pending hold.
type ConflictError struct {
	Status domain.BookingStatus
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking not available: conflicts with %s booking", e.Status)
}

func (e *ConflictError) Unwrap() error { return ErrNotAvailable }

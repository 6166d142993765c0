package repository

import "errors"

var (
	// ErrNotFound hides gorm.ErrRecordNotFound from the service layer.
	ErrNotFound = errors.New("record not found")
	// ErrOverlap is returned when an insert loses the availability
	// re-check inside the booking transaction.
	ErrOverlap = errors.New("overlapping booking exists")
	// ErrDuplicate is returned on unique constraint violations, such
	// as a second review for the same booking.
	ErrDuplicate = errors.New("duplicate record")
)

package booking

import (
	"context"

	"azurea/internal/domain"
)

// BookingRepository defines the interface for booking persistence.
type BookingRepository interface {
	FindOverlapping(ctx context.Context, ref domain.ResourceRef, ivl domain.Interval, statuses []domain.BookingStatus, excludeID int64) ([]domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// Mutate loads the booking under a row lock, applies fn, and saves
	// the result if fn returns nil. Status transitions go through here
	// so two staff members cannot race the same booking.
	Mutate(ctx context.Context, id int64, fn func(b *domain.Booking) error) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	ListAll(ctx context.Context, status domain.BookingStatus, limit, offset int) ([]domain.Booking, error)
}

// ResourceRepository defines the interface for room and venue lookups.
type ResourceRepository interface {
	GetResource(ctx context.Context, ref domain.ResourceRef) (*domain.Resource, error)
}

// PaymentRecorder appends to and reads the payments ledger.
type PaymentRecorder interface {
	Record(ctx context.Context, p *domain.Payment) error
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error)
}

// NotificationSender notifies guests and staff about lifecycle events.
// All calls are best effort.
type NotificationSender interface {
	BookingRequested(ctx context.Context, b *domain.Booking)
	BookingConfirmed(ctx context.Context, b *domain.Booking)
	BookingRejected(ctx context.Context, b *domain.Booking, reason string)
	BookingCancelled(ctx context.Context, b *domain.Booking, reason string)
}

package booking

import (
	"strings"
	"time"

	"azurea/internal/domain"
	"azurea/internal/modules/pricing"
)

// The transition functions below mutate a booking in place and return
// an error without touching it when the transition is not legal from
// the current status. Callers run them inside Mutate so the check and
// the write happen under the same row lock.

// Confirm moves a pending booking to reserved.
func Confirm(b *domain.Booking, now time.Time) error {
	if b.Status != domain.BookingPending {
		return ErrInvalidTransition
	}
	b.Status = domain.BookingReserved
	b.UpdatedAt = now
	return nil
}

// Reject declines a pending booking. A non-empty reason is required.
func Reject(b *domain.Booking, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return ErrValidation
	}
	if b.Status != domain.BookingPending {
		return ErrInvalidTransition
	}
	b.Status = domain.BookingRejected
	b.Reason = reason
	b.UpdatedAt = now
	return nil
}

// CheckIn admits the guest. The amount collected at the desk must
// match the booking total exactly, compared at cent precision.
func CheckIn(b *domain.Booking, paidAmount float64, now time.Time) error {
	if b.Status != domain.BookingReserved {
		return ErrInvalidTransition
	}
	if pricing.Round2(paidAmount) != pricing.Round2(b.TotalPrice) {
		return ErrPaymentMismatch
	}
	paid := pricing.Round2(paidAmount)
	b.Status = domain.BookingCheckedIn
	b.PaidAmount = &paid
	b.UpdatedAt = now
	return nil
}

// CheckOut completes the stay.
func CheckOut(b *domain.Booking, now time.Time) error {
	if b.Status != domain.BookingCheckedIn {
		return ErrInvalidTransition
	}
	b.Status = domain.BookingCheckedOut
	b.UpdatedAt = now
	return nil
}

// MarkNoShow records that a reserved guest never arrived. The no_show
// status is terminal but the days it covered stay flagged on the
// calendar.
func MarkNoShow(b *domain.Booking, now time.Time) error {
	if b.Status != domain.BookingReserved {
		return ErrInvalidTransition
	}
	b.Status = domain.BookingNoShow
	b.UpdatedAt = now
	return nil
}

// Cancel is the guest-initiated exit, allowed only before check-in.
// A non-empty reason is required.
func Cancel(b *domain.Booking, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return ErrValidation
	}
	if b.Status != domain.BookingPending && b.Status != domain.BookingReserved {
		return ErrInvalidTransition
	}
	b.Status = domain.BookingCancelled
	b.Reason = reason
	b.CancelledAt = &now
	b.UpdatedAt = now
	return nil
}

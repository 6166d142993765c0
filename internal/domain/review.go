package domain

import "time"

// Review is a guest rating left after checkout. Creation is gated on
// the booking having reached checked_out; one review per booking.
type Review struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

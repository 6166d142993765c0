package notification

import (
	"context"
	"log"

	"azurea/internal/domain"
)

// LogNotifier writes lifecycle notifications to the application log.
// Delivery over email or push sits behind this boundary; swapping the
// implementation does not touch the booking flow.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) BookingRequested(_ context.Context, b *domain.Booking) {
	log.Printf("notify booking_requested booking_id=%d user_id=%d start=%s end=%s total=%.2f",
		b.ID, b.UserID, b.StartTime.Format("2006-01-02 15:04"), b.EndTime.Format("2006-01-02 15:04"), b.TotalPrice)
}

func (n *LogNotifier) BookingConfirmed(_ context.Context, b *domain.Booking) {
	log.Printf("notify booking_confirmed booking_id=%d user_id=%d", b.ID, b.UserID)
}

func (n *LogNotifier) BookingRejected(_ context.Context, b *domain.Booking, reason string) {
	log.Printf("notify booking_rejected booking_id=%d user_id=%d reason=%q", b.ID, b.UserID, reason)
}

func (n *LogNotifier) BookingCancelled(_ context.Context, b *domain.Booking, reason string) {
	log.Printf("notify booking_cancelled booking_id=%d user_id=%d reason=%q", b.ID, b.UserID, reason)
}

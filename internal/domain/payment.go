package domain

import "time"

type PaymentKind string

const PaymentKindBooking PaymentKind = "booking"

// PaymentCompleted is the only status written today. Payments are
// recorded at check-in, after the money has already changed hands.
const PaymentCompleted = "completed"

// Payment is a ledger row recording money received against a booking,
// written when a guest checks in. Processing the payment itself happens
// outside this system; only the recorded amount lives here.
type Payment struct {
	ID        int64       `json:"id"`
	BookingID int64       `json:"booking_id"`
	UserID    int64       `json:"user_id"`
	Kind      PaymentKind `json:"kind"`
	Amount    float64     `json:"amount"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

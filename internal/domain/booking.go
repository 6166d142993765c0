package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingReserved   BookingStatus = "reserved"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
	BookingRejected   BookingStatus = "rejected"
	BookingNoShow     BookingStatus = "no_show"
)

// Occupies reports whether a booking in this status blocks its resource
// for the booking interval. A pending booking is a soft hold but still
// counts, so two racing requests cannot both confirm the same nights.
func (s BookingStatus) Occupies() bool {
	switch s {
	case BookingPending, BookingReserved, BookingCheckedIn:
		return true
	case BookingCheckedOut, BookingCancelled, BookingRejected, BookingNoShow:
		return false
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingCheckedOut, BookingCancelled, BookingRejected, BookingNoShow:
		return true
	case BookingPending, BookingReserved, BookingCheckedIn:
		return false
	}
	return false
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingReserved, BookingCheckedIn,
		BookingCheckedOut, BookingCancelled, BookingRejected, BookingNoShow:
		return true
	}
	return false
}

// OccupancyHolding lists the statuses that block overlapping bookings.
func OccupancyHolding() []BookingStatus {
	return []BookingStatus{BookingPending, BookingReserved, BookingCheckedIn}
}

type Booking struct {
	ID             int64         `json:"id"`
	UserID         int64         `json:"user_id"`
	RoomID         *int64        `json:"room_id,omitempty"`
	AreaID         *int64        `json:"area_id,omitempty"`
	IsVenueBooking bool          `json:"is_venue_booking"`
	StartTime      time.Time     `json:"start_time"`
	EndTime        time.Time     `json:"end_time"`
	Status         BookingStatus `json:"status"`
	Reason         string        `json:"reason,omitempty"`
	TotalPrice     float64       `json:"total_price"`
	PaidAmount     *float64      `json:"paid_amount,omitempty"`
	SpecialRequest string        `json:"special_request,omitempty"`
	CancelledAt    *time.Time    `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Interval returns the booked range as a half-open interval.
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// Resource returns the reference of the room or venue this booking holds.
func (b *Booking) Resource() ResourceRef {
	if b.IsVenueBooking && b.AreaID != nil {
		return ResourceRef{Kind: ResourceVenue, ID: *b.AreaID}
	}
	if b.RoomID != nil {
		return ResourceRef{Kind: ResourceRoom, ID: *b.RoomID}
	}
	return ResourceRef{}
}

// DayStatus classifies a single calendar day of a resource for display.
type DayStatus string

const (
	DayOccupied  DayStatus = "occupied"
	DayReserved  DayStatus = "reserved"
	DayPending   DayStatus = "pending"
	DayNoShow    DayStatus = "no_show"
	DayPast      DayStatus = "past"
	DayAvailable DayStatus = "available"
)

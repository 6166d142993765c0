package availability

import (
	"context"
	"time"

	"azurea/internal/domain"
)

// BookingSource is the slice of the booking store the index needs:
// bookings for one resource whose status is in the given set and whose
// interval overlaps the probe, optionally excluding one booking id.
type BookingSource interface {
	FindOverlapping(ctx context.Context, ref domain.ResourceRef, ivl domain.Interval, statuses []domain.BookingStatus, excludeID int64) ([]domain.Booking, error)
}

// Index answers the two calendar questions: can this interval be
// booked, and how should a single day render.
type Index struct {
	bookings BookingSource
	clock    domain.Clock
}

func NewIndex(bookings BookingSource, clock domain.Clock) *Index {
	return &Index{bookings: bookings, clock: clock}
}

// Conflicts returns the occupancy-holding bookings overlapping the
// interval on the given resource. excludeID skips the booking being
// modified, so rescheduling never conflicts with itself.
func (ix *Index) Conflicts(ctx context.Context, ref domain.ResourceRef, ivl domain.Interval, excludeID int64) ([]domain.Booking, error) {
	return ix.bookings.FindOverlapping(ctx, ref, ivl, domain.OccupancyHolding(), excludeID)
}

// IsAvailable reports whether no occupancy-holding booking overlaps the
// interval. Back-to-back bookings pass: the half-open interval rule
// means a 12:00 checkout and a 12:00 check-in on the same day coexist.
func (ix *Index) IsAvailable(ctx context.Context, ref domain.ResourceRef, ivl domain.Interval, excludeID int64) (bool, error) {
	conflicts, err := ix.Conflicts(ctx, ref, ivl, excludeID)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}

// ClassifyDay resolves the display status of one calendar day.
// Precedence is fixed: a guest physically present (checked_in) outranks
// a reservation, which outranks soft holds. Days strictly before today
// are past; today itself classifies as available.
func (ix *Index) ClassifyDay(ctx context.Context, ref domain.ResourceRef, day time.Time) (domain.DayStatus, error) {
	day = domain.Midnight(day)
	probe := domain.Interval{Start: day, End: day.Add(24 * time.Hour)}

	statuses := append(domain.OccupancyHolding(), domain.BookingNoShow)
	covering, err := ix.bookings.FindOverlapping(ctx, ref, probe, statuses, 0)
	if err != nil {
		return "", err
	}

	var hasReserved, hasPending, hasNoShow bool
	for _, b := range covering {
		switch b.Status {
		case domain.BookingCheckedIn:
			return domain.DayOccupied, nil
		case domain.BookingReserved:
			hasReserved = true
		case domain.BookingPending:
			hasPending = true
		case domain.BookingNoShow:
			hasNoShow = true
		}
	}

	switch {
	case hasReserved:
		return domain.DayReserved, nil
	case hasPending:
		return domain.DayPending, nil
	case hasNoShow:
		return domain.DayNoShow, nil
	case day.Before(ix.clock.Today()):
		return domain.DayPast, nil
	}
	return domain.DayAvailable, nil
}

// ClassifyRange classifies each day in [from, to] inclusive, for
// calendar month views.
func (ix *Index) ClassifyRange(ctx context.Context, ref domain.ResourceRef, from, to time.Time) ([]DayClassification, error) {
	from = domain.Midnight(from)
	to = domain.Midnight(to)

	out := make([]DayClassification, 0)
	for day := from; !day.After(to); day = day.Add(24 * time.Hour) {
		st, err := ix.ClassifyDay(ctx, ref, day)
		if err != nil {
			return nil, err
		}
		out = append(out, DayClassification{
			Date:   day.Format("2006-01-02"),
			Status: st,
		})
	}
	return out, nil
}

type DayClassification struct {
	Date   string           `json:"date"`
	Status domain.DayStatus `json:"status"`
}

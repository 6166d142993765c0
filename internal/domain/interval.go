package domain

import "time"

// Interval is a half-open time range [Start, End). Back-to-back
// intervals (one ends exactly when the next starts) do not overlap,
// which is what lets a same-day checkout/check-in pair share a room.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (i Interval) Valid() bool {
	return i.End.After(i.Start)
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Nights is the billable night count: ceiling of the elapsed days,
// never less than 1. A 25-hour stay bills as 2 nights.
func (i Interval) Nights() int {
	return ceilUnits(i.End.Sub(i.Start), 24*time.Hour)
}

// Hours is the billable hour count: ceiling of the elapsed hours,
// never less than 1. A 61-minute slot bills as 2 hours.
func (i Interval) Hours() int {
	return ceilUnits(i.End.Sub(i.Start), time.Hour)
}

func ceilUnits(d, unit time.Duration) int {
	if d <= 0 {
		return 1
	}
	n := int(d / unit)
	if d%unit != 0 {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

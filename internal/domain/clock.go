package domain

import "time"

// Clock abstracts the current time so day classification and transition
// timestamps stay deterministic under test.
type Clock interface {
	Now() time.Time
	// Today is the start of the current calendar day in UTC.
	Today() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

func (SystemClock) Today() time.Time {
	return Midnight(time.Now().UTC())
}

// Midnight truncates an instant to the start of its UTC calendar day.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

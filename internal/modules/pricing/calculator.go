package pricing

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"azurea/internal/domain"
)

var ErrBadRate = errors.New("unparsable rate")

// PriceFor derives the total charge for booking a resource over an
// interval: nights times the nightly rate for rooms, hours times the
// hourly rate for venues. Partial units always bill as whole units.
func PriceFor(res *domain.Resource, ivl domain.Interval) float64 {
	var units int
	switch res.Kind {
	case domain.ResourceVenue:
		units = ivl.Hours()
	default:
		units = ivl.Nights()
	}
	return Round2(res.Rate * float64(units))
}

// Round2 rounds a monetary amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseRate extracts a numeric rate from a currency-formatted string
// such as "₱2,500.00". Everything that is not a digit or a decimal
// point is stripped before parsing. Input that still fails to parse is
// an error; callers must not price anything off a rate they could not
// read.
func ParseRate(s string) (float64, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, ErrBadRate
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrBadRate
	}
	return v, nil
}

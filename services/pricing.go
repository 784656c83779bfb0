package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateOnly truncates a timestamp to midnight in its own location. Check-in and
// check-out carry date-only semantics; all interval math goes through this.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Nights counts calendar days between check-in and check-out. The dates are
// compared as calendar dates rather than wall-clock durations, so a stay
// crossing a daylight-saving transition still charges a night per date.
func Nights(checkIn, checkOut time.Time) int {
	return dayNumber(checkOut) - dayNumber(checkIn)
}

// dayNumber maps a timestamp to its calendar day counted from the Unix epoch.
// Noon UTC keeps the division away from day boundaries.
func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Unix() / 86400)
}

// TotalPrice is nights × nightly price at booking time, in fixed-point
// decimal. Negative or zero ranges price to zero; callers reject those before
// persisting anything.
func TotalPrice(checkIn, checkOut time.Time, nightly decimal.Decimal) decimal.Decimal {
	n := Nights(checkIn, checkOut)
	if n < 0 {
		n = 0
	}
	return nightly.Mul(decimal.NewFromInt(int64(n)))
}

package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(day(2025, 3, 1), day(2025, 3, 4)))
	assert.Equal(t, 1, Nights(day(2025, 3, 1), day(2025, 3, 2)))
	assert.Equal(t, 0, Nights(day(2025, 3, 1), day(2025, 3, 1)))
	assert.Equal(t, -1, Nights(day(2025, 3, 2), day(2025, 3, 1)))
}

// A stay spanning the spring-forward transition is 71 wall-clock hours but
// still three calendar nights.
func TestNightsAcrossDSTTransition(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	in := time.Date(2025, 3, 29, 0, 0, 0, 0, berlin)
	out := time.Date(2025, 4, 1, 0, 0, 0, 0, berlin)
	assert.Equal(t, 3, Nights(in, out))

	// and the autumn fall-back (73 wall-clock hours) is still three nights
	in = time.Date(2025, 10, 25, 0, 0, 0, 0, berlin)
	out = time.Date(2025, 10, 28, 0, 0, 0, 0, berlin)
	assert.Equal(t, 3, Nights(in, out))
}

func TestNightsIgnoresTimeOfDay(t *testing.T) {
	in := time.Date(2025, 3, 1, 23, 30, 0, 0, time.UTC)
	out := time.Date(2025, 3, 4, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 3, Nights(in, out))
}

func TestTotalPrice(t *testing.T) {
	nightly := decimal.NewFromInt(1000)

	got := TotalPrice(day(2025, 3, 1), day(2025, 3, 4), nightly)
	assert.True(t, got.Equal(decimal.NewFromInt(3000)), "got %s", got)

	// non-integer nightly price stays exact
	got = TotalPrice(day(2025, 3, 1), day(2025, 3, 4), decimal.RequireFromString("99.95"))
	assert.Equal(t, "299.85", got.StringFixed(2))
}

func TestTotalPriceClampsInvertedRange(t *testing.T) {
	got := TotalPrice(day(2025, 3, 4), day(2025, 3, 1), decimal.NewFromInt(1000))
	assert.True(t, got.IsZero())
}

func TestValidateStayDates(t *testing.T) {
	assert.NoError(t, ValidateStayDates(day(2025, 3, 1), day(2025, 3, 4)))

	assert.ErrorIs(t, ValidateStayDates(time.Time{}, day(2025, 3, 4)), ErrMissingDates)
	assert.ErrorIs(t, ValidateStayDates(day(2025, 3, 1), time.Time{}), ErrMissingDates)
	assert.ErrorIs(t, ValidateStayDates(time.Time{}, time.Time{}), ErrMissingDates)

	// zero-length and inverted stays are both rejected
	assert.ErrorIs(t, ValidateStayDates(day(2025, 3, 1), day(2025, 3, 1)), ErrInvalidDateRange)
	assert.ErrorIs(t, ValidateStayDates(day(2025, 3, 4), day(2025, 3, 1)), ErrInvalidDateRange)
}

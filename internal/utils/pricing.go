package utils

import (
	"fmt"
	"time"

	"edufleet-backend/internal/domain"
)

// CeilHours returns the duration between start and end rounded up to
// whole hours. A half-hour rental bills as one hour. Callers must ensure
// end is after start.
func CeilHours(start, end time.Time) int64 {
	d := end.Sub(start)
	hours := int64(d / time.Hour)
	if d%time.Hour > 0 {
		hours++
	}
	return hours
}

// RentalPriceCents computes the cost of renting from start to end at the
// given hourly rate. Duration rounds up to whole hours; no minimum or
// maximum duration is enforced.
func RentalPriceCents(start, end time.Time, pricePerHourCents int64) (int64, error) {
	if !end.After(start) {
		return 0, fmt.Errorf("%w: rental end must be after rental start", domain.ErrValidation)
	}
	return CeilHours(start, end) * pricePerHourCents, nil
}

package domain

import "time"

// DurationDays returns the whole number of days between start and end,
// dropping any fractional time of day. The result is negative when end
// precedes start; callers own that precondition.
func DurationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// PriceFor computes the amount owed for running an ad in the given space
// for durationDays. Up to a week the daily rate applies; up to a month the
// weekly rate is prorated by fractional weeks; beyond that the monthly
// rate is prorated by fractional 30-day months. No rounding is applied.
func PriceFor(space AdSpace, durationDays int) float64 {
	days := float64(durationDays)
	switch {
	case durationDays <= 7:
		return space.PricePerDay * days
	case durationDays <= 30:
		return space.PricePerWeek * days / 7
	default:
		return space.PricePerMonth * days / 30
	}
}

package booking

import (
	"math"
	"time"
)

// DaysRented computes the inclusive rental duration in days: the raw
// difference plus one day, rounded up, so a same-day rental counts as 1.
// Returns 0 when end precedes start.
func DaysRented(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	days := math.Ceil((end.Sub(start).Hours() + 24) / 24)
	return int(days)
}

// TotalPrice is the rental price for the given duration and daily rate.
func TotalPrice(daysRented int, rentRate float64) float64 {
	return float64(daysRented) * rentRate
}

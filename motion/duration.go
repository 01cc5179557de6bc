// Package motion holds the pure math that drives flipdeck's animations:
// travel-time calculation, a 1-D position tracker and eased timelines.
package motion

import (
	"math"
	"strconv"
)

// Duration returns the seconds needed to travel distance pixels at speed
// pixels per second. Inputs are coerced rather than rejected: speed is
// floored at 1 to keep the division sane, and the quotient is floored at
// 0.1s so even tiny moves stay visible. The result is rounded
// half-away-from-zero to two decimals.
func Duration(distance, speed float64) float64 {
	if speed < 1 {
		speed = 1
	}
	raw := distance / speed
	if raw < 0.1 {
		raw = 0.1
	}
	return math.Round(raw*100) / 100
}

// FormatSeconds renders a duration as a display string like "0.7s" or "2s",
// using the shortest decimal form that round-trips.
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64) + "s"
}

package attendance

import (
	"fmt"
	"math"
	"time"
)

// floorEpsilon absorbs binary representation error, e.g. 2.3-2 = 0.2999...
const floorEpsilon = 1e-9

// WorkingHoursBetween returns checkOut - checkIn in fractional hours.
// There is no calendar-day wraparound.
func WorkingHoursBetween(checkIn, checkOut time.Time) float64 {
	return checkOut.Sub(checkIn).Hours()
}

// FormatDuration renders fractional hours for display only:
// "45s" under a minute, "30m" under an hour, otherwise "8h 45m".
// Remainders are floored. Non-positive or non-finite input renders "0m".
func FormatDuration(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return "0m"
	}

	whole := math.Floor(hours)
	frac := hours - whole
	minutes := min(int(math.Floor(frac*60+floorEpsilon)), 59)

	if whole == 0 {
		if minutes == 0 {
			seconds := min(int(math.Floor(frac*3600+floorEpsilon)), 59)
			return fmt.Sprintf("%ds", seconds)
		}
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", int(whole), minutes)
}

package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/calendar"
)

// Fixed business thresholds.
const (
	LateThresholdHour   = 10
	LateThresholdMinute = 30
	FullDayHours        = 8.0
)

// IsLate reports whether checkIn is strictly after 10:30 local time.
// Seconds are ignored, so 10:30:59 is still on time.
func IsLate(checkIn time.Time, loc *time.Location) bool {
	if loc != nil {
		checkIn = checkIn.In(loc)
	}
	hour, minute := checkIn.Hour(), checkIn.Minute()
	return hour > LateThresholdHour || (hour == LateThresholdHour && minute > LateThresholdMinute)
}

// ProvisionalStatus is the status written at check-in, before working hours are known.
func ProvisionalStatus(checkIn time.Time, loc *time.Location) Status {
	if IsLate(checkIn, loc) {
		return StatusLate
	}
	return StatusPresent
}

// FinalStatus is the authoritative status written at check-out.
// A short day is HALF_DAY even when the employee was also late.
func FinalStatus(checkIn time.Time, workingHours float64, loc *time.Location) Status {
	if workingHours < FullDayHours {
		return StatusHalfDay
	}
	if IsLate(checkIn, loc) {
		return StatusLate
	}
	return StatusPresent
}

// DisplayStatusFor resolves what a calendar cell shows for date.
// Precedence: HOLIDAY, then the stored status, then ABSENT for a past
// working day without a record, else NONE.
func DisplayStatusFor(date calendar.Date, record *Attendance, today calendar.Date) Status {
	if calendar.IsHoliday(date) {
		return StatusHoliday
	}
	if record != nil {
		return record.Status
	}
	if date.Before(today) {
		return StatusAbsent
	}
	return StatusNone
}

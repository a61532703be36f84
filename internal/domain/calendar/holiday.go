package calendar

import "time"

// Reasons returned by HolidayReason.
const (
	ReasonSunday         = "sunday"
	ReasonSecondSaturday = "second_saturday"
)

// IsHoliday reports whether d is a non-working day: every Sunday, and the
// second Saturday of each month. It is cheap and must not be cached; the
// answer depends on d's month.
func IsHoliday(d Date) bool {
	return HolidayReason(d) != ""
}

// HolidayReason returns why d is a holiday, or "" for a working day.
func HolidayReason(d Date) string {
	switch d.Weekday() {
	case time.Sunday:
		return ReasonSunday
	case time.Saturday:
		// Count Saturdays from the 1st up to and including d.
		saturdays := 0
		for day := 1; day <= d.Day; day++ {
			if New(d.Year, d.Month, day).Weekday() == time.Saturday {
				saturdays++
			}
		}
		if saturdays == 2 {
			return ReasonSecondSaturday
		}
	}
	return ""
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// HolidaysInMonth lists the holidays of month in ascending order.
func HolidaysInMonth(year int, month time.Month) []Date {
	var holidays []Date
	for day := 1; day <= DaysInMonth(year, month); day++ {
		d := Date{Year: year, Month: month, Day: day}
		if IsHoliday(d) {
			holidays = append(holidays, d)
		}
	}
	return holidays
}

// WorkingDaysInMonth is DaysInMonth minus the holidays.
func WorkingDaysInMonth(year int, month time.Month) int {
	return DaysInMonth(year, month) - len(HolidaysInMonth(year, month))
}

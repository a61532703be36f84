package attendance

import (
	"math"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/calendar"
)

// Breakdown is the monthly aggregate for one employee.
type Breakdown struct {
	Month            int `json:"month"`
	Year             int `json:"year"`
	Present          int `json:"present"`
	Absent           int `json:"absent"`
	Late             int `json:"late"`
	HalfDay          int `json:"half_day"`
	Leave            int `json:"leave"`
	Holidays         int `json:"holidays"`
	TotalDays        int `json:"total_days"`
	TotalWorkingDays int `json:"total_working_days"`
	AttendanceRate   int `json:"attendance_rate"`
}

// Aggregate folds one employee's records into the breakdown of month/year.
// Records outside the month are ignored. A working day before today with
// no record counts as absent. LATE is reported but never changes the
// working-day denominator.
func Aggregate(records []Attendance, month time.Month, year int, today calendar.Date) Breakdown {
	b := Breakdown{
		Month:     int(month),
		Year:      year,
		TotalDays: calendar.DaysInMonth(year, month),
	}

	recorded := make(map[calendar.Date]bool, len(records))
	for _, r := range records {
		if !r.Date.InMonth(year, month) {
			continue
		}
		recorded[r.Date] = true

		switch r.Status {
		case StatusPresent:
			b.Present++
		case StatusAbsent:
			b.Absent++
		case StatusLate:
			b.Late++
		case StatusHalfDay:
			b.HalfDay++
		case StatusLeave:
			b.Leave++
		}
	}

	for day := 1; day <= b.TotalDays; day++ {
		d := calendar.Date{Year: year, Month: month, Day: day}
		if calendar.IsHoliday(d) {
			b.Holidays++
			continue
		}
		if !recorded[d] && d.Before(today) {
			b.Absent++
		}
	}

	b.TotalWorkingDays = b.TotalDays - b.Holidays
	if b.TotalWorkingDays > 0 {
		b.AttendanceRate = int(math.Round(100 * float64(b.Present) / float64(b.TotalWorkingDays)))
	}
	return b
}

package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/calendar"
)

// Attendance is the single record of one employee on one calendar day.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         calendar.Date
	CheckIn      *time.Time
	CheckOut     *time.Time
	WorkingHours *float64
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

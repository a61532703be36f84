package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"
)

// ========================================
// TRANSITION DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string  `json:"-"`
	Timestamp  *string `json:"timestamp,omitempty"` // RFC3339, operator corrections only

	// Set by the handler when the caller may supply Timestamp
	AllowTimestamp bool `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	return validateTransition(r.EmployeeID, r.Timestamp, r.AllowTimestamp)
}

// At resolves the requested instant, defaulting to now.
func (r *CheckInRequest) At(now time.Time) time.Time {
	return resolveTimestamp(r.Timestamp, now)
}

type CheckOutRequest struct {
	EmployeeID string  `json:"-"`
	Timestamp  *string `json:"timestamp,omitempty"` // RFC3339, operator corrections only

	AllowTimestamp bool `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	return validateTransition(r.EmployeeID, r.Timestamp, r.AllowTimestamp)
}

func (r *CheckOutRequest) At(now time.Time) time.Time {
	return resolveTimestamp(r.Timestamp, now)
}

func validateTransition(employeeID string, timestamp *string, allowTimestamp bool) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if timestamp != nil {
		if !allowTimestamp {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp may only be supplied by a manager",
			})
		} else if _, valid := validator.IsValidDateTime(*timestamp); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be an RFC3339 date-time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func resolveTimestamp(timestamp *string, now time.Time) time.Time {
	if timestamp == nil {
		return now
	}
	t, valid := validator.IsValidDateTime(*timestamp)
	if !valid {
		return now
	}
	return t
}

type AttendanceResponse struct {
	ID                  string   `json:"id"`
	EmployeeID          string   `json:"employee_id"`
	EmployeeName        string   `json:"employee_name,omitempty"`
	Date                string   `json:"date"`
	CheckInTime         *string  `json:"check_in_time,omitempty"`
	CheckOutTime        *string  `json:"check_out_time,omitempty"`
	WorkingHours        *float64 `json:"working_hours,omitempty"`
	WorkingHoursDisplay *string  `json:"working_hours_display,omitempty"`
	Status              string   `json:"status"`
	State               string   `json:"state"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

type TodayResponse struct {
	Date                string              `json:"date"`
	IsHoliday           bool                `json:"is_holiday"`
	State               string              `json:"state"`
	CanCheckIn          bool                `json:"can_check_in"`
	CanCheckOut         bool                `json:"can_check_out"`
	WorkingHoursDisplay string              `json:"working_hours_display"`
	Attendance          *AttendanceResponse `json:"attendance,omitempty"`
}

// ========================================
// MONTHLY DTOs
// ========================================

type BreakdownRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *BreakdownRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 1970 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1970 and 9999",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BreakdownResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Breakdown
}

type CalendarDay struct {
	Date                string  `json:"date"`
	Weekday             string  `json:"weekday"`
	IsHoliday           bool    `json:"is_holiday"`
	Status              *string `json:"status,omitempty"` // stored status, if any
	DisplayStatus       string  `json:"display_status"`
	CheckInTime         *string `json:"check_in_time,omitempty"`
	CheckOutTime        *string `json:"check_out_time,omitempty"`
	WorkingHoursDisplay *string `json:"working_hours_display,omitempty"`
}

type MonthlyCalendarResponse struct {
	EmployeeID   string        `json:"employee_id"`
	EmployeeCode string        `json:"employee_code"`
	EmployeeName string        `json:"employee_name"`
	Month        int           `json:"month"`
	Year         int           `json:"year"`
	Days         []CalendarDay `json:"days"`
	Breakdown    Breakdown     `json:"breakdown"`
}

// ========================================
// ADMINISTRATIVE DTOs
// ========================================

type ListRecordsRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
}

// maxListRangeDays bounds ListRecords to roughly one year.
const maxListRangeDays = 366

func (r *ListRecordsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startErr := calendar.Parse(r.StartDate)
	if startErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endErr := calendar.Parse(r.EndDate)
	if endErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startErr == nil && endErr == nil {
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		} else if start.AddDays(maxListRangeDays).Before(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "date range must not exceed 366 days",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ManualEntryRequest for admin/manager to assert a day's record directly.
// This replaces whatever was stored for that day.
type ManualEntryRequest struct {
	EmployeeID   string  `json:"-"`
	Date         string  `json:"-"`                        // YYYY-MM-DD, from the URL
	Status       string  `json:"status"`                   // PRESENT, LATE, HALF_DAY, ABSENT, LEAVE
	CheckInTime  *string `json:"check_in_time,omitempty"`  // RFC3339
	CheckOutTime *string `json:"check_out_time,omitempty"` // RFC3339
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, err := ParseStatus(r.Status); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(storableStatusNames(), ", "),
		})
	}

	if r.CheckInTime != nil {
		if _, valid := validator.IsValidDateTime(*r.CheckInTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be an RFC3339 date-time",
			})
		}
	}

	if r.CheckOutTime != nil {
		if _, valid := validator.IsValidDateTime(*r.CheckOutTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be an RFC3339 date-time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func storableStatusNames() []string {
	names := make([]string, 0, len(storableStatuses))
	for _, s := range storableStatuses {
		names = append(names, string(s))
	}
	return names
}

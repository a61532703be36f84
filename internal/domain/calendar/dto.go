package calendar

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"
)

type HolidayResponse struct {
	Date      Date   `json:"date"`
	Weekday   string `json:"weekday"`
	IsHoliday bool   `json:"is_holiday"`
	Reason    string `json:"reason,omitempty"`
}

type MonthRequest struct {
	Year  int
	Month int
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: ErrInvalidMonth.Error(),
		})
	}

	if r.Year < 1970 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: ErrInvalidYear.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthResponse struct {
	Year             int               `json:"year"`
	Month            int               `json:"month"`
	TotalDays        int               `json:"total_days"`
	TotalHolidays    int               `json:"total_holidays"`
	TotalWorkingDays int               `json:"total_working_days"`
	Holidays         []HolidayResponse `json:"holidays"`
}

// NewHolidayResponse classifies d.
func NewHolidayResponse(d Date) HolidayResponse {
	reason := HolidayReason(d)
	return HolidayResponse{
		Date:      d,
		Weekday:   d.Weekday().String(),
		IsHoliday: reason != "",
		Reason:    reason,
	}
}

// NewMonthResponse summarizes the holidays of a month.
func NewMonthResponse(year int, month time.Month) MonthResponse {
	holidays := HolidaysInMonth(year, month)
	items := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		items = append(items, NewHolidayResponse(h))
	}

	return MonthResponse{
		Year:             year,
		Month:            int(month),
		TotalDays:        DaysInMonth(year, month),
		TotalHolidays:    len(holidays),
		TotalWorkingDays: WorkingDaysInMonth(year, month),
		Holidays:         items,
	}
}

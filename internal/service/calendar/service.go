package calendar

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/calendar"
)

type CalendarServiceImpl struct{}

func NewCalendarService() calendar.CalendarService {
	return &CalendarServiceImpl{}
}

// ClassifyDate implements calendar.CalendarService.
func (c *CalendarServiceImpl) ClassifyDate(ctx context.Context, date string) (calendar.HolidayResponse, error) {
	d, err := calendar.Parse(date)
	if err != nil {
		return calendar.HolidayResponse{}, err
	}
	return calendar.NewHolidayResponse(d), nil
}

// GetMonth implements calendar.CalendarService.
func (c *CalendarServiceImpl) GetMonth(ctx context.Context, req calendar.MonthRequest) (calendar.MonthResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.MonthResponse{}, err
	}
	return calendar.NewMonthResponse(req.Year, time.Month(req.Month)), nil
}

package calendar

import "context"

// CalendarService answers holiday questions for the surrounding application.
type CalendarService interface {
	// ClassifyDate reports whether a "YYYY-MM-DD" date is a holiday
	ClassifyDate(ctx context.Context, date string) (HolidayResponse, error)

	// GetMonth lists holidays and working-day totals of a month
	GetMonth(ctx context.Context, req MonthRequest) (MonthResponse, error)
}

package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens the employee's record for today
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the employee's open record for today
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetToday returns today's state for the "working hours" widget
	GetToday(ctx context.Context, employeeID string) (TodayResponse, error)

	// GetMonthlyBreakdown aggregates one employee's month
	GetMonthlyBreakdown(ctx context.Context, req BreakdownRequest) (BreakdownResponse, error)

	// GetMonthlyCalendar returns one row per day with display precedence applied
	GetMonthlyCalendar(ctx context.Context, req BreakdownRequest) (MonthlyCalendarResponse, error)

	// ListRecords returns stored records of an employee in a date range
	ListRecords(ctx context.Context, req ListRecordsRequest) ([]AttendanceResponse, error)

	// UpsertManual replaces a day's record (admin/manager) - for fixing wrong data
	UpsertManual(ctx context.Context, req ManualEntryRequest) (AttendanceResponse, error)

	// DeleteAttendance removes a day's record (admin/manager)
	DeleteAttendance(ctx context.Context, employeeID string, date string) error

	// CloseStaleSessions checks out records left open on previous days
	CloseStaleSessions(ctx context.Context) (int, error)
}

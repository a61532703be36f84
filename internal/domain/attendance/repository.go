package attendance

import (
	"context"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/calendar"
)

// AttendanceRepository defines data access methods for attendance records.
// (employee_id, date) is unique; every write below respects it atomically.
type AttendanceRepository interface {
	// CreateCheckIn inserts the day's record, or claims an existing record
	// that has no check-in yet. created is false when the day already has a
	// check-in; no row is written in that case.
	CreateCheckIn(ctx context.Context, attendance Attendance) (saved Attendance, created bool, err error)

	// GetByEmployeeAndDate returns nil, nil when the day has no record
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date calendar.Date) (*Attendance, error)

	// GetByEmployeeAndDateForUpdate is GetByEmployeeAndDate holding a row lock
	// until the surrounding transaction ends
	GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date calendar.Date) (*Attendance, error)

	// CompleteCheckOut writes check-out, working hours and final status to an open record
	CompleteCheckOut(ctx context.Context, attendance Attendance) (Attendance, error)

	// Upsert fully replaces the day's record, creating it when absent
	Upsert(ctx context.Context, attendance Attendance) (Attendance, error)

	Delete(ctx context.Context, employeeID string, date calendar.Date) error

	// ListByEmployeeAndRange returns records with start <= date <= end, oldest first
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end calendar.Date) ([]Attendance, error)

	// GetStaleOpenSessions returns checked-in, never checked-out records dated before the given day
	GetStaleOpenSessions(ctx context.Context, before calendar.Date, limit int) ([]Attendance, error)
}

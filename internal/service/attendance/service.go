package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"
)

// staleSessionBatchSize caps how many open sessions one CloseStaleSessions run closes.
const staleSessionBatchSize = 500

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// TxManager runs fn in a transaction carried by ctx.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type noTx struct{}

func (noTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type AttendanceServiceImpl struct {
	txManager TxManager
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock Clock
	loc   *time.Location
}

// timePtrToString formats a *time.Time as RFC3339 in loc.
func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	format := t.In(loc).Format(time.RFC3339)
	return &format
}

func (a *AttendanceServiceImpl) now() time.Time {
	return a.clock.Now()
}

func (a *AttendanceServiceImpl) today() calendar.Date {
	return calendar.FromTime(a.now(), a.loc)
}

func (a *AttendanceServiceImpl) toResponse(att attendance.Attendance, employeeName string) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: employeeName,
		Date:         att.Date.String(),
		CheckInTime:  timePtrToString(att.CheckIn, a.loc),
		CheckOutTime: timePtrToString(att.CheckOut, a.loc),
		Status:       string(att.Status),
		State:        string(attendance.StateOf(&att)),
		CreatedAt:    att.CreatedAt.In(a.loc).Format(time.RFC3339),
		UpdatedAt:    att.UpdatedAt.In(a.loc).Format(time.RFC3339),
	}

	if att.WorkingHours != nil {
		hours := math.Round(*att.WorkingHours*100) / 100
		display := attendance.FormatDuration(*att.WorkingHours)
		resp.WorkingHours = &hours
		resp.WorkingHoursDisplay = &display
	}

	return resp
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := req.At(a.now())
	date := calendar.FromTime(now, a.loc)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	next, err := attendance.CheckIn(existing, emp.ID, now, a.loc)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	saved, created, err := a.AttendanceRepository.CreateCheckIn(ctx, next)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !created {
		// Lost a race: another request checked in after our read.
		current, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		if _, err := attendance.CheckIn(current, emp.ID, now, a.loc); err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	slog.Info("Employee checked in", "employee_id", emp.ID, "date", date.String(), "status", saved.Status)

	return a.toResponse(saved, emp.FullName), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := req.At(a.now())
	date := calendar.FromTime(now, a.loc)

	var saved attendance.Attendance
	err = a.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := a.AttendanceRepository.GetByEmployeeAndDateForUpdate(ctx, emp.ID, date)
		if err != nil {
			return err
		}

		next, err := attendance.CheckOut(existing, now, a.loc)
		if err != nil {
			return err
		}

		saved, err = a.AttendanceRepository.CompleteCheckOut(ctx, next)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("Employee checked out",
		"employee_id", emp.ID,
		"date", date.String(),
		"status", saved.Status,
		"working_hours", attendance.FormatDuration(*saved.WorkingHours),
	)

	return a.toResponse(saved, emp.FullName), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) (attendance.TodayResponse, error) {
	if validator.IsEmpty(employeeID) {
		return attendance.TodayResponse{}, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id is required",
		}}
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	now := a.now()
	today := calendar.FromTime(now, a.loc)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	state := attendance.StateOf(record)
	resp := attendance.TodayResponse{
		Date:                today.String(),
		IsHoliday:           calendar.IsHoliday(today),
		State:               string(state),
		CanCheckIn:          state == attendance.StateNotCheckedIn,
		CanCheckOut:         state == attendance.StateCheckedIn,
		WorkingHoursDisplay: attendance.FormatDuration(0),
	}

	switch state {
	case attendance.StateCheckedIn:
		// elapsed so far; the widget refreshes this
		resp.WorkingHoursDisplay = attendance.FormatDuration(attendance.WorkingHoursBetween(*record.CheckIn, now))
	case attendance.StateCheckedOut:
		if record.WorkingHours != nil {
			resp.WorkingHoursDisplay = attendance.FormatDuration(*record.WorkingHours)
		}
	}

	if record != nil {
		r := a.toResponse(*record, emp.FullName)
		resp.Attendance = &r
	}

	return resp, nil
}

// loadMonth returns the employee, their records of the requested month and today.
func (a *AttendanceServiceImpl) loadMonth(ctx context.Context, req attendance.BreakdownRequest) (employee.Employee, []attendance.Attendance, calendar.Date, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, nil, calendar.Date{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.Employee{}, nil, calendar.Date{}, err
	}

	month := time.Month(req.Month)
	start := calendar.New(req.Year, month, 1)
	end := calendar.New(req.Year, month, calendar.DaysInMonth(req.Year, month))

	records, err := a.AttendanceRepository.ListByEmployeeAndRange(ctx, emp.ID, start, end)
	if err != nil {
		return employee.Employee{}, nil, calendar.Date{}, err
	}

	return emp, records, a.today(), nil
}

// GetMonthlyBreakdown implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMonthlyBreakdown(ctx context.Context, req attendance.BreakdownRequest) (attendance.BreakdownResponse, error) {
	emp, records, today, err := a.loadMonth(ctx, req)
	if err != nil {
		return attendance.BreakdownResponse{}, err
	}

	return attendance.BreakdownResponse{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.EmployeeCode,
		EmployeeName: emp.FullName,
		Breakdown:    attendance.Aggregate(records, time.Month(req.Month), req.Year, today),
	}, nil
}

// GetMonthlyCalendar implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMonthlyCalendar(ctx context.Context, req attendance.BreakdownRequest) (attendance.MonthlyCalendarResponse, error) {
	emp, records, today, err := a.loadMonth(ctx, req)
	if err != nil {
		return attendance.MonthlyCalendarResponse{}, err
	}

	month := time.Month(req.Month)
	byDate := make(map[calendar.Date]attendance.Attendance, len(records))
	for _, r := range records {
		byDate[r.Date] = r
	}

	total := calendar.DaysInMonth(req.Year, month)
	days := make([]attendance.CalendarDay, 0, total)
	for day := 1; day <= total; day++ {
		d := calendar.New(req.Year, month, day)

		var record *attendance.Attendance
		if r, ok := byDate[d]; ok {
			record = &r
		}

		cell := attendance.CalendarDay{
			Date:          d.String(),
			Weekday:       d.Weekday().String(),
			IsHoliday:     calendar.IsHoliday(d),
			DisplayStatus: string(attendance.DisplayStatusFor(d, record, today)),
		}
		if record != nil {
			status := string(record.Status)
			cell.Status = &status
			cell.CheckInTime = timePtrToString(record.CheckIn, a.loc)
			cell.CheckOutTime = timePtrToString(record.CheckOut, a.loc)
			if record.WorkingHours != nil {
				display := attendance.FormatDuration(*record.WorkingHours)
				cell.WorkingHoursDisplay = &display
			}
		}
		days = append(days, cell)
	}

	return attendance.MonthlyCalendarResponse{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.EmployeeCode,
		EmployeeName: emp.FullName,
		Month:        req.Month,
		Year:         req.Year,
		Days:         days,
		Breakdown:    attendance.Aggregate(records, month, req.Year, today),
	}, nil
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, req attendance.ListRecordsRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	// validated above
	start, _ := calendar.Parse(req.StartDate)
	end, _ := calendar.Parse(req.EndDate)

	records, err := a.AttendanceRepository.ListByEmployeeAndRange(ctx, emp.ID, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, a.toResponse(r, emp.FullName))
	}

	return responses, nil
}

// UpsertManual implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpsertManual(ctx context.Context, req attendance.ManualEntryRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := calendar.Parse(req.Date)
	status, _ := attendance.ParseStatus(req.Status)
	checkIn := parseTimePtr(req.CheckInTime)
	checkOut := parseTimePtr(req.CheckOutTime)

	entry, err := attendance.ManualEntry(emp.ID, date, status, checkIn, checkOut, a.loc)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	saved, err := a.AttendanceRepository.Upsert(ctx, entry)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("Attendance record overridden", "employee_id", emp.ID, "date", date.String(), "status", saved.Status)

	return a.toResponse(saved, emp.FullName), nil
}

func parseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, valid := validator.IsValidDateTime(*s)
	if !valid {
		return nil
	}
	return &t
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, employeeID string, date string) error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	d, err := calendar.Parse(date)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return errs
	}

	if err := a.AttendanceRepository.Delete(ctx, employeeID, d); err != nil {
		return err
	}

	slog.Info("Attendance record deleted", "employee_id", employeeID, "date", d.String())
	return nil
}

// CloseStaleSessions implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CloseStaleSessions(ctx context.Context) (int, error) {
	today := a.today()

	stale, err := a.AttendanceRepository.GetStaleOpenSessions(ctx, today, staleSessionBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to get stale open sessions: %w", err)
	}

	closed := 0
	for _, s := range stale {
		err := a.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
			current, err := a.AttendanceRepository.GetByEmployeeAndDateForUpdate(ctx, s.EmployeeID, s.Date)
			if err != nil {
				return err
			}

			closeAt := s.Date.EndOfDay(a.loc)
			if current != nil && current.CheckIn != nil && current.CheckIn.After(closeAt) {
				closeAt = *current.CheckIn
			}

			next, err := attendance.CheckOut(current, closeAt, a.loc)
			if err != nil {
				return err
			}

			_, err = a.AttendanceRepository.CompleteCheckOut(ctx, next)
			return err
		})

		switch {
		case err == nil:
			closed++
			slog.Info("Closed stale attendance session", "employee_id", s.EmployeeID, "date", s.Date.String())
		case errors.Is(err, attendance.ErrAlreadyCompleted), errors.Is(err, attendance.ErrMustCheckInFirst):
			// changed since the scan
		default:
			slog.Warn("Failed to close stale attendance session", "employee_id", s.EmployeeID, "date", s.Date.String(), "error", err)
		}
	}

	if len(stale) == staleSessionBatchSize {
		slog.Info("More stale attendance sessions remain", "batch_size", staleSessionBatchSize)
	}

	return closed, nil
}

// NewAttendanceService wires the service. A nil clock uses the system clock,
// a nil location means UTC and a nil txManager runs without transactions.
func NewAttendanceService(
	txManager TxManager,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
	clock Clock,
) attendance.AttendanceService {
	if clock == nil {
		clock = systemClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	if txManager == nil {
		txManager = noTx{}
	}
	return &AttendanceServiceImpl{
		txManager:            txManager,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clock,
		loc:                  loc,
	}
}

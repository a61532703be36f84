package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const attendanceColumns = `id, employee_id, date, check_in, check_out, working_hours, status, created_at, updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// CreateCheckIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateCheckIn(ctx context.Context, att attendance.Attendance) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, a.db)

	id, err := newID(att.ID)
	if err != nil {
		return attendance.Attendance{}, false, err
	}

	// A row without check-in (e.g. an administrative LEAVE) is claimed;
	// a row with check-in is left untouched and nothing is returned.
	query := `
		INSERT INTO attendances (id, employee_id, date, check_in, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in,
			check_out = NULL,
			working_hours = NULL,
			status = EXCLUDED.status,
			updated_at = NOW()
		WHERE attendances.check_in IS NULL
		RETURNING ` + attendanceColumns

	saved, err := scanAttendance(q.QueryRow(ctx, query,
		id,
		att.EmployeeID,
		att.Date.Time(),
		att.CheckIn,
		string(att.Status),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, false, nil
		}
		return attendance.Attendance{}, false, translatePgError("failed to create check-in", err)
	}

	return saved, true, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date calendar.Date) (*attendance.Attendance, error) {
	return a.getByEmployeeAndDate(ctx, employeeID, date, "")
}

// GetByEmployeeAndDateForUpdate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date calendar.Date) (*attendance.Attendance, error) {
	return a.getByEmployeeAndDate(ctx, employeeID, date, " FOR UPDATE")
}

func (a *attendanceRepository) getByEmployeeAndDate(ctx context.Context, employeeID string, date calendar.Date, lock string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2` + lock

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date.Time()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// CompleteCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) CompleteCheckOut(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $3,
			working_hours = $4,
			status = $5,
			updated_at = NOW()
		WHERE employee_id = $1
		  AND date = $2
		  AND check_in IS NOT NULL
		  AND check_out IS NULL
		RETURNING ` + attendanceColumns

	saved, err := scanAttendance(q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date.Time(),
		att.CheckOut,
		att.WorkingHours,
		string(att.Status),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// closed (or removed) since it was read
			return attendance.Attendance{}, attendance.ErrAlreadyCompleted
		}
		return attendance.Attendance{}, translatePgError("failed to complete check-out", err)
	}

	return saved, nil
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	id, err := newID(att.ID)
	if err != nil {
		return attendance.Attendance{}, err
	}

	query := `
		INSERT INTO attendances (id, employee_id, date, check_in, check_out, working_hours, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			working_hours = EXCLUDED.working_hours,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING ` + attendanceColumns

	saved, err := scanAttendance(q.QueryRow(ctx, query,
		id,
		att.EmployeeID,
		att.Date.Time(),
		att.CheckIn,
		att.CheckOut,
		att.WorkingHours,
		string(att.Status),
	))
	if err != nil {
		return attendance.Attendance{}, translatePgError("failed to upsert attendance", err)
	}

	return saved, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, employeeID string, date calendar.Date) error {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendances WHERE employee_id = $1 AND date = $2`

	tag, err := q.Exec(ctx, query, employeeID, date.Time())
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end calendar.Date) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start.Time(), end.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	return collectAttendances(rows)
}

// GetStaleOpenSessions implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetStaleOpenSessions(ctx context.Context, before calendar.Date, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE check_in IS NOT NULL
		  AND check_out IS NULL
		  AND date < $1
		ORDER BY date ASC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, before.Time(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get stale open sessions: %w", err)
	}

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	attendances := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendances: %w", err)
	}

	return attendances, nil
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var (
		att    attendance.Attendance
		date   time.Time
		status string
	)

	err := row.Scan(
		&att.ID, &att.EmployeeID, &date,
		&att.CheckIn, &att.CheckOut, &att.WorkingHours,
		&status, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	att.Date = calendar.FromTime(date, time.UTC)
	att.Status = attendance.Status(status)
	return att, nil
}

func newID(id string) (string, error) {
	if id != "" {
		return id, nil
	}
	v7, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return v7.String(), nil
}

func translatePgError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			return employee.ErrEmployeeNotFound
		case "23514": // check_violation
			return fmt.Errorf("%s: %w", msg, attendance.ErrInvalidTimeOrdering)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

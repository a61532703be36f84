package attendance

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/employee"
)

var wib = time.FixedZone("WIB", 7*60*60)

const (
	employeeID   = "0198a3b2-0000-7000-8000-000000000001"
	employeeName = "Siti Rahma"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type recordKey struct {
	employeeID string
	date       calendar.Date
}

// fakeAttendanceRepo keeps the (employee_id, date) uniqueness and the
// conditional writes of the SQL repository.
type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[recordKey]attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[recordKey]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) put(a attendance.Attendance) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == "" {
		f.nextID++
		a.ID = fmt.Sprintf("att-%d", f.nextID)
	}
	f.records[recordKey{a.EmployeeID, a.Date}] = a
}

func (f *fakeAttendanceRepo) get(employeeID string, date calendar.Date) (attendance.Attendance, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.records[recordKey{employeeID, date}]
	return a, ok
}

func (f *fakeAttendanceRepo) CreateCheckIn(ctx context.Context, a attendance.Attendance) (attendance.Attendance, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := recordKey{a.EmployeeID, a.Date}
	if existing, ok := f.records[k]; ok {
		if existing.CheckIn != nil {
			return attendance.Attendance{}, false, nil
		}
		a.ID = existing.ID
		a.CreatedAt = existing.CreatedAt
	} else {
		f.nextID++
		a.ID = fmt.Sprintf("att-%d", f.nextID)
		a.CreatedAt = *a.CheckIn
	}
	a.CheckOut = nil
	a.WorkingHours = nil
	a.UpdatedAt = *a.CheckIn
	f.records[k] = a
	return a, true, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date calendar.Date) (*attendance.Attendance, error) {
	a, ok := f.get(employeeID, date)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date calendar.Date) (*attendance.Attendance, error) {
	return f.GetByEmployeeAndDate(ctx, employeeID, date)
}

func (f *fakeAttendanceRepo) CompleteCheckOut(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := recordKey{a.EmployeeID, a.Date}
	existing, ok := f.records[k]
	if !ok || existing.CheckIn == nil || existing.CheckOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCompleted
	}
	existing.CheckOut = a.CheckOut
	existing.WorkingHours = a.WorkingHours
	existing.Status = a.Status
	existing.UpdatedAt = *a.CheckOut
	f.records[k] = existing
	return existing, nil
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := recordKey{a.EmployeeID, a.Date}
	if existing, ok := f.records[k]; ok {
		a.ID = existing.ID
		a.CreatedAt = existing.CreatedAt
	} else {
		f.nextID++
		a.ID = fmt.Sprintf("att-%d", f.nextID)
	}
	f.records[k] = a
	return a, nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, employeeID string, date calendar.Date) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := recordKey{employeeID, date}
	if _, ok := f.records[k]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(f.records, k)
	return nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end calendar.Date) ([]attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]attendance.Attendance, 0)
	for k, a := range f.records {
		if k.employeeID == employeeID && !k.date.Before(start) && !k.date.After(end) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeAttendanceRepo) GetStaleOpenSessions(ctx context.Context, before calendar.Date, limit int) ([]attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]attendance.Attendance, 0)
	for _, a := range f.records {
		if a.CheckIn != nil && a.CheckOut == nil && a.Date.Before(before) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// fakeTx serializes transactions, standing in for the row lock.
type fakeTx struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return fn(ctx)
}

type fixture struct {
	svc   attendance.AttendanceService
	repo  *fakeAttendanceRepo
	tx    *fakeTx
	clock *fixedClock
}

func newFixture(now time.Time) *fixture {
	repo := newFakeAttendanceRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		employeeID: {ID: employeeID, EmployeeCode: "EMP-001", FullName: employeeName},
	}}
	tx := &fakeTx{}
	clock := &fixedClock{now: now}

	return &fixture{
		svc:   NewAttendanceService(tx, repo, employees, wib, clock),
		repo:  repo,
		tx:    tx,
		clock: clock,
	}
}

func wibTime(day, hour, minute int) time.Time {
	return time.Date(2025, time.July, day, hour, minute, 0, 0, wib)
}

func strPtr(s string) *string {
	return &s
}

package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/calendar"
)

// CheckIn validates a check-in against the day's existing record (nil when
// none) and returns the record to persist. The day is the calendar day of
// now in loc; existing must belong to the same employee and day.
func CheckIn(existing *Attendance, employeeID string, now time.Time, loc *time.Location) (Attendance, error) {
	switch StateOf(existing) {
	case StateCheckedIn:
		return Attendance{}, ErrAlreadyCheckedIn
	case StateCheckedOut:
		return Attendance{}, ErrAlreadyCompleted
	}

	checkIn := now.UTC()
	next := Attendance{
		EmployeeID: employeeID,
		Date:       calendar.FromTime(now, loc),
		CheckIn:    &checkIn,
		Status:     ProvisionalStatus(now, loc),
	}
	if existing != nil {
		next.ID = existing.ID
		next.CreatedAt = existing.CreatedAt
	}
	return next, nil
}

// CheckOut closes an open record at now, computing working hours and the
// final status.
func CheckOut(existing *Attendance, now time.Time, loc *time.Location) (Attendance, error) {
	switch StateOf(existing) {
	case StateNotCheckedIn:
		return Attendance{}, ErrMustCheckInFirst
	case StateCheckedOut:
		return Attendance{}, ErrAlreadyCompleted
	}

	checkOut := now.UTC()
	if checkOut.Before(*existing.CheckIn) {
		return Attendance{}, ErrInvalidTimeOrdering
	}

	hours := WorkingHoursBetween(*existing.CheckIn, checkOut)
	next := *existing
	next.CheckOut = &checkOut
	next.WorkingHours = &hours
	next.Status = FinalStatus(*existing.CheckIn, hours, loc)
	return next, nil
}

// ManualEntry builds an administrator-asserted record. It bypasses the
// lifecycle and the status classifier. Times must fall on date in loc and be
// ordered.
func ManualEntry(employeeID string, date calendar.Date, status Status, checkIn, checkOut *time.Time, loc *time.Location) (Attendance, error) {
	if !status.IsStorable() {
		return Attendance{}, ErrInvalidStatus
	}
	if checkOut != nil && checkIn == nil {
		return Attendance{}, ErrCheckOutWithoutCheckIn
	}
	if checkIn != nil && calendar.FromTime(*checkIn, loc) != date {
		return Attendance{}, ErrTimeOutsideDate
	}
	if checkOut != nil && calendar.FromTime(*checkOut, loc) != date {
		return Attendance{}, ErrTimeOutsideDate
	}
	if checkIn != nil && checkOut != nil && checkOut.Before(*checkIn) {
		return Attendance{}, ErrInvalidTimeOrdering
	}

	entry := Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}
	if checkIn != nil {
		in := checkIn.UTC()
		entry.CheckIn = &in
	}
	if checkOut != nil {
		out := checkOut.UTC()
		entry.CheckOut = &out
		hours := WorkingHoursBetween(*entry.CheckIn, out)
		entry.WorkingHours = &hours
	}
	return entry, nil
}

package attendance

import "errors"

// Attendance domain errors
var (
	// Transition errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
	ErrMustCheckInFirst = errors.New("you must check in before checking out")
	ErrAlreadyCompleted = errors.New("attendance for today is already completed")

	// Administrative correction errors
	ErrInvalidTimeOrdering    = errors.New("check-out time cannot be earlier than check-in time")
	ErrCheckOutWithoutCheckIn = errors.New("check-out time requires a check-in time")
	ErrTimeOutsideDate        = errors.New("check-in and check-out must fall on the record's date")
	ErrInvalidStatus          = errors.New("status must be one of: PRESENT, LATE, HALF_DAY, ABSENT, LEAVE")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

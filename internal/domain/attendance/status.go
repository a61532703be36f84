package attendance

import (
	"fmt"
	"strings"
)

type Status string

// Persisted statuses.
const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusHalfDay Status = "HALF_DAY"
	StatusAbsent  Status = "ABSENT"
	StatusLeave   Status = "LEAVE"
)

// Display-only statuses, never stored.
const (
	StatusHoliday Status = "HOLIDAY"
	StatusNone    Status = "NONE"
)

var storableStatuses = []Status{StatusPresent, StatusLate, StatusHalfDay, StatusAbsent, StatusLeave}

// IsStorable reports whether s may be written to a record.
func (s Status) IsStorable() bool {
	for _, v := range storableStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus accepts any casing, e.g. "half_day" or "HALF_DAY".
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsStorable() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// State is the position of a day's record in the check-in/check-out lifecycle.
type State string

const (
	StateNotCheckedIn State = "NOT_CHECKED_IN"
	StateCheckedIn    State = "CHECKED_IN"
	StateCheckedOut   State = "CHECKED_OUT"
)

// StateOf derives the lifecycle state from a record; nil means no record.
// An administrator-entered record without a check-in is NOT_CHECKED_IN.
func StateOf(a *Attendance) State {
	switch {
	case a == nil || a.CheckIn == nil:
		return StateNotCheckedIn
	case a.CheckOut == nil:
		return StateCheckedIn
	default:
		return StateCheckedOut
	}
}

package employee

import "time"

// Employee is the read-only view this service keeps of an employee.
type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

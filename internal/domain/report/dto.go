package report

import (
	"fmt"
	"time"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// File is a generated report ready to be streamed to the client.
type File struct {
	Filename    string
	ContentType string
	Content     []byte
}

// BreakdownFilename names the monthly export, e.g. attendance_EMP-001_2025-07.xlsx
func BreakdownFilename(employeeCode string, year int, month time.Month) string {
	if employeeCode == "" {
		employeeCode = "employee"
	}
	return fmt.Sprintf("attendance_%s_%04d-%02d.xlsx", employeeCode, year, int(month))
}

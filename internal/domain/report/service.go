package report

import (
	"context"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
)

// ReportService defines the interface for report generation
type ReportService interface {
	// ExportMonthlyBreakdown renders one employee's month as a spreadsheet
	ExportMonthlyBreakdown(ctx context.Context, req attendance.BreakdownRequest) (File, error)
}

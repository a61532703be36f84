package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	dailySheet   = "Daily"
)

var dailyHeaders = []string{"Date", "Day", "Check In", "Check Out", "Working Hours", "Status"}

type ReportServiceImpl struct {
	attendanceService attendance.AttendanceService
}

func NewReportService(attendanceService attendance.AttendanceService) report.ReportService {
	return &ReportServiceImpl{
		attendanceService: attendanceService,
	}
}

// ExportMonthlyBreakdown implements report.ReportService.
func (s *ReportServiceImpl) ExportMonthlyBreakdown(ctx context.Context, req attendance.BreakdownRequest) (report.File, error) {
	month, err := s.attendanceService.GetMonthlyCalendar(ctx, req)
	if err != nil {
		return report.File{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return report.File{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}
	if _, err := f.NewSheet(dailySheet); err != nil {
		return report.File{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return report.File{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	if err := writeSummary(f, month, headerStyle); err != nil {
		return report.File{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}
	if err := writeDaily(f, month, headerStyle); err != nil {
		return report.File{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return report.File{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	return report.File{
		Filename:    report.BreakdownFilename(month.EmployeeCode, month.Year, time.Month(month.Month)),
		ContentType: report.ContentTypeXLSX,
		Content:     buf.Bytes(),
	}, nil
}

func writeSummary(f *excelize.File, month attendance.MonthlyCalendarResponse, headerStyle int) error {
	period := time.Date(month.Year, time.Month(month.Month), 1, 0, 0, 0, 0, time.UTC)
	b := month.Breakdown

	rows := [][2]interface{}{
		{"Employee", month.EmployeeName},
		{"Employee Code", month.EmployeeCode},
		{"Period", period.Format("January 2006")},
		{"", ""},
		{"Metric", "Value"},
		{"Present", b.Present},
		{"Late", b.Late},
		{"Half Day", b.HalfDay},
		{"Leave", b.Leave},
		{"Absent", b.Absent},
		{"Holidays", b.Holidays},
		{"Total Days", b.TotalDays},
		{"Total Working Days", b.TotalWorkingDays},
		{"Attendance Rate (%)", b.AttendanceRate},
	}

	for i, row := range rows {
		r := i + 1
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", r), row[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", r), row[1]); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(summarySheet, "A5", "B5", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 25); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "B", "B", 30)
}

func writeDaily(f *excelize.File, month attendance.MonthlyCalendarResponse, headerStyle int) error {
	for i, h := range dailyHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(dailySheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(dailySheet, "A1", "F1", headerStyle); err != nil {
		return err
	}

	for i, day := range month.Days {
		row := i + 2
		values := []interface{}{
			day.Date,
			day.Weekday,
			derefOr(day.CheckInTime, "-"),
			derefOr(day.CheckOutTime, "-"),
			derefOr(day.WorkingHoursDisplay, "-"),
			day.DisplayStatus,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(dailySheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(dailySheet, "A", "B", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(dailySheet, "C", "D", 28); err != nil {
		return err
	}
	return f.SetColWidth(dailySheet, "E", "F", 15)
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/report"
	"github.com/cmlabs-hris/hris-attendance/internal/handler/http/response"
)

type ReportHandler interface {
	// Monthly breakdown spreadsheet
	ExportBreakdown(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportBreakdown handles GET /attendance/employees/{employeeID}/breakdown/export
func (h *reportHandlerImpl) ExportBreakdown(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	req, ok := breakdownRequest(w, r, employeeID)
	if !ok {
		return
	}

	file, err := h.reportService.ExportMonthlyBreakdown(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Filename, file.ContentType, file.Content)
}

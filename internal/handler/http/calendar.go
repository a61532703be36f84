package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-attendance/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	ClassifyDate(w http.ResponseWriter, r *http.Request)
	GetMonth(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

// ClassifyDate handles GET /calendar/holidays/{date}
func (h *calendarHandlerImpl) ClassifyDate(w http.ResponseWriter, r *http.Request) {
	result, err := h.calendarService.ClassifyDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonth handles GET /calendar/{year}/{month}
func (h *calendarHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}

	result, err := h.calendarService.GetMonth(r.Context(), calendar.MonthRequest{Year: year, Month: month})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

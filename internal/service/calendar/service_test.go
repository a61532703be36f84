package calendar

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarService_ClassifyDate(t *testing.T) {
	svc := NewCalendarService()

	tests := []struct {
		date      string
		isHoliday bool
		reason    string
	}{
		{"2025-07-06", true, calendar.ReasonSunday},
		{"2025-07-12", true, calendar.ReasonSecondSaturday},
		{"2025-07-05", false, ""},
		{"2025-07-19", false, ""},
		{"2025-07-14", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			resp, err := svc.ClassifyDate(context.Background(), tt.date)

			require.NoError(t, err)
			assert.Equal(t, tt.date, resp.Date.String())
			assert.Equal(t, tt.isHoliday, resp.IsHoliday)
			assert.Equal(t, tt.reason, resp.Reason)
		})
	}
}

func TestCalendarService_ClassifyDate_Invalid(t *testing.T) {
	svc := NewCalendarService()

	_, err := svc.ClassifyDate(context.Background(), "14-07-2025")

	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestCalendarService_GetMonth(t *testing.T) {
	svc := NewCalendarService()

	resp, err := svc.GetMonth(context.Background(), calendar.MonthRequest{Year: 2025, Month: 7})

	require.NoError(t, err)
	assert.Equal(t, 31, resp.TotalDays)
	assert.Equal(t, 5, resp.TotalHolidays)
	assert.Equal(t, 26, resp.TotalWorkingDays)
	require.Len(t, resp.Holidays, 5)
	assert.Equal(t, "2025-07-06", resp.Holidays[0].Date.String())
}

func TestCalendarService_GetMonth_Invalid(t *testing.T) {
	svc := NewCalendarService()

	_, err := svc.GetMonth(context.Background(), calendar.MonthRequest{Year: 2025, Month: 13})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "month")
}

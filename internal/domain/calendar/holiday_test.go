package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHoliday_July2025(t *testing.T) {
	holidays := HolidaysInMonth(2025, time.July)

	require.Len(t, holidays, 5)
	assert.Equal(t, []Date{
		{2025, time.July, 6},
		{2025, time.July, 12},
		{2025, time.July, 13},
		{2025, time.July, 20},
		{2025, time.July, 27},
	}, holidays)
	assert.Equal(t, 26, WorkingDaysInMonth(2025, time.July))
}

func TestIsHoliday_OnlySecondSaturday(t *testing.T) {
	// July 2025 Saturdays: 5, 12, 19, 26
	assert.False(t, IsHoliday(New(2025, time.July, 5)))
	assert.True(t, IsHoliday(New(2025, time.July, 12)))
	assert.False(t, IsHoliday(New(2025, time.July, 19)))
	assert.False(t, IsHoliday(New(2025, time.July, 26)))
}

func TestIsHoliday_SaturdayOnTheFirst(t *testing.T) {
	// March 2025 starts on a Saturday, so the 8th is the second one.
	assert.False(t, IsHoliday(New(2025, time.March, 1)))
	assert.True(t, IsHoliday(New(2025, time.March, 8)))
	assert.Equal(t, ReasonSecondSaturday, HolidayReason(New(2025, time.March, 8)))
}

func TestIsHoliday_Weekdays(t *testing.T) {
	for day := 7; day <= 11; day++ { // Mon..Fri
		d := New(2025, time.July, day)
		assert.False(t, IsHoliday(d), "%s should be a working day", d)
		assert.Empty(t, HolidayReason(d))
	}
	assert.Equal(t, ReasonSunday, HolidayReason(New(2025, time.July, 6)))
}

func TestIsHoliday_EveryMonthHasOneSaturdayAndAllSundays(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			saturdayHolidays := 0
			for day := 1; day <= DaysInMonth(year, month); day++ {
				d := New(year, month, day)
				switch d.Weekday() {
				case time.Sunday:
					assert.True(t, IsHoliday(d), "sunday %s", d)
				case time.Saturday:
					if IsHoliday(d) {
						saturdayHolidays++
					}
				default:
					assert.False(t, IsHoliday(d), "weekday %s", d)
				}
			}
			assert.Equal(t, 1, saturdayHolidays, "%d-%02d", year, month)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, time.July))
	assert.Equal(t, 30, DaysInMonth(2025, time.June))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestNewMonthResponse(t *testing.T) {
	resp := NewMonthResponse(2025, time.July)

	assert.Equal(t, 31, resp.TotalDays)
	assert.Equal(t, 5, resp.TotalHolidays)
	assert.Equal(t, 26, resp.TotalWorkingDays)
	require.Len(t, resp.Holidays, 5)
	assert.Equal(t, "Saturday", resp.Holidays[1].Weekday)
	assert.Equal(t, ReasonSecondSaturday, resp.Holidays[1].Reason)
}

func TestMonthRequest_Validate(t *testing.T) {
	valid := MonthRequest{Year: 2025, Month: 7}
	assert.NoError(t, valid.Validate())

	invalid := MonthRequest{Year: 12, Month: 13}
	err := invalid.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month")
	assert.Contains(t, err.Error(), "year")
}

package model_test

import (
	"flexwork/internal/domains/booking/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_CalendarDateRoundTrip(t *testing.T) {
	for _, value := range []string{"2026-01-01", "2026-02-28", "2028-02-29", "2026-12-31"} {
		t.Run(value, func(t *testing.T) {
			date, err := model.Booking{Date: value}.CalendarDate()
			require.NoError(t, err)

			assert.Equal(t, 0, date.Hour())
			assert.Equal(t, 0, date.Minute())
			assert.Equal(t, value, model.FormatDate(date))
		})
	}
}

func TestFormatDate_IgnoresTimeOfDay(t *testing.T) {
	date, err := model.ParseDate("2026-10-17")
	require.NoError(t, err)

	assert.Equal(t, "2026-10-17", model.FormatDate(date.Add(23*time.Hour+59*time.Minute)))
}

func TestParseDate_Invalid(t *testing.T) {
	for _, value := range []string{"", "2026-13-01", "17.10.2026", "2026-02-30"} {
		_, err := model.ParseDate(value)
		assert.Error(t, err, value)
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		month string
		first string
		last  string
	}{
		{"2026-02", "2026-02-01", "2026-02-28"},
		{"2028-02", "2028-02-01", "2028-02-29"},
		{"2026-12", "2026-12-01", "2026-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			first, last, err := model.MonthRange(tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}

	_, _, err := model.MonthRange("2026-13")
	assert.Error(t, err)
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		from model.Status
		to   model.Status
		want bool
	}{
		{model.StatusPending, model.StatusApproved, true},
		{model.StatusPending, model.StatusDeclined, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusApproved, model.StatusCancelled, true},
		{model.StatusApproved, model.StatusDeclined, false},
		{model.StatusDeclined, model.StatusApproved, false},
		{model.StatusCancelled, model.StatusPending, false},
		{model.StatusPending, model.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, model.StatusPending.IsActive())
	assert.True(t, model.StatusApproved.IsActive())
	assert.False(t, model.StatusDeclined.IsActive())
	assert.False(t, model.StatusCancelled.IsActive())
}

func TestParseStatus(t *testing.T) {
	status, err := model.ParseStatus("APPROVED")
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, status)

	_, err = model.ParseStatus("approved")
	assert.Error(t, err)
}

package model_test

import (
	"errors"
	"flexwork/internal/domains/notification/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusUpdateContent(t *testing.T) {
	tests := []struct {
		status string
		title  string
		body   string
	}{
		{"APPROVED", "Booking approved", "Maya approved your home office request for Mon, 02 Nov 2026."},
		{"DECLINED", "Booking declined", "Maya declined your home office request for Mon, 02 Nov 2026."},
		{"CANCELLED", "Booking updated", "Your home office request for Mon, 02 Nov 2026 is now CANCELLED."},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			content := model.StatusUpdateContent(tt.status, "Maya", "Mon, 02 Nov 2026")

			assert.Equal(t, tt.title, content.Title)
			assert.Equal(t, tt.body, content.Body)
		})
	}
}

func TestNewRequestContent(t *testing.T) {
	content := model.NewRequestContent("Ana", model.DisplayDate(time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, "New booking request", content.Title)
	assert.Equal(t, "Ana requested home office on Mon, 02 Nov 2026.", content.Body)
}

func TestData_Strings(t *testing.T) {
	data := model.Data{
		"bookingId": "b-1",
		"count":     float64(3),
		"urgent":    true,
		"nested":    map[string]any{"a": "b"},
	}

	assert.Equal(t, map[string]string{
		"bookingId": "b-1",
		"count":     "3",
		"urgent":    "true",
		"nested":    `{"a":"b"}`,
	}, data.Strings())
}

func TestData_ValueScan(t *testing.T) {
	value, err := model.Data{"status": "APPROVED"}.Value()
	require.NoError(t, err)

	var scanned model.Data
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, model.Data{"status": "APPROVED"}, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)

	assert.Error(t, scanned.Scan(12))
}

func TestProcessStatusError(t *testing.T) {
	status := model.ProcessStatusError(errors.New("context deadline exceeded"))

	assert.Equal(t, "error: context deadline exceeded", status)
	assert.True(t, model.IsProcessStatusError(status))
	assert.False(t, model.IsProcessStatusError(model.ProcessStatusSuccess))
}

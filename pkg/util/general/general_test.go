package general

import (
	"testing"
	"time"

	"taskdesk/pkg/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-03", MonthKey(time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", MonthKey(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", FormatDate(parsed))

	_, err = ParseDate("15/09/2026")
	assert.Error(t, err)
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate time.Time
		status  string
		want    bool
	}{
		{
			name:    "pending past due",
			dueDate: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
			status:  constant.STATUS_PENDING,
			want:    true,
		},
		{
			name:    "pending due today",
			dueDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			status:  constant.STATUS_PENDING,
			want:    false,
		},
		{
			name:    "pending due tomorrow",
			dueDate: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
			status:  constant.STATUS_PENDING,
			want:    false,
		},
		{
			name:    "completed past due",
			dueDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			status:  constant.STATUS_COMPLETED,
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverdue(tt.dueDate, tt.status, now))
		})
	}
}

func TestTruncateSheetName(t *testing.T) {
	assert.Equal(t, "TaskDesk", TruncateSheetName("TaskDesk"))

	long := "A very long worksheet name that keeps going"
	assert.Len(t, TruncateSheetName(long), 31)
}

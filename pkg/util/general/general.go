package general

import (
	"time"

	"taskdesk/pkg/constant"
)

// Now ...
func Now() *time.Time {
	now := time.Now()
	return &now
}

// StartOfDay ...
func StartOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// MonthKey renders the yyyy-MM grouping key used by the monthly statistics.
func MonthKey(t time.Time) string {
	return t.Format(constant.MONTH_KEY_FORMAT)
}

func FormatDate(t time.Time) string {
	return t.Format(constant.DATE_FORMAT)
}

func FormatDateTime(t time.Time) string {
	return t.Format(constant.DATETIME_FORMAT)
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(constant.DATE_FORMAT, value)
}

// IsOverdue reports whether a still-pending request misses its due date.
// A request due today is not overdue yet.
func IsOverdue(dueDate time.Time, status string, now time.Time) bool {
	if status != constant.STATUS_PENDING {
		return false
	}
	return dueDate.Before(StartOfDay(now))
}

// TruncateSheetName keeps excel sheet names inside the 31 character limit.
func TruncateSheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}

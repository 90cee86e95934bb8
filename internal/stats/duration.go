// Package stats holds the derived-statistics core: aggregation over request
// snapshots, the workload summary, duration formatting and the
// estimated-minutes derivation. Everything here is a pure function over
// in-memory slices; persistence stays with the repositories.
package stats

import (
	"fmt"
	"math"
)

// FormatDuration renders a minute value as "0m", "45m", "1h" or "1h30m".
// Hours are floored while the remainder is rounded, so a value like 119.6
// collapses its remainder to a full hour and renders as "1h", not "2h".
// Below one hour the rounded remainder carries instead, 59.8 is "1h".
func FormatDuration(minutes float64) string {
	if minutes < 0 || math.IsNaN(minutes) {
		minutes = 0
	}

	hours := int(minutes / 60)
	remaining := int(math.Round(math.Mod(minutes, 60)))
	if remaining == 60 {
		if hours == 0 {
			hours = 1
		}
		remaining = 0
	}

	if hours == 0 {
		return fmt.Sprintf("%dm", remaining)
	}
	if remaining == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, remaining)
}

// MinutesToSeconds converts the stored per-unit minutes into the seconds
// shown on the task-type authoring form.
func MinutesToSeconds(minutes float64) int {
	return int(math.Round(minutes * 60))
}

// SecondsToMinutes converts the authoring form's seconds back into the
// minute unit everything else runs on.
func SecondsToMinutes(seconds int) float64 {
	return float64(seconds) / 60
}

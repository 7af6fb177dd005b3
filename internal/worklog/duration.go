package worklog

import (
	"fmt"
	"strconv"
	"strings"
)

// Jira's "timeSpent" presentation counts a day as one working day, not 24h.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 8 * secondsPerHour
)

// ParseTimeSpent converts a Jira presentation string like "1d 2h 30m",
// "2h 30m" or "45m" into seconds. Older worklog payloads carry only the
// presentation string, without timeSpentSeconds.
func ParseTimeSpent(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	var total int64
	for _, part := range strings.Fields(s) {
		unit := part[len(part)-1]
		n, err := strconv.ParseInt(part[:len(part)-1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("worklog: bad time component %q in %q", part, s)
		}
		switch unit {
		case 'd':
			total += n * secondsPerDay
		case 'h':
			total += n * secondsPerHour
		case 'm':
			total += n * secondsPerMinute
		default:
			return 0, fmt.Errorf("worklog: unknown time unit %q in %q", string(unit), s)
		}
	}
	return total, nil
}

// FormatDuration renders seconds as "Xh Ym", folding days into hours.
// Sub-minute remainders are dropped, matching the minutes granularity of
// the worklog reports.
func FormatDuration(seconds int64) string {
	minutes := seconds / secondsPerMinute
	hours := minutes / 60
	minutes = minutes % 60
	if minutes > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}

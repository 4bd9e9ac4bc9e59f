package utils

import "strings"

const (
	endOfDayMidnight = "24:00:00"
	endOfDay         = "23:59:59"
)

// AdjustDate rewrites the 24:00:00 end-of-day notation, which time.Parse
// rejects, to the last second of the same day.
func AdjustDate(s string) string {
	return strings.ReplaceAll(s, endOfDayMidnight, endOfDay)
}

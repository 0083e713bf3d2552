package utils

import (
	"strings"
	"time"
)

// Stored timestamps come from several generations of the data set: RFC3339
// with and without offset, and bare dates for due dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a stored timestamp string. The boolean reports
// whether the value was parseable; malformed values are tolerated by
// callers, never fatal.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders a time in the storage representation.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.999999")
}

// StartOfDay returns local midnight for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

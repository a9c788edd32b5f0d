package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ShortWeekday returns the three-letter weekday name used in
// trains.operating_days ("Mon".."Sun").
func ShortWeekday(t time.Time) string {
	return t.Weekday().String()[:3]
}

// LongDate renders the journey date the way the ticket shows it,
// e.g. "Monday, 15 December 2025". Unparseable input is passed through.
func LongDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("Monday, 2 January 2006")
}

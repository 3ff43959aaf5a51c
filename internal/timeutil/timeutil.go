package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the canonical fixture date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsCalendarDate reports whether value is a real YYYY-MM-DD date.
func IsCalendarDate(value string) bool {
	raw := strings.TrimSpace(value)
	if len(raw) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, raw)
	return err == nil
}

package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate(" 2025-01-15 ")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2025-01-15" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2025, 1, 15, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2025-01-15" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestIsCalendarDate(t *testing.T) {
	cases := map[string]bool{
		"2025-01-15":   true,
		"2024-02-29":   true,
		"2025-02-29":   false,
		"2025-1-15":    false,
		"15/01/2025":   false,
		"":             false,
		"2025-01-15T1": false,
	}
	for in, want := range cases {
		if got := IsCalendarDate(in); got != want {
			t.Fatalf("IsCalendarDate(%q) = %v, want %v", in, got, want)
		}
	}
}

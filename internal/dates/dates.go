// Package dates provides calendar-day helpers for the fixed-width
// YYYY-MM-DD date strings used throughout the scheduling API. The fixed
// width makes lexical comparison equal to chronological comparison, which
// the storage layer relies on for range queries.
package dates

import (
	"fmt"
	"time"
)

// Layout is the calendar-day format used on the wire and in storage
const Layout = "2006-01-02"

// Parse parses a calendar-day string, rejecting anything that is not
// strictly YYYY-MM-DD
func Parse(value string) (time.Time, error) {
	day, err := time.ParseInLocation(Layout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return day, nil
}

// IsValid reports whether value is a well-formed calendar-day string
func IsValid(value string) bool {
	_, err := Parse(value)
	return err == nil
}

// Range returns the inclusive day-by-day sequence from start to end.
// A reversed interval (end before start) yields an empty sequence.
func Range(start, end time.Time) []string {
	var days []string
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		days = append(days, current.Format(Layout))
	}
	return days
}

// RangeStrings is Range over raw calendar-day strings
func RangeStrings(start, end string) ([]string, error) {
	startDay, err := Parse(start)
	if err != nil {
		return nil, err
	}
	endDay, err := Parse(end)
	if err != nil {
		return nil, err
	}
	return Range(startDay, endDay), nil
}

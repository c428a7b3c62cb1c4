// Package dates handles sale dates entered as date-only strings.
//
// A "2006-01-02" input is anchored to midnight in the caller's zone at
// construction time, so later rendering in local time cannot drift a day.
// The adjustment happens once, here, never on render.
package dates

import (
	"fmt"
	"time"
)

const inputLayout = "2006-01-02"

// ParseLocal parses a YYYY-MM-DD string as midnight local time.
func ParseLocal(s string) (time.Time, error) {
	return ParseIn(s, time.Local)
}

// ParseIn is ParseLocal with an explicit zone, for callers (and tests) that
// cannot rely on the process-wide local zone.
func ParseIn(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(inputLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// Display renders a date as DD/MM/YYYY.
func Display(t time.Time) string {
	return t.Format("02/01/2006")
}

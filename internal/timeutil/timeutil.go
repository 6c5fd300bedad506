// Package timeutil handles the date shapes the upstream API produces:
// ISO-8601 date-times whose semantics are date-only. Calendar components
// are taken from the text of the date portion so a timezone offset can
// never shift the displayed day.
package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical date portion of an upstream timestamp.
const DateLayout = "2006-01-02"

// DisplayLayout is the user-facing date format.
const DisplayLayout = "01/02/06"

// TBD labels rows whose date is missing or unparsable.
const TBD = "TBD"

// ErrMalformedDate reports a date string that could not be parsed as
// ISO-8601. Callers recover it locally; it never reaches a user.
var ErrMalformedDate = errors.New("malformed date")

// ParseEventDate extracts the calendar date from an upstream timestamp
// such as "2024-03-15T00:00:00-04:00". Only the first ten characters are
// consulted; the zone offset is deliberately ignored.
func ParseEventDate(value string) (time.Time, error) {
	if len(value) < len(DateLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, value)
	}
	t, err := time.Parse(DateLayout, value[:len(DateLayout)])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, value)
	}
	return t, nil
}

// FormatDisplayDate renders an upstream timestamp as MM/DD/YY, or TBD
// when the input is empty or malformed.
func FormatDisplayDate(value string) string {
	if value == "" {
		return TBD
	}
	t, err := ParseEventDate(value)
	if err != nil {
		return TBD
	}
	return t.Format(DisplayLayout)
}

// DaysUntil returns the whole days from ref to target, comparing
// calendar dates only.
func DaysUntil(ref, target time.Time) int {
	refDay := truncateToDay(ref)
	targetDay := truncateToDay(target)
	return int(targetDay.Sub(refDay).Hours() / 24)
}

// CountdownLabel renders the distance to an upcoming date the way the
// dashboard shows it.
func CountdownLabel(days int) string {
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("In %d days", days)
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

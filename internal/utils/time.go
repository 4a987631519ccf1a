package utils

import (
	"fmt"
	"time"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the local timezone.
// "Today" for gratitude purposes is always the user's local calendar day.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// NowRFC3339 returns the current UTC time formatted as RFC3339, the format
// used for all createdAt timestamps.
func NowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ParseClock parses an HH:MM string into hour and minute components.
// time.Parse alone would accept e.g. "7:05"; reminder times are stored
// zero-padded, so reformat mismatches are rejected too.
func ParseClock(timeStr string) (hour, minute int, err error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q (expected HH:MM): %w", timeStr, err)
	}
	if t.Format(constants.TimeFormat) != timeStr {
		return 0, 0, fmt.Errorf("invalid time %q (expected zero-padded HH:MM)", timeStr)
	}
	return t.Hour(), t.Minute(), nil
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateStr, err)
	}
	return t, nil
}

// ValidDate reports whether the string is a well-formed YYYY-MM-DD date.
func ValidDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// NextOccurrence returns the next time the month/day of date occurs on or
// after ref. Used for recurring anniversaries; for non-recurring dates the
// stored date is returned as-is.
func NextOccurrence(date time.Time, ref time.Time) time.Time {
	next := time.Date(ref.Year(), date.Month(), date.Day(), 0, 0, 0, 0, ref.Location())
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	if next.Before(refDay) {
		next = time.Date(ref.Year()+1, date.Month(), date.Day(), 0, 0, 0, 0, ref.Location())
	}
	return next
}

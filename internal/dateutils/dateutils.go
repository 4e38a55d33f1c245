// Package dateutils normalizes the date strings found in bank CSV exports
// into canonical calendar dates.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// LayoutISO is the canonical date layout used throughout the application.
const LayoutISO = "2006-01-02"

// explicitFormats is ordered by observed frequency in real bank exports, not
// by correctness. Ambiguous strings like 03/04/2024 resolve to whichever
// format matches first; that is a known limitation of locale-free input.
var explicitFormats = []string{
	"2006-01-02", // ISO
	"01/02/2006", // US
	"02/01/2006", // European
	"2006/01/02",
	"02-01-2006",
	"01-02-2006",
	"01/02/06", // 2-digit-year variants
	"02/01/06",
	"01-02-06",
	"02-01-06",
}

// timestampFormats is the generic last-resort list for full timestamps.
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Normalize converts a raw date string into a calendar date.
// The rules are tried in order, first success wins:
//  1. a pure 8-digit string is read as YYYYMMDD with no timezone conversion
//  2. the explicit format list
//  3. for timestamp-style strings containing 'T', the date-only prefix
//  4. generic timestamp parsing
//
// A string failing every rule is a row-level problem, never a fatal one.
func Normalize(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if len(s) == 8 && isDigits(s) {
		return parseCompact(s)
	}

	for _, format := range explicitFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	if i := strings.IndexByte(s, 'T'); i > 0 {
		if t, err := time.Parse(LayoutISO, s[:i]); err == nil {
			return t, nil
		}
	}

	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", raw)
}

// NormalizeToISO normalizes a raw date string and formats it as YYYY-MM-DD.
func NormalizeToISO(raw string) (string, error) {
	t, err := Normalize(raw)
	if err != nil {
		return "", err
	}
	return t.Format(LayoutISO), nil
}

// ToISO formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISO(t time.Time) string {
	return t.Format(LayoutISO)
}

// parseCompact interprets an 8-digit string as YYYYMMDD. Construction goes
// through time.Date in UTC directly so no timezone math can shift the day.
func parseCompact(s string) (time.Time, error) {
	year := atoi(s[0:4])
	month := atoi(s[4:6])
	day := atoi(s[6:8])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (month 13 becomes
	// January of the next year), which would silently accept garbage.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid compact date: %s", s)
	}
	return t, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

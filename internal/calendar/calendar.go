// Package calendar works with the YYYY-MM-DD date strings that key daily logs.
package calendar

import (
	"time"
	_ "time/tzdata"
)

// Layout is the format of every date string stored on a challenge or log.
const Layout = "2006-01-02"

// Parse returns the date at midnight UTC. ok is false for malformed input.
func Parse(date string) (time.Time, bool) {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Valid reports whether date is a well-formed calendar date.
func Valid(date string) bool {
	_, ok := Parse(date)
	return ok
}

// Format returns the calendar date of t in t's own location.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Day truncates t to its calendar date, expressed as midnight UTC.
// Comparing two Day values never depends on DST transitions.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns today's date string for the given IANA zone name.
// Unknown or empty zones fall back to UTC.
func Today(now time.Time, zone string) string {
	return Format(now.In(Location(zone)))
}

// Location loads an IANA zone, falling back to UTC.
func Location(zone string) *time.Location {
	if zone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// AddDays shifts a date string by n days. Malformed input is returned unchanged.
func AddDays(date string, n int) string {
	t, ok := Parse(date)
	if !ok {
		return date
	}
	return Format(t.AddDate(0, 0, n))
}

// DaysBetween returns the number of whole days from a to b (b - a).
// ok is false when either date is malformed.
func DaysBetween(a, b string) (int, bool) {
	ta, okA := Parse(a)
	tb, okB := Parse(b)
	if !okA || !okB {
		return 0, false
	}
	return int(tb.Sub(ta).Hours() / 24), true
}

// MostRecentMonday returns the Monday on or before date.
func MostRecentMonday(date string) string {
	t, ok := Parse(date)
	if !ok {
		return date
	}
	offset := (int(t.Weekday()) + 6) % 7
	return Format(t.AddDate(0, 0, -offset))
}

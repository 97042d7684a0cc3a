// Package timeutil provides campus-time helpers. The colleges the platform
// serves sit in the Pacific timezone, and availability windows are plain
// "HH:MM" wall-clock strings, so everything here is about formatting and
// comparing clock times rather than instants.
package timeutil

import (
	"time"
)

// CampusTZ is the campus timezone. Falls back to a fixed UTC-8 zone when the
// host has no tzdata.
var CampusTZ = loadCampusTZ()

func loadCampusTZ() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		return time.FixedZone("PST", -8*60*60)
	}
	return loc
}

// Now returns the current campus time.
func Now() time.Time {
	return time.Now().In(CampusTZ)
}

// ToCampus converts a time to campus time.
func ToCampus(t time.Time) time.Time {
	return t.In(CampusTZ)
}

// FormatClock is the layout availability windows and transcript stamps use.
const FormatClock = "15:04"

// Clock formats a time as "HH:MM" in campus time.
func Clock(t time.Time) string {
	return ToCampus(t).Format(FormatClock)
}

// Stamp formats a transcript timestamp: just the clock for today's messages,
// date and clock otherwise.
func Stamp(t time.Time) string {
	campus := ToCampus(t)
	if sameDay(campus, Now()) {
		return campus.Format(FormatClock)
	}
	return campus.Format("Jan 2 " + FormatClock)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// ValidClock reports whether s is a well-formed 24-hour "HH:MM" value.
func ValidClock(s string) bool {
	_, err := time.Parse(FormatClock, s)
	return err == nil
}

// ClockBefore reports whether clock string a is strictly earlier than b.
// Malformed input compares false.
func ClockBefore(a, b string) bool {
	ta, errA := time.Parse(FormatClock, a)
	tb, errB := time.Parse(FormatClock, b)
	if errA != nil || errB != nil {
		return false
	}
	return ta.Before(tb)
}

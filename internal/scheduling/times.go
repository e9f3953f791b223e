// Package scheduling implements the meeting availability engine: the
// weekly template / exception / holiday resolution rules, the meeting
// validation pipeline and the overlap layout consumed by the calendar
// views. Everything here is pure and operates on in-memory snapshots;
// loading and persisting state is the caller's concern.
package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date format used across the engine.
const DateLayout = "2006-01-02"

// ClockLayout is the canonical wall-clock format ("HH:MM", 24h).
const ClockLayout = "15:04"

// ToMinutes converts an "HH:MM" wall-clock string to minutes since
// midnight. Input is assumed well formed; malformed input is a caller
// error.
func ToMinutes(clock string) int {
	sep := strings.IndexByte(clock, ':')
	h, _ := strconv.Atoi(clock[:sep])
	m, _ := strconv.Atoi(clock[sep+1:])
	return h*60 + m
}

// FormatMinutes renders minutes since midnight back as "HH:MM".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinuteOfDay returns the wall-clock minute offset of a timestamp.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// At combines a calendar day with an "HH:MM" time-of-day into a single
// point in time in the day's location.
func At(day time.Time, clock string) time.Time {
	minutes := ToMinutes(clock)
	y, m, d := day.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, day.Location())
}

// Truncate drops the time-of-day component.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return Truncate(t.AddDate(0, 0, -int(t.Weekday())))
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns midnight of the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// AddDays shifts a date by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths shifts a date by n calendar months.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"17:45", 1065},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToMinutes(tc.clock), tc.clock)
	}
}

func TestFormatMinutesRoundTrip(t *testing.T) {
	for _, clock := range []string{"00:00", "08:05", "12:30", "23:59"} {
		assert.Equal(t, clock, FormatMinutes(ToMinutes(clock)))
	}
}

func TestStartOfWeekIsSundayAnchored(t *testing.T) {
	// 2025-03-12 is a Wednesday; the containing week starts Sunday 2025-03-09.
	wed := time.Date(2025, 3, 12, 15, 4, 0, 0, time.Local)
	start := StartOfWeek(wed)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, "2025-03-09", start.Format(DateLayout))
	assert.Zero(t, start.Hour())

	sun := time.Date(2025, 3, 9, 23, 0, 0, 0, time.Local)
	assert.Equal(t, "2025-03-09", StartOfWeek(sun).Format(DateLayout))
}

func TestMonthBoundaries(t *testing.T) {
	d := time.Date(2025, 2, 14, 10, 0, 0, 0, time.Local)
	assert.Equal(t, "2025-02-01", StartOfMonth(d).Format(DateLayout))
	assert.Equal(t, "2025-02-28", EndOfMonth(d).Format(DateLayout))

	leap := time.Date(2024, 2, 3, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-02-29", EndOfMonth(leap).Format(DateLayout))
}

func TestAddDaysAndMonths(t *testing.T) {
	d := time.Date(2025, 1, 31, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2025-02-01", AddDays(d, 1).Format(DateLayout))
	assert.Equal(t, "2025-01-24", AddDays(d, -7).Format(DateLayout))
	assert.Equal(t, "2025-02-28", AddMonths(time.Date(2025, 1, 28, 0, 0, 0, 0, time.Local), 1).Format(DateLayout))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, 6, 1, 8, 0, 0, 0, time.Local)
	evening := time.Date(2025, 6, 1, 22, 30, 0, 0, time.Local)
	next := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, next))
}

func TestAtCombinesDayAndClock(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	at := At(day, "14:30")
	assert.Equal(t, 14, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.True(t, SameDay(day, at))
	assert.Equal(t, day.Location(), at.Location())
}

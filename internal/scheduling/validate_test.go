package scheduling

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id, day, start, end string) Booking {
	return Booking{ID: id, Start: At(date(day), start), End: At(date(day), end)}
}

func TestValidateInvalidTimeRange(t *testing.T) {
	snap := DefaultSnapshot()
	cases := []struct{ start, end string }{
		{"10:00", "10:00"},
		{"10:30", "10:00"},
	}
	for _, tc := range cases {
		rej := Validate(Candidate{Date: date("2025-06-15"), StartTime: tc.start, EndTime: tc.end}, snap, nil)
		require.NotNil(t, rej, "%s-%s", tc.start, tc.end)
		assert.Equal(t, RejectInvalidTimeRange, rej.Kind)
	}
}

// An invalid range is rejected first no matter how broken the rest of
// the state is.
func TestValidateInvalidTimeRangeWinsOverEverything(t *testing.T) {
	snap := Snapshot{BlockHolidays: true} // all weekdays disabled, zero agents
	rej := Validate(Candidate{Date: date("2025-10-02"), StartTime: "11:00", EndTime: "10:00"}, snap, nil)
	require.NotNil(t, rej)
	assert.Equal(t, RejectInvalidTimeRange, rej.Kind)
}

func TestValidateHolidayBlocked(t *testing.T) {
	snap := DefaultSnapshot()
	// 2025-10-02 is a Thursday: enabled in the template, capacity free,
	// yet the holiday must win and cite its name.
	rej := Validate(Candidate{Date: date("2025-10-02"), StartTime: "10:00", EndTime: "10:30"}, snap, nil)
	require.NotNil(t, rej)
	assert.Equal(t, RejectHolidayBlocked, rej.Kind)
	assert.Contains(t, rej.Reason, "יום כיפור")

	snap.BlockHolidays = false
	assert.Nil(t, Validate(Candidate{Date: date("2025-10-02"), StartTime: "10:00", EndTime: "10:30"}, snap, nil))
}

func TestValidateAllDayBlock(t *testing.T) {
	snap := DefaultSnapshot()
	snap.Exceptions = []DateException{
		{ID: "e1", Date: "2025-06-15", Type: ExceptionBlock, AllDay: true, Reason: "השתלמות"},
	}
	rej := Validate(Candidate{Date: date("2025-06-15"), StartTime: "10:00", EndTime: "10:30"}, snap, nil)
	require.NotNil(t, rej)
	assert.Equal(t, RejectDateBlocked, rej.Kind)
	assert.Contains(t, rej.Reason, "השתלמות")
}

func TestValidateNoAvailability(t *testing.T) {
	snap := DefaultSnapshot()
	// Saturday is disabled and nothing opens it: every candidate fails.
	for _, window := range [][2]string{{"08:00", "09:00"}, {"10:00", "10:30"}, {"16:00", "17:00"}} {
		rej := Validate(Candidate{Date: date("2025-06-14"), StartTime: window[0], EndTime: window[1]}, snap, nil)
		require.NotNil(t, rej)
		assert.Equal(t, RejectNoAvailability, rej.Kind)
	}
}

func TestValidateOpenExceptionOverridesDisabledDay(t *testing.T) {
	snap := DefaultSnapshot()
	snap.Exceptions = []DateException{
		{ID: "e1", Date: "2025-06-14", Type: ExceptionOpen, Ranges: []TimeRange{{Start: "10:00", End: "13:00"}}},
	}
	assert.Nil(t, Validate(Candidate{Date: date("2025-06-14"), StartTime: "11:00", EndTime: "12:00"}, snap, nil))

	// The opening replaces the template: outside it is still rejected.
	rej := Validate(Candidate{Date: date("2025-06-14"), StartTime: "14:00", EndTime: "15:00"}, snap, nil)
	require.NotNil(t, rej)
	assert.Equal(t, RejectOutsideWindow, rej.Kind)
}

func TestValidateOutsideWindowCitesWindow(t *testing.T) {
	snap := DefaultSnapshot()
	rej := Validate(Candidate{Date: date("2025-06-15"), StartTime: "08:00", EndTime: "09:30"}, snap, nil)
	require.NotNil(t, rej)
	assert.Equal(t, RejectOutsideWindow, rej.Kind)
	assert.Contains(t, rej.Reason, "09:00")
	assert.Contains(t, rej.Reason, "17:00")

	// Ending exactly at the window edge is still inside.
	assert.Nil(t, Validate(Candidate{Date: date("2025-06-15"), StartTime: "16:30", EndTime: "17:00"}, snap, nil))
}

func TestValidatePartialBlock(t *testing.T) {
	snap := DefaultSnapshot()
	snap.Week[time.Friday] = AvailabilityDay{Enabled: true, Ranges: []TimeRange{{Start: "09:00", End: "17:00"}}}
	snap.Exceptions = []DateException{
		{ID: "e1", Date: "2025-03-14", Type: ExceptionBlock, AllDay: false, Ranges: []TimeRange{{Start: "12:00", End: "13:00"}}, Reason: "לקוחות"},
	}

	// No overlap with the blocked range.
	assert.Nil(t, Validate(Candidate{Date: date("2025-03-14"), StartTime: "11:00", EndTime: "11:30"}, snap, nil))

	rej := Validate(Candidate{Date: date("2025-03-14"), StartTime: "12:30", EndTime: "13:00"}, snap, nil)
	require.NotNil(t, rej)
	assert.Equal(t, RejectDateBlocked, rej.Kind)
	assert.Contains(t, rej.Reason, "לקוחות")
	assert.Contains(t, rej.Reason, "12:00-13:00")

	// Half-open: starting exactly when the block ends is fine.
	assert.Nil(t, Validate(Candidate{Date: date("2025-03-14"), StartTime: "13:00", EndTime: "13:30"}, snap, nil))
}

func TestValidateCapacityBoundary(t *testing.T) {
	snap := DefaultSnapshot()
	snap.AgentCount = 3
	candidate := Candidate{Date: date("2025-06-15"), StartTime: "10:00", EndTime: "10:30"}

	existing := make([]Booking, 0, 3)
	for i := 0; i < 2; i++ {
		existing = append(existing, booking(fmt.Sprintf("m%d", i), "2025-06-15", "10:00", "10:30"))
	}
	// N-1 overlapping meetings: accepted.
	assert.Nil(t, Validate(candidate, snap, existing))

	existing = append(existing, booking("m2", "2025-06-15", "10:00", "10:30"))
	// Exactly N: the next identical candidate is rejected.
	rej := Validate(candidate, snap, existing)
	require.NotNil(t, rej)
	assert.Equal(t, RejectCapacityExhausted, rej.Kind)
	assert.Contains(t, rej.Reason, "3")
}

func TestValidateSingleAgentScenario(t *testing.T) {
	// Sunday 09:00-17:00, one agent, no exceptions, no holidays nearby.
	snap := DefaultSnapshot()
	candidate := Candidate{Date: date("2025-06-15"), StartTime: "10:00", EndTime: "10:30"}

	assert.Nil(t, Validate(candidate, snap, nil))

	taken := []Booking{booking("m1", "2025-06-15", "10:00", "10:30")}
	rej := Validate(candidate, snap, taken)
	require.NotNil(t, rej)
	assert.Equal(t, RejectCapacityExhausted, rej.Kind)
}

func TestValidateCapacityIgnoresCancelledAndOtherDays(t *testing.T) {
	snap := DefaultSnapshot()
	cancelled := booking("m1", "2025-06-15", "10:00", "10:30")
	cancelled.Cancelled = true
	existing := []Booking{
		cancelled,
		booking("m2", "2025-06-16", "10:00", "10:30"), // different day
		booking("m3", "2025-06-15", "10:30", "11:00"), // touches but does not overlap
	}
	assert.Nil(t, Validate(Candidate{Date: date("2025-06-15"), StartTime: "10:00", EndTime: "10:30"}, snap, existing))
}

// Validation over an immutable snapshot is idempotent.
func TestValidateIdempotent(t *testing.T) {
	snap := DefaultSnapshot()
	existing := []Booking{booking("m1", "2025-06-15", "10:00", "11:00")}
	candidate := Candidate{Date: date("2025-06-15"), StartTime: "10:30", EndTime: "11:30"}

	first := Validate(candidate, snap, existing)
	second := Validate(candidate, snap, existing)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.Kind, second.Kind)
	assert.Equal(t, first.Reason, second.Reason)
}

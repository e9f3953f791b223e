package scheduling

import "time"

// TimeRange is a same-day interval of wall-clock time. Start must be
// before End when compared as minute offsets; ranges within one day
// template are treated as a union and need not be disjoint.
type TimeRange struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// Contains reports whether [startMin, endMin) lies fully inside the range.
func (r TimeRange) Contains(startMin, endMin int) bool {
	return ToMinutes(r.Start) <= startMin && endMin <= ToMinutes(r.End)
}

// Overlaps applies the half-open interval test: [a,b) and [c,d) overlap
// iff a < d and c < b.
func (r TimeRange) Overlaps(startMin, endMin int) bool {
	return startMin < ToMinutes(r.End) && ToMinutes(r.Start) < endMin
}

// AvailabilityDay is the recurring template for one weekday. A disabled
// day has zero availability regardless of its ranges.
type AvailabilityDay struct {
	Enabled bool        `json:"enabled"`
	Ranges  []TimeRange `json:"ranges"`
}

// ExceptionType discriminates date exceptions.
type ExceptionType string

const (
	ExceptionBlock ExceptionType = "block"
	ExceptionOpen  ExceptionType = "open"
)

// DateException is a date-specific override of the weekly template:
// either a block (all-day or range-scoped) or an opening that replaces
// the weekday window for that date. Exceptions are replaced by
// delete-and-add, never updated in place.
type DateException struct {
	ID     string        `json:"id"`
	Date   string        `json:"date"` // YYYY-MM-DD
	Type   ExceptionType `json:"type"`
	AllDay bool          `json:"all_day"`
	Ranges []TimeRange   `json:"ranges,omitempty"`
	Reason string        `json:"reason"`
}

// Snapshot is one coherent, immutable view of the scheduling
// configuration. It is loaded and saved wholesale; validator and layout
// calls receive it as a value and never mutate shared state.
type Snapshot struct {
	Week          [7]AvailabilityDay `json:"week"` // indexed by time.Weekday, 0=Sunday
	Exceptions    []DateException    `json:"exceptions"`
	AgentCount    int                `json:"agent_count"`
	BlockHolidays bool               `json:"block_holidays"`
}

// DefaultSnapshot returns the template the store falls back to when no
// configuration has ever been saved: Sunday-Thursday 09:00-17:00, one
// agent, holidays blocked.
func DefaultSnapshot() Snapshot {
	snap := Snapshot{AgentCount: 1, BlockHolidays: true}
	for wd := time.Sunday; wd <= time.Thursday; wd++ {
		snap.Week[wd] = AvailabilityDay{
			Enabled: true,
			Ranges:  []TimeRange{{Start: "09:00", End: "17:00"}},
		}
	}
	return snap
}

// Normalize patches a snapshot loaded from the store into a usable
// shape: at least one agent, and never a nil exception list.
func (s *Snapshot) Normalize() {
	if s.AgentCount < 1 {
		s.AgentCount = 1
	}
	if s.Exceptions == nil {
		s.Exceptions = []DateException{}
	}
}

// HolidayOn resolves the holiday for a date, honoring the global
// toggle: when BlockHolidays is off the table is never consulted.
func (s Snapshot) HolidayOn(date time.Time) *Holiday {
	if !s.BlockHolidays {
		return nil
	}
	return HolidayOn(date)
}

// ExceptionOn returns the first exception recorded for the date, if
// any. The model permits several exceptions on one date; only the
// first in insertion order is returned. Precedence between same-date
// exceptions is deliberately left undefined (see DESIGN.md).
func (s Snapshot) ExceptionOn(date time.Time) *DateException {
	key := date.Format(DateLayout)
	for i := range s.Exceptions {
		if s.Exceptions[i].Date == key {
			return &s.Exceptions[i]
		}
	}
	return nil
}

func (s Snapshot) exceptionOfType(date time.Time, kind ExceptionType) *DateException {
	key := date.Format(DateLayout)
	for i := range s.Exceptions {
		if s.Exceptions[i].Date == key && s.Exceptions[i].Type == kind {
			return &s.Exceptions[i]
		}
	}
	return nil
}

// OpenExceptionOn returns the first open-type exception for the date.
func (s Snapshot) OpenExceptionOn(date time.Time) *DateException {
	return s.exceptionOfType(date, ExceptionOpen)
}

// BlockExceptionOn returns the first block-type exception for the date.
func (s Snapshot) BlockExceptionOn(date time.Time) *DateException {
	return s.exceptionOfType(date, ExceptionBlock)
}

// DayBlock reports whether the date admits no meetings at all: a
// blocking holiday, or an all-day block exception. A day blocked this
// way short-circuits every time-range check.
func (s Snapshot) DayBlock(date time.Time) (reason string, blocked bool) {
	if h := s.HolidayOn(date); h != nil {
		return h.Name, true
	}
	if exc := s.BlockExceptionOn(date); exc != nil && exc.AllDay {
		return exc.Reason, true
	}
	return "", false
}

// EffectiveWindow resolves the bookable window for a date. Precedence:
// an open exception replaces the weekday template entirely; otherwise
// the weekday template applies; a disabled weekday with no opening
// yields no window. Only the first range of either source is
// consulted; additional template ranges are editable but not enforced
// here. That first-range approximation is kept on purpose (DESIGN.md).
func (s Snapshot) EffectiveWindow(date time.Time) (TimeRange, bool) {
	if exc := s.OpenExceptionOn(date); exc != nil && len(exc.Ranges) > 0 {
		return exc.Ranges[0], true
	}
	day := s.Week[date.Weekday()]
	if !day.Enabled || len(day.Ranges) == 0 {
		return TimeRange{}, false
	}
	return day.Ranges[0], true
}

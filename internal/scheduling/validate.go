package scheduling

import (
	"fmt"
	"time"
)

// RejectionKind identifies why a candidate meeting was refused.
type RejectionKind string

const (
	RejectInvalidTimeRange  RejectionKind = "INVALID_TIME_RANGE"
	RejectHolidayBlocked    RejectionKind = "HOLIDAY_BLOCKED"
	RejectDateBlocked       RejectionKind = "DATE_BLOCKED"
	RejectNoAvailability    RejectionKind = "NO_AVAILABILITY"
	RejectOutsideWindow     RejectionKind = "OUTSIDE_WINDOW"
	RejectCapacityExhausted RejectionKind = "CAPACITY_EXHAUSTED"
)

// Rejection is an expected, user-facing validation outcome. It is not
// an infrastructure fault: the admin must change the request, there is
// nothing to retry. It implements error so it can travel through the
// service layer unchanged.
type Rejection struct {
	Kind   RejectionKind `json:"kind"`
	Reason string        `json:"reason"`
}

func (r *Rejection) Error() string { return r.Reason }

func reject(kind RejectionKind, format string, args ...interface{}) *Rejection {
	return &Rejection{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Candidate is a proposed meeting: one calendar day plus a wall-clock
// time range on that day.
type Candidate struct {
	Date      time.Time
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
}

// Booking is the slice of an existing meeting the engine needs for
// capacity counting and overlap layout.
type Booking struct {
	ID        string
	Start     time.Time
	End       time.Time
	Cancelled bool
}

// Validate decides whether a candidate meeting is legal under the given
// snapshot and the already-scheduled meetings of the candidate's day.
// It returns nil on acceptance, or the first failing check's rejection.
//
// Checks run in a fixed order and short-circuit, so rejection reasons
// are mutually exclusive and deterministic: date-level structural
// checks (holiday, blocks, availability, window) always win over the
// meeting-level capacity check. A day that is both a holiday and fully
// booked reports the holiday.
func Validate(c Candidate, snap Snapshot, existing []Booking) *Rejection {
	startMin := ToMinutes(c.StartTime)
	endMin := ToMinutes(c.EndTime)
	if endMin <= startMin {
		return reject(RejectInvalidTimeRange, "שעת הסיום חייבת להיות אחרי שעת ההתחלה")
	}

	if h := snap.HolidayOn(c.Date); h != nil {
		return reject(RejectHolidayBlocked, "התאריך חל בחג: %s", h.Name)
	}

	if reason, blocked := snap.DayBlock(c.Date); blocked {
		return reject(RejectDateBlocked, "היום חסום: %s", reason)
	}

	window, ok := snap.EffectiveWindow(c.Date)
	if !ok {
		return reject(RejectNoAvailability, "אין זמינות ביום זה")
	}
	if !window.Contains(startMin, endMin) {
		return reject(RejectOutsideWindow, "מחוץ לשעות הזמינות %s-%s", window.Start, window.End)
	}

	if exc := snap.BlockExceptionOn(c.Date); exc != nil && !exc.AllDay {
		for _, r := range exc.Ranges {
			if r.Overlaps(startMin, endMin) {
				return reject(RejectDateBlocked, "השעות %s-%s חסומות: %s", r.Start, r.End, exc.Reason)
			}
		}
	}

	concurrent := 0
	for _, b := range existing {
		if b.Cancelled || !SameDay(b.Start, c.Date) {
			continue
		}
		if startMin < MinuteOfDay(b.End) && MinuteOfDay(b.Start) < endMin {
			concurrent++
		}
	}
	if concurrent >= snap.AgentCount {
		return reject(RejectCapacityExhausted, "כל %d הנציגים תפוסים בשעות אלו", snap.AgentCount)
	}

	return nil
}

package dto

import (
	"time"

	"github.com/mashkanta-digital/admin-api/internal/scheduling"
)

// CalendarMeeting is one rendered meeting in a day or week grid, with
// its overlap placement and the derived column geometry. Left and Width
// are fractions of the day-column width; a meeting with Total 1 spans
// the full column.
type CalendarMeeting struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Status   string    `json:"status"`
	Index    int       `json:"index"`
	Total    int       `json:"total"`
	Left     float64   `json:"left"`
	Width    float64   `json:"width"`
}

// CalendarDayView is the day-grid payload: meetings with placements
// plus the availability overlay for the date.
type CalendarDayView struct {
	Date        string                    `json:"date"`
	Weekday     string                    `json:"weekday"`
	Holiday     *scheduling.Holiday       `json:"holiday,omitempty"`
	Blocked     bool                      `json:"blocked"`
	BlockReason string                    `json:"block_reason,omitempty"`
	Window      *scheduling.TimeRange     `json:"window,omitempty"`
	Exception   *scheduling.DateException `json:"exception,omitempty"`
	Meetings    []CalendarMeeting         `json:"meetings"`
}

// CalendarWeekView is seven consecutive day views starting on Sunday.
type CalendarWeekView struct {
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Days      []CalendarDayView `json:"days"`
}

// CalendarMonthDay summarizes one cell of the month grid.
type CalendarMonthDay struct {
	Date         string `json:"date"`
	MeetingCount int    `json:"meeting_count"`
	Blocked      bool   `json:"blocked"`
	HolidayName  string `json:"holiday_name,omitempty"`
}

// CalendarMonthView is the month-grid payload.
type CalendarMonthView struct {
	Month string             `json:"month"` // YYYY-MM
	Days  []CalendarMonthDay `json:"days"`
}

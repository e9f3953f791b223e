package scheduling

import "time"

// Holiday is a static reference entry in the national holiday table.
type Holiday struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
}

// holidayTable covers the Israeli holidays the brokerage observes for
// 2025-2026. Read-only reference data; whether a matching date actually
// blocks scheduling is controlled by the BlockHolidays toggle on the
// settings snapshot.
var holidayTable = []Holiday{
	{Date: "2025-03-14", Name: "פורים"},
	{Date: "2025-04-13", Name: "פסח"},
	{Date: "2025-04-19", Name: "שביעי של פסח"},
	{Date: "2025-05-01", Name: "יום העצמאות"},
	{Date: "2025-06-02", Name: "שבועות"},
	{Date: "2025-09-23", Name: "ראש השנה"},
	{Date: "2025-09-24", Name: "ראש השנה"},
	{Date: "2025-10-02", Name: "יום כיפור"},
	{Date: "2025-10-07", Name: "סוכות"},
	{Date: "2025-10-14", Name: "שמחת תורה"},
	{Date: "2026-03-03", Name: "פורים"},
	{Date: "2026-04-02", Name: "פסח"},
	{Date: "2026-04-08", Name: "שביעי של פסח"},
	{Date: "2026-04-22", Name: "יום העצמאות"},
	{Date: "2026-05-22", Name: "שבועות"},
	{Date: "2026-09-12", Name: "ראש השנה"},
	{Date: "2026-09-13", Name: "ראש השנה"},
	{Date: "2026-09-21", Name: "יום כיפור"},
	{Date: "2026-09-26", Name: "סוכות"},
	{Date: "2026-10-03", Name: "שמחת תורה"},
}

// HolidayOn looks up the holiday falling on the given date, if any.
func HolidayOn(date time.Time) *Holiday {
	key := date.Format(DateLayout)
	for i := range holidayTable {
		if holidayTable[i].Date == key {
			return &holidayTable[i]
		}
	}
	return nil
}

// Holidays returns a copy of the full holiday table, ordered by date.
func Holidays() []Holiday {
	out := make([]Holiday, len(holidayTable))
	copy(out, holidayTable)
	return out
}

package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mashkanta-digital/admin-api/internal/dto"
	"github.com/mashkanta-digital/admin-api/internal/models"
	"github.com/mashkanta-digital/admin-api/internal/scheduling"
	appErrors "github.com/mashkanta-digital/admin-api/pkg/errors"
	"github.com/mashkanta-digital/admin-api/pkg/export"
)

type calendarMeetingSource interface {
	List(ctx context.Context, filter models.MeetingFilter) ([]models.Meeting, int, error)
	ListOnDay(ctx context.Context, day time.Time) ([]models.Meeting, error)
}

// CalendarServiceConfig tunes view assembly.
type CalendarServiceConfig struct {
	// ClusteredLayout switches the overlap layout from the legacy
	// per-meeting neighborhoods to transitive clustering.
	ClusteredLayout bool
}

// CalendarService assembles day, week and month views: meetings with
// their overlap placements plus the availability overlay per date.
type CalendarService struct {
	meetings  calendarMeetingSource
	snapshots snapshotProvider
	pdf       *export.SchedulePDF
	cfg       CalendarServiceConfig
	logger    *zap.Logger
}

// NewCalendarService constructs the service.
func NewCalendarService(meetings calendarMeetingSource, snapshots snapshotProvider, pdf *export.SchedulePDF, cfg CalendarServiceConfig, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{meetings: meetings, snapshots: snapshots, pdf: pdf, cfg: cfg, logger: logger}
}

// DayView returns the rendered day grid for a date.
func (s *CalendarService) DayView(ctx context.Context, day time.Time) (*dto.CalendarDayView, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildDay(ctx, day, snap)
}

// WeekView returns seven day views starting from the Sunday of the
// anchor date's week.
func (s *CalendarService) WeekView(ctx context.Context, anchor time.Time) (*dto.CalendarWeekView, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	start := scheduling.StartOfWeek(anchor)
	view := &dto.CalendarWeekView{
		StartDate: start.Format(scheduling.DateLayout),
		EndDate:   scheduling.AddDays(start, 6).Format(scheduling.DateLayout),
		Days:      make([]dto.CalendarDayView, 0, 7),
	}
	for i := 0; i < 7; i++ {
		day, err := s.buildDay(ctx, scheduling.AddDays(start, i), snap)
		if err != nil {
			return nil, err
		}
		view.Days = append(view.Days, *day)
	}
	return view, nil
}

// MonthView returns the month grid: per-day meeting counts and
// blocked/holiday flags, without per-meeting layout.
func (s *CalendarService) MonthView(ctx context.Context, anchor time.Time) (*dto.CalendarMonthView, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	start := scheduling.StartOfMonth(anchor)
	end := scheduling.EndOfMonth(anchor)
	rangeEnd := scheduling.AddDays(end, 1)

	meetings, _, err := s.meetings.List(ctx, models.MeetingFilter{
		From: &start, To: &rangeEnd, Page: 1, PageSize: 200,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to load month meetings")
	}

	counts := make(map[string]int)
	for _, m := range meetings {
		if m.Status == models.MeetingStatusCancelled {
			continue
		}
		counts[m.StartsAt.Format(scheduling.DateLayout)]++
	}

	view := &dto.CalendarMonthView{Month: start.Format("2006-01")}
	for day := start; !day.After(end); day = scheduling.AddDays(day, 1) {
		key := day.Format(scheduling.DateLayout)
		cell := dto.CalendarMonthDay{Date: key, MeetingCount: counts[key]}
		if _, blocked := snap.DayBlock(day); blocked {
			cell.Blocked = true
		}
		if h := snap.HolidayOn(day); h != nil {
			cell.HolidayName = h.Name
		}
		view.Days = append(view.Days, cell)
	}
	return view, nil
}

// ExportDay renders a printable PDF of one day's schedule.
func (s *CalendarService) ExportDay(ctx context.Context, day time.Time) ([]byte, error) {
	view, err := s.DayView(ctx, day)
	if err != nil {
		return nil, err
	}
	doc := export.ScheduleDocument{
		Title: "Daily schedule " + view.Date,
		Date:  view.Date,
	}
	if view.Blocked {
		doc.Note = "Day blocked: " + view.BlockReason
	} else if view.Window != nil {
		doc.Note = "Availability " + view.Window.Start + "-" + view.Window.End
	}
	for _, m := range view.Meetings {
		doc.Entries = append(doc.Entries, export.ScheduleEntry{
			Start:  m.StartsAt.Format(scheduling.ClockLayout),
			End:    m.EndsAt.Format(scheduling.ClockLayout),
			Title:  m.Title,
			Status: m.Status,
		})
	}
	payload, err := s.pdf.Render(doc)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render schedule pdf")
	}
	return payload, nil
}

func (s *CalendarService) buildDay(ctx context.Context, day time.Time, snap scheduling.Snapshot) (*dto.CalendarDayView, error) {
	meetings, err := s.meetings.ListOnDay(ctx, day)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to load day meetings")
	}

	view := &dto.CalendarDayView{
		Date:     day.Format(scheduling.DateLayout),
		Weekday:  day.Weekday().String(),
		Holiday:  snap.HolidayOn(day),
		Meetings: make([]dto.CalendarMeeting, 0, len(meetings)),
	}
	if reason, blocked := snap.DayBlock(day); blocked {
		view.Blocked = true
		view.BlockReason = reason
	}
	if window, ok := snap.EffectiveWindow(day); ok {
		view.Window = &window
	}
	view.Exception = snap.ExceptionOn(day)

	placements := scheduling.Layout(toBookings(meetings), scheduling.LayoutOptions{Clustered: s.cfg.ClusteredLayout})
	for _, m := range meetings {
		placement, ok := placements[m.ID]
		if !ok {
			// Cancelled meetings stay visible but render full width.
			placement = scheduling.Placement{Index: 0, Total: 1}
		}
		width := 1.0 / float64(placement.Total)
		view.Meetings = append(view.Meetings, dto.CalendarMeeting{
			ID:       m.ID,
			UserID:   m.UserID,
			Title:    m.Title,
			StartsAt: m.StartsAt,
			EndsAt:   m.EndsAt,
			Status:   string(m.Status),
			Index:    placement.Index,
			Total:    placement.Total,
			Left:     float64(placement.Index) * width,
			Width:    width,
		})
	}
	return view, nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mashkanta-digital/admin-api/internal/models"
	"github.com/mashkanta-digital/admin-api/internal/scheduling"
	appErrors "github.com/mashkanta-digital/admin-api/pkg/errors"
)

type meetingRepository interface {
	List(ctx context.Context, filter models.MeetingFilter) ([]models.Meeting, int, error)
	ListOnDay(ctx context.Context, day time.Time) ([]models.Meeting, error)
	GetByID(ctx context.Context, id string) (*models.Meeting, error)
	Create(ctx context.Context, meeting *models.Meeting) error
	Delete(ctx context.Context, id string) error
}

type snapshotProvider interface {
	Snapshot(ctx context.Context) (scheduling.Snapshot, error)
}

type meetingNotifier interface {
	MeetingScheduled(ctx context.Context, meeting *models.Meeting) error
}

type validationObserver interface {
	ObserveValidation(outcome string)
}

// MeetingService runs candidates through the scheduling engine and
// persists the accepted ones.
type MeetingService struct {
	repo      meetingRepository
	snapshots snapshotProvider
	notifier  meetingNotifier
	metrics   validationObserver
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMeetingService constructs the service. notifier and metrics may be
// nil.
func NewMeetingService(repo meetingRepository, snapshots snapshotProvider, notifier meetingNotifier, metrics validationObserver, validate *validator.Validate, logger *zap.Logger) *MeetingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	registerClockValidation(validate)
	return &MeetingService{
		repo:      repo,
		snapshots: snapshots,
		notifier:  notifier,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
	}
}

// ScheduleMeetingRequest is a candidate meeting: one calendar day plus
// a wall-clock range on it.
type ScheduleMeetingRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"required,clock"`
	Notes     string `json:"notes"`
}

// ScheduleMeetingResult wraps a created meeting. Warning carries the
// non-fatal notification failure described in the error policy: the
// meeting stands even when the confirmation message could not be sent.
type ScheduleMeetingResult struct {
	Meeting *models.Meeting `json:"meeting"`
	Warning string          `json:"warning,omitempty"`
}

// MeetingListRequest filters the meeting listing.
type MeetingListRequest struct {
	From     *time.Time
	To       *time.Time
	UserID   string
	Page     int
	PageSize int
}

// Schedule validates a candidate against the current availability
// snapshot and the day's existing meetings, persisting it on accept.
// Validation rejections come back as *scheduling.Rejection errors,
// distinguishable from infrastructure failures.
func (s *MeetingService) Schedule(ctx context.Context, req ScheduleMeetingRequest) (*ScheduleMeetingResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid meeting payload")
	}
	day, err := time.ParseInLocation(scheduling.DateLayout, req.Date, time.Local)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid date, expected YYYY-MM-DD")
	}

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.ListOnDay(ctx, day)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to load existing meetings")
	}

	candidate := scheduling.Candidate{Date: day, StartTime: req.StartTime, EndTime: req.EndTime}
	if rejection := scheduling.Validate(candidate, snap, toBookings(existing)); rejection != nil {
		s.observe(string(rejection.Kind))
		return nil, rejection
	}
	s.observe("accepted")

	meeting := &models.Meeting{
		UserID:   req.UserID,
		Title:    req.Title,
		StartsAt: scheduling.At(day, req.StartTime),
		EndsAt:   scheduling.At(day, req.EndTime),
		Status:   models.MeetingStatusApproved,
		Notes:    req.Notes,
	}
	if err := s.repo.Create(ctx, meeting); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to create meeting")
	}

	result := &ScheduleMeetingResult{Meeting: meeting}
	if s.notifier != nil {
		if err := s.notifier.MeetingScheduled(ctx, meeting); err != nil {
			// The meeting stands; the side-channel failure is reported
			// as a warning, never rolled back.
			s.logger.Warn("meeting notification failed",
				zap.String("meeting_id", meeting.ID), zap.Error(err))
			result.Warning = "הפגישה נקבעה אך שליחת ההודעה ללקוח נכשלה"
		}
	}
	return result, nil
}

// List returns meetings with paging metadata.
func (s *MeetingService) List(ctx context.Context, req MeetingListRequest) ([]models.Meeting, *models.Pagination, error) {
	filter := models.MeetingFilter{
		From:     req.From,
		To:       req.To,
		UserID:   req.UserID,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}
	meetings, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to list meetings")
	}
	pagination := &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}
	return meetings, pagination, nil
}

// Delete removes a meeting by id.
func (s *MeetingService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "meeting not found")
		}
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to load meeting")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to delete meeting")
	}
	return nil
}

func (s *MeetingService) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveValidation(outcome)
	}
}

func toBookings(meetings []models.Meeting) []scheduling.Booking {
	bookings := make([]scheduling.Booking, 0, len(meetings))
	for _, m := range meetings {
		bookings = append(bookings, scheduling.Booking{
			ID:        m.ID,
			Start:     m.StartsAt,
			End:       m.EndsAt,
			Cancelled: m.Status == models.MeetingStatusCancelled,
		})
	}
	return bookings
}

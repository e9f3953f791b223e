package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mashkanta-digital/admin-api/internal/models"
	"github.com/mashkanta-digital/admin-api/internal/scheduling"
	appErrors "github.com/mashkanta-digital/admin-api/pkg/errors"
)

type settingsStore interface {
	Load(ctx context.Context) (*models.SchedulingSettings, error)
	Save(ctx context.Context, settings *models.SchedulingSettings) (*models.SchedulingSettings, error)
}

type settingsCache interface {
	Get(ctx context.Context) (*models.SchedulingSettings, error)
	Set(ctx context.Context, settings *models.SchedulingSettings)
	Invalidate(ctx context.Context)
}

// AvailabilityService manages the scheduling configuration: the weekly
// template, date exceptions, agent capacity and the holiday toggle.
// Every mutation replaces the stored document wholesale so readers
// always observe a coherent snapshot.
type AvailabilityService struct {
	repo      settingsStore
	cache     settingsCache
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAvailabilityService constructs the service.
func NewAvailabilityService(repo settingsStore, cache settingsCache, validate *validator.Validate, logger *zap.Logger) *AvailabilityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	registerClockValidation(validate)
	return &AvailabilityService{repo: repo, cache: cache, validator: validate, logger: logger}
}

func registerClockValidation(validate *validator.Validate) {
	_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(scheduling.ClockLayout, fl.Field().String())
		return err == nil
	})
}

// TimeRangeRequest is one "HH:MM" interval in a payload.
type TimeRangeRequest struct {
	Start string `json:"start" validate:"required,clock"`
	End   string `json:"end" validate:"required,clock"`
}

// AvailabilityDayRequest is one weekday of the template payload.
type AvailabilityDayRequest struct {
	Enabled bool               `json:"enabled"`
	Ranges  []TimeRangeRequest `json:"ranges" validate:"dive"`
}

// UpdateAvailabilityRequest replaces the whole configuration.
type UpdateAvailabilityRequest struct {
	Week          []AvailabilityDayRequest `json:"week" validate:"required,len=7,dive"`
	AgentCount    int                      `json:"agent_count" validate:"required,min=1"`
	BlockHolidays bool                     `json:"block_holidays"`
}

// CreateExceptionRequest adds one date exception. Exceptions have no
// update-in-place: replace by delete and add.
type CreateExceptionRequest struct {
	Date   string             `json:"date" validate:"required,datetime=2006-01-02"`
	Type   string             `json:"type" validate:"required,oneof=block open"`
	AllDay bool               `json:"all_day"`
	Ranges []TimeRangeRequest `json:"ranges" validate:"dive"`
	Reason string             `json:"reason"`
}

// Get returns the current configuration snapshot.
func (s *AvailabilityService) Get(ctx context.Context) (*models.SchedulingSettings, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Snapshot returns the current configuration as an engine snapshot.
// Used by the meeting and calendar services.
func (s *AvailabilityService) Snapshot(ctx context.Context) (scheduling.Snapshot, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return scheduling.Snapshot{}, err
	}
	return settings.Document.Snapshot, nil
}

// Save validates and replaces the configuration wholesale.
func (s *AvailabilityService) Save(ctx context.Context, req UpdateAvailabilityRequest) (*models.SchedulingSettings, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid availability payload")
	}
	snap := scheduling.Snapshot{AgentCount: req.AgentCount, BlockHolidays: req.BlockHolidays}
	for i, day := range req.Week {
		ranges, err := toRanges(day.Ranges)
		if err != nil {
			return nil, err
		}
		snap.Week[i] = scheduling.AvailabilityDay{Enabled: day.Enabled, Ranges: ranges}
	}

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	// Exceptions are managed through their own endpoints; saving the
	// template keeps them intact.
	snap.Exceptions = current.Document.Exceptions

	return s.persist(ctx, snap)
}

// AddException appends a new date exception and saves the document.
func (s *AvailabilityService) AddException(ctx context.Context, req CreateExceptionRequest) (*scheduling.DateException, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exception payload")
	}
	if !req.AllDay && len(req.Ranges) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "a ranged exception needs at least one time range")
	}
	ranges, err := toRanges(req.Ranges)
	if err != nil {
		return nil, err
	}
	exception := scheduling.DateException{
		ID:     uuid.NewString(),
		Date:   req.Date,
		Type:   scheduling.ExceptionType(req.Type),
		AllDay: req.AllDay,
		Reason: req.Reason,
	}
	if !exception.AllDay {
		exception.Ranges = ranges
	}

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	snap := current.Document.Snapshot
	snap.Exceptions = append(snap.Exceptions, exception)
	if _, err := s.persist(ctx, snap); err != nil {
		return nil, err
	}
	return &exception, nil
}

// DeleteException removes an exception by id and saves the document.
func (s *AvailabilityService) DeleteException(ctx context.Context, id string) error {
	current, err := s.load(ctx)
	if err != nil {
		return err
	}
	snap := current.Document.Snapshot
	kept := snap.Exceptions[:0]
	found := false
	for _, exc := range snap.Exceptions {
		if exc.ID == id {
			found = true
			continue
		}
		kept = append(kept, exc)
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "exception not found")
	}
	snap.Exceptions = kept
	_, err = s.persist(ctx, snap)
	return err
}

func (s *AvailabilityService) load(ctx context.Context) (*models.SchedulingSettings, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.logger.Warn("settings cache read failed", zap.Error(err))
		}
	}
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to load scheduling settings")
	}
	if s.cache != nil {
		s.cache.Set(ctx, settings)
	}
	return settings, nil
}

func (s *AvailabilityService) persist(ctx context.Context, snap scheduling.Snapshot) (*models.SchedulingSettings, error) {
	saved, err := s.repo.Save(ctx, &models.SchedulingSettings{
		Document: models.SettingsDocument{Snapshot: snap},
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to save scheduling settings")
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return saved, nil
}

func toRanges(reqs []TimeRangeRequest) ([]scheduling.TimeRange, error) {
	ranges := make([]scheduling.TimeRange, 0, len(reqs))
	for _, r := range reqs {
		if scheduling.ToMinutes(r.End) <= scheduling.ToMinutes(r.Start) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "range end must be after start")
		}
		ranges = append(ranges, scheduling.TimeRange{Start: r.Start, End: r.End})
	}
	return ranges, nil
}

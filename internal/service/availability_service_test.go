package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mashkanta-digital/admin-api/internal/models"
	"github.com/mashkanta-digital/admin-api/internal/scheduling"
	appErrors "github.com/mashkanta-digital/admin-api/pkg/errors"
)

type mockSettingsStore struct {
	stored  *models.SchedulingSettings
	loadErr error
	saveErr error
	saves   int
}

func (m *mockSettingsStore) Load(ctx context.Context) (*models.SchedulingSettings, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.stored == nil {
		return &models.SchedulingSettings{
			ID:       "default",
			Document: models.SettingsDocument{Snapshot: scheduling.DefaultSnapshot()},
		}, nil
	}
	cp := *m.stored
	return &cp, nil
}

func (m *mockSettingsStore) Save(ctx context.Context, settings *models.SchedulingSettings) (*models.SchedulingSettings, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	m.saves++
	settings.ID = "default"
	settings.Document.Normalize()
	cp := *settings
	m.stored = &cp
	return settings, nil
}

type mockSettingsCache struct {
	cached      *models.SchedulingSettings
	sets        int
	invalidated int
}

func (m *mockSettingsCache) Get(ctx context.Context) (*models.SchedulingSettings, error) {
	return m.cached, nil
}

func (m *mockSettingsCache) Set(ctx context.Context, settings *models.SchedulingSettings) {
	m.sets++
	m.cached = settings
}

func (m *mockSettingsCache) Invalidate(ctx context.Context) {
	m.invalidated++
	m.cached = nil
}

func fullWeekRequest() UpdateAvailabilityRequest {
	week := make([]AvailabilityDayRequest, 7)
	for i := 0; i < 5; i++ {
		week[i] = AvailabilityDayRequest{
			Enabled: true,
			Ranges:  []TimeRangeRequest{{Start: "09:00", End: "17:00"}},
		}
	}
	return UpdateAvailabilityRequest{Week: week, AgentCount: 2, BlockHolidays: true}
}

func TestSaveReplacesTemplateKeepingExceptions(t *testing.T) {
	existing := scheduling.DefaultSnapshot()
	existing.Exceptions = []scheduling.DateException{
		{ID: "e1", Date: "2025-03-12", Type: scheduling.ExceptionBlock, AllDay: true},
	}
	store := &mockSettingsStore{stored: &models.SchedulingSettings{
		ID:       "default",
		Document: models.SettingsDocument{Snapshot: existing},
	}}
	svc := NewAvailabilityService(store, nil, nil, nil)

	saved, err := svc.Save(context.Background(), fullWeekRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Document.AgentCount)
	require.Len(t, saved.Document.Exceptions, 1)
	assert.Equal(t, "e1", saved.Document.Exceptions[0].ID)
}

func TestSaveRejectsShortWeek(t *testing.T) {
	svc := NewAvailabilityService(&mockSettingsStore{}, nil, nil, nil)

	req := fullWeekRequest()
	req.Week = req.Week[:6]
	_, err := svc.Save(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSaveRejectsInvertedRange(t *testing.T) {
	svc := NewAvailabilityService(&mockSettingsStore{}, nil, nil, nil)

	req := fullWeekRequest()
	req.Week[0].Ranges = []TimeRangeRequest{{Start: "17:00", End: "09:00"}}
	_, err := svc.Save(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSaveRejectsZeroAgents(t *testing.T) {
	svc := NewAvailabilityService(&mockSettingsStore{}, nil, nil, nil)

	req := fullWeekRequest()
	req.AgentCount = 0
	_, err := svc.Save(context.Background(), req)
	require.Error(t, err)
}

func TestAddExceptionAssignsID(t *testing.T) {
	store := &mockSettingsStore{}
	svc := NewAvailabilityService(store, nil, nil, nil)

	exception, err := svc.AddException(context.Background(), CreateExceptionRequest{
		Date:   "2025-03-12",
		Type:   "block",
		AllDay: true,
		Reason: "חופשה",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, exception.ID)
	assert.True(t, exception.AllDay)
	assert.Empty(t, exception.Ranges)

	require.NotNil(t, store.stored)
	require.Len(t, store.stored.Document.Exceptions, 1)
}

func TestAddExceptionRequiresRangesWhenNotAllDay(t *testing.T) {
	svc := NewAvailabilityService(&mockSettingsStore{}, nil, nil, nil)

	_, err := svc.AddException(context.Background(), CreateExceptionRequest{
		Date: "2025-03-12",
		Type: "block",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAddExceptionRejectsUnknownType(t *testing.T) {
	svc := NewAvailabilityService(&mockSettingsStore{}, nil, nil, nil)

	_, err := svc.AddException(context.Background(), CreateExceptionRequest{
		Date:   "2025-03-12",
		Type:   "pause",
		AllDay: true,
	})
	require.Error(t, err)
}

func TestDeleteExceptionNotFound(t *testing.T) {
	svc := NewAvailabilityService(&mockSettingsStore{}, nil, nil, nil)

	err := svc.DeleteException(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDeleteExceptionRemoves(t *testing.T) {
	snap := scheduling.DefaultSnapshot()
	snap.Exceptions = []scheduling.DateException{
		{ID: "e1", Date: "2025-03-12", Type: scheduling.ExceptionBlock, AllDay: true},
		{ID: "e2", Date: "2025-03-14", Type: scheduling.ExceptionOpen, Ranges: []scheduling.TimeRange{{Start: "10:00", End: "14:00"}}},
	}
	store := &mockSettingsStore{stored: &models.SchedulingSettings{
		ID:       "default",
		Document: models.SettingsDocument{Snapshot: snap},
	}}
	svc := NewAvailabilityService(store, nil, nil, nil)

	require.NoError(t, svc.DeleteException(context.Background(), "e1"))
	require.Len(t, store.stored.Document.Exceptions, 1)
	assert.Equal(t, "e2", store.stored.Document.Exceptions[0].ID)
}

func TestMutationsInvalidateCache(t *testing.T) {
	store := &mockSettingsStore{}
	cache := &mockSettingsCache{}
	svc := NewAvailabilityService(store, cache, nil, nil)

	_, err := svc.Save(context.Background(), fullWeekRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)
}

func TestLoadPrefersCache(t *testing.T) {
	store := &mockSettingsStore{loadErr: assert.AnError}
	cache := &mockSettingsCache{cached: &models.SchedulingSettings{
		ID:       "default",
		Document: models.SettingsDocument{Snapshot: scheduling.DefaultSnapshot()},
	}}
	svc := NewAvailabilityService(store, cache, nil, nil)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "default", settings.ID)
}

func TestLoadFailureIsStoreUnavailable(t *testing.T) {
	store := &mockSettingsStore{loadErr: assert.AnError}
	svc := NewAvailabilityService(store, nil, nil, nil)

	_, err := svc.Get(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrStoreUnavailable.Code, appErrors.FromError(err).Code)
}

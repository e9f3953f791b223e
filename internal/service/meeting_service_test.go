package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mashkanta-digital/admin-api/internal/models"
	"github.com/mashkanta-digital/admin-api/internal/scheduling"
	appErrors "github.com/mashkanta-digital/admin-api/pkg/errors"
)

type mockMeetingRepo struct {
	created  []*models.Meeting
	onDay    []models.Meeting
	onDayErr error

	listResult []models.Meeting
	listTotal  int

	items   map[string]*models.Meeting
	deleted []string
}

func (m *mockMeetingRepo) List(ctx context.Context, filter models.MeetingFilter) ([]models.Meeting, int, error) {
	return m.listResult, m.listTotal, nil
}

func (m *mockMeetingRepo) ListOnDay(ctx context.Context, day time.Time) ([]models.Meeting, error) {
	if m.onDayErr != nil {
		return nil, m.onDayErr
	}
	return m.onDay, nil
}

func (m *mockMeetingRepo) GetByID(ctx context.Context, id string) (*models.Meeting, error) {
	if meeting, ok := m.items[id]; ok {
		cp := *meeting
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockMeetingRepo) Create(ctx context.Context, meeting *models.Meeting) error {
	meeting.ID = "generated"
	m.created = append(m.created, meeting)
	return nil
}

func (m *mockMeetingRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockSnapshotProvider struct {
	snap scheduling.Snapshot
	err  error
}

func (m *mockSnapshotProvider) Snapshot(ctx context.Context) (scheduling.Snapshot, error) {
	return m.snap, m.err
}

type mockNotifier struct {
	notified []string
	err      error
}

func (m *mockNotifier) MeetingScheduled(ctx context.Context, meeting *models.Meeting) error {
	m.notified = append(m.notified, meeting.ID)
	return m.err
}

type mockObserver struct {
	outcomes []string
}

func (m *mockObserver) ObserveValidation(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

func newMeetingService(repo *mockMeetingRepo, snap scheduling.Snapshot, notifier *mockNotifier, observer *mockObserver) *MeetingService {
	var n meetingNotifier
	if notifier != nil {
		n = notifier
	}
	var o validationObserver
	if observer != nil {
		o = observer
	}
	return NewMeetingService(repo, &mockSnapshotProvider{snap: snap}, n, o, nil, nil)
}

func TestScheduleAcceptsAndPersists(t *testing.T) {
	repo := &mockMeetingRepo{}
	observer := &mockObserver{}
	svc := newMeetingService(repo, scheduling.DefaultSnapshot(), nil, observer)

	result, err := svc.Schedule(context.Background(), ScheduleMeetingRequest{
		UserID:    "cust-1",
		Title:     "פגישת ייעוץ",
		Date:      "2025-06-15",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Meeting)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, models.MeetingStatusApproved, created.Status)
	assert.Equal(t, 10, created.StartsAt.Hour())
	assert.Equal(t, 11, created.EndsAt.Hour())
	assert.Empty(t, result.Warning)
	assert.Equal(t, []string{"accepted"}, observer.outcomes)
}

func TestScheduleReturnsRejection(t *testing.T) {
	repo := &mockMeetingRepo{}
	observer := &mockObserver{}
	svc := newMeetingService(repo, scheduling.DefaultSnapshot(), nil, observer)

	// Saturday is disabled in the default template.
	_, err := svc.Schedule(context.Background(), ScheduleMeetingRequest{
		UserID:    "cust-1",
		Title:     "פגישה",
		Date:      "2025-06-14",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.Error(t, err)

	var rejection *scheduling.Rejection
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, scheduling.RejectNoAvailability, rejection.Kind)
	assert.Empty(t, repo.created)
	assert.Equal(t, []string{string(scheduling.RejectNoAvailability)}, observer.outcomes)
}

func TestScheduleCapacityUsesExistingMeetings(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	repo := &mockMeetingRepo{
		onDay: []models.Meeting{
			{
				ID:       "m1",
				StartsAt: scheduling.At(day, "10:00"),
				EndsAt:   scheduling.At(day, "11:00"),
				Status:   models.MeetingStatusApproved,
			},
		},
	}
	svc := newMeetingService(repo, scheduling.DefaultSnapshot(), nil, nil)

	_, err := svc.Schedule(context.Background(), ScheduleMeetingRequest{
		UserID:    "cust-1",
		Title:     "פגישה",
		Date:      "2025-06-15",
		StartTime: "10:30",
		EndTime:   "11:30",
	})
	require.Error(t, err)

	var rejection *scheduling.Rejection
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, scheduling.RejectCapacityExhausted, rejection.Kind)
}

func TestScheduleNotificationFailureBecomesWarning(t *testing.T) {
	repo := &mockMeetingRepo{}
	notifier := &mockNotifier{err: errors.New("gateway down")}
	svc := newMeetingService(repo, scheduling.DefaultSnapshot(), notifier, nil)

	result, err := svc.Schedule(context.Background(), ScheduleMeetingRequest{
		UserID:    "cust-1",
		Title:     "פגישה",
		Date:      "2025-06-15",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Meeting)
	assert.NotEmpty(t, result.Warning)
	assert.Len(t, repo.created, 1)
	assert.Len(t, notifier.notified, 1)
}

func TestScheduleRejectsInvalidPayload(t *testing.T) {
	svc := newMeetingService(&mockMeetingRepo{}, scheduling.DefaultSnapshot(), nil, nil)

	_, err := svc.Schedule(context.Background(), ScheduleMeetingRequest{
		UserID:    "cust-1",
		Title:     "פגישה",
		Date:      "15/06/2025",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestDeleteMissingMeeting(t *testing.T) {
	svc := newMeetingService(&mockMeetingRepo{}, scheduling.DefaultSnapshot(), nil, nil)

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestDeleteExistingMeeting(t *testing.T) {
	repo := &mockMeetingRepo{items: map[string]*models.Meeting{
		"m1": {ID: "m1"},
	}}
	svc := newMeetingService(repo, scheduling.DefaultSnapshot(), nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "m1"))
	assert.Equal(t, []string{"m1"}, repo.deleted)
}

func TestListDefaultsPaging(t *testing.T) {
	repo := &mockMeetingRepo{listResult: []models.Meeting{{ID: "m1"}}, listTotal: 1}
	svc := newMeetingService(repo, scheduling.DefaultSnapshot(), nil, nil)

	meetings, pagination, err := svc.List(context.Background(), MeetingListRequest{})
	require.NoError(t, err)
	assert.Len(t, meetings, 1)
	require.NotNil(t, pagination)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 50, pagination.PageSize)
	assert.Equal(t, 1, pagination.TotalCount)
}

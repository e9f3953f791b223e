package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mashkanta-digital/admin-api/internal/models"
)

// MeetingRepository persists scheduled meetings.
type MeetingRepository struct {
	db *sqlx.DB
}

// NewMeetingRepository constructs a meeting repository.
func NewMeetingRepository(db *sqlx.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

const meetingColumns = "id, user_id, title, starts_at, ends_at, status, notes, created_at, updated_at"

// List returns meetings matching the filter, newest range first.
func (r *MeetingRepository) List(ctx context.Context, filter models.MeetingFilter) ([]models.Meeting, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("ends_at >= $%d", len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("starts_at < $%d", len(args)+1))
		args = append(args, *filter.To)
	}
	if filter.UserID != "" {
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)+1))
		args = append(args, filter.UserID)
	}
	whereClause := strings.Join(where, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 50
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s FROM meetings WHERE %s ORDER BY starts_at ASC LIMIT %d OFFSET %d",
		meetingColumns, whereClause, size, offset)
	var meetings []models.Meeting
	if err := r.db.SelectContext(ctx, &meetings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list meetings: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM meetings WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count meetings: %w", err)
	}
	return meetings, total, nil
}

// ListOnDay returns every meeting touching the given calendar day,
// cancelled ones included; the scheduling engine decides what counts.
func (r *MeetingRepository) ListOnDay(ctx context.Context, day time.Time) ([]models.Meeting, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	query := fmt.Sprintf("SELECT %s FROM meetings WHERE starts_at >= $1 AND starts_at < $2 ORDER BY starts_at ASC", meetingColumns)
	var meetings []models.Meeting
	if err := r.db.SelectContext(ctx, &meetings, query, start, end); err != nil {
		return nil, fmt.Errorf("list meetings on day: %w", err)
	}
	return meetings, nil
}

// GetByID fetches a single meeting.
func (r *MeetingRepository) GetByID(ctx context.Context, id string) (*models.Meeting, error) {
	query := fmt.Sprintf("SELECT %s FROM meetings WHERE id = $1", meetingColumns)
	var meeting models.Meeting
	if err := r.db.GetContext(ctx, &meeting, query, id); err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Create inserts a meeting. Timestamps are stored in UTC.
func (r *MeetingRepository) Create(ctx context.Context, meeting *models.Meeting) error {
	if meeting.ID == "" {
		meeting.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if meeting.CreatedAt.IsZero() {
		meeting.CreatedAt = now
	}
	meeting.UpdatedAt = now
	query := `INSERT INTO meetings (id, user_id, title, starts_at, ends_at, status, notes, created_at, updated_at)
VALUES (:id, :user_id, :title, :starts_at, :ends_at, :status, :notes, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, meeting); err != nil {
		return fmt.Errorf("create meeting: %w", err)
	}
	return nil
}

// Delete removes a meeting.
func (r *MeetingRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM meetings WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	return nil
}

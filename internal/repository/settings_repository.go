package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mashkanta-digital/admin-api/internal/models"
	"github.com/mashkanta-digital/admin-api/internal/scheduling"
)

// settingsRowID keys the single per-tenant scheduling configuration row.
const settingsRowID = "default"

// SettingsRepository persists the scheduling configuration as one JSONB
// document, loaded and replaced wholesale.
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository constructs a settings repository.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Load returns the current configuration. When no row has ever been
// saved it falls back to the default weekly template; callers must
// tolerate receiving a normalized document different from what they
// last sent.
func (r *SettingsRepository) Load(ctx context.Context) (*models.SchedulingSettings, error) {
	const query = "SELECT id, document, updated_at FROM scheduling_settings WHERE id = $1"
	var settings models.SchedulingSettings
	if err := r.db.GetContext(ctx, &settings, query, settingsRowID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.SchedulingSettings{
				ID:       settingsRowID,
				Document: models.SettingsDocument{Snapshot: scheduling.DefaultSnapshot()},
			}, nil
		}
		return nil, fmt.Errorf("load scheduling settings: %w", err)
	}
	settings.Document.Normalize()
	return &settings, nil
}

// Save replaces the configuration wholesale and returns the normalized
// result.
func (r *SettingsRepository) Save(ctx context.Context, settings *models.SchedulingSettings) (*models.SchedulingSettings, error) {
	settings.ID = settingsRowID
	settings.Document.Normalize()
	settings.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO scheduling_settings (id, document, updated_at)
VALUES (:id, :document, :updated_at)
ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, settings); err != nil {
		return nil, fmt.Errorf("save scheduling settings: %w", err)
	}
	return settings, nil
}

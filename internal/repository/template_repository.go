package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mashkanta-digital/admin-api/internal/models"
)

// TemplateRepository reads admin-managed message templates.
type TemplateRepository struct {
	db *sqlx.DB
}

// NewTemplateRepository constructs a template repository.
func NewTemplateRepository(db *sqlx.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

const templateColumns = `id, name, "trigger", body, created_at, updated_at`

// List returns all message templates.
func (r *TemplateRepository) List(ctx context.Context) ([]models.MessageTemplate, error) {
	query := fmt.Sprintf("SELECT %s FROM message_templates ORDER BY name ASC", templateColumns)
	var templates []models.MessageTemplate
	if err := r.db.SelectContext(ctx, &templates, query); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

// FindByTrigger returns the first template tagged with the trigger.
// sql.ErrNoRows passes through when none is configured.
func (r *TemplateRepository) FindByTrigger(ctx context.Context, trigger string) (*models.MessageTemplate, error) {
	query := fmt.Sprintf(`SELECT %s FROM message_templates WHERE "trigger" = $1 ORDER BY created_at ASC LIMIT 1`, templateColumns)
	var template models.MessageTemplate
	if err := r.db.GetContext(ctx, &template, query, trigger); err != nil {
		return nil, err
	}
	return &template, nil
}

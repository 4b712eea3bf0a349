package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/toppers-edu/admin-console-api/internal/models"
)

// SettingsRepository manages the single-row platform settings record.
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a new repository instance.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get loads the settings row, creating it with defaults on first access.
func (r *SettingsRepository) Get(ctx context.Context) (*models.MaintenanceSettings, error) {
	query := `SELECT id, maintenance_enabled, maintenance_message, maintenance_opening_date, updated_at
		FROM platform_settings WHERE id = $1`

	var settings models.MaintenanceSettings
	err := r.db.GetContext(ctx, &settings, query, models.MaintenanceSettingsID)
	if errors.Is(err, sql.ErrNoRows) {
		return r.insertDefaults(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("get platform settings: %w", err)
	}
	return &settings, nil
}

func (r *SettingsRepository) insertDefaults(ctx context.Context) (*models.MaintenanceSettings, error) {
	query := `
		INSERT INTO platform_settings (id, maintenance_enabled, maintenance_message, updated_at)
		VALUES ($1, FALSE, '', NOW())
		ON CONFLICT (id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, models.MaintenanceSettingsID); err != nil {
		return nil, fmt.Errorf("seed platform settings: %w", err)
	}

	var settings models.MaintenanceSettings
	sel := `SELECT id, maintenance_enabled, maintenance_message, maintenance_opening_date, updated_at
		FROM platform_settings WHERE id = $1`
	if err := r.db.GetContext(ctx, &settings, sel, models.MaintenanceSettingsID); err != nil {
		return nil, fmt.Errorf("get platform settings: %w", err)
	}
	return &settings, nil
}

// Update overwrites the maintenance fields of the settings row.
func (r *SettingsRepository) Update(ctx context.Context, settings *models.MaintenanceSettings) error {
	query := `
		UPDATE platform_settings
		SET maintenance_enabled = :maintenance_enabled,
		    maintenance_message = :maintenance_message,
		    maintenance_opening_date = :maintenance_opening_date,
		    updated_at = NOW()
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, settings)
	if err != nil {
		return fmt.Errorf("update platform settings: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update platform settings: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

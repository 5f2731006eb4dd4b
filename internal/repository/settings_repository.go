package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/jmoiron/sqlx"

	"github.com/personatable/timetable-api/internal/models"
)

// SettingsRepository manages the single-row grid settings record.
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository constructs a SettingsRepository.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type settingsRow struct {
	Days      pq.StringArray `db:"days"`
	StartHour int            `db:"start_hour"`
	EndHour   int            `db:"end_hour"`
}

// Get returns the current settings.
func (r *SettingsRepository) Get(ctx context.Context) (models.Settings, error) {
	const query = `SELECT days, start_hour, end_hour FROM settings WHERE id = 1`
	var row settingsRow
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return models.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return models.Settings{
		Days:      append([]string(nil), row.Days...),
		StartHour: row.StartHour,
		EndHour:   row.EndHour,
	}, nil
}

// Update overwrites the settings row.
func (r *SettingsRepository) Update(ctx context.Context, settings models.Settings) error {
	const query = `UPDATE settings SET days = $1, start_hour = $2, end_hour = $3, updated_at = $4 WHERE id = 1`
	if _, err := r.db.ExecContext(ctx, query, pq.StringArray(settings.Days), settings.StartHour, settings.EndHour, time.Now().UTC()); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/apperrors"
)

// Setting keys.
const (
	SettingGoalTarget  = "goal.target"
	SettingGoalHorizon = "goal.horizon_months"
)

// Setting is one stored key/value pair.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// SettingsRepository stores user preferences as key/value pairs.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSettings returns the stored settings among keys, indexed by key.
// Keys that were never stored are absent from the result.
func (r *SettingsRepository) GetSettings(ctx context.Context, keys ...string) (map[string]Setting, error) {
	settings := make(map[string]Setting, len(keys))

	for _, key := range keys {
		s, err := r.GetSetting(ctx, key)
		if errors.Is(err, apperrors.ErrSettingNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		settings[key] = s
	}

	return settings, nil
}

// GetSetting returns a single setting.
// Returns ErrSettingNotFound if the key has never been stored.
func (r *SettingsRepository) GetSetting(ctx context.Context, key string) (Setting, error) {
	query := `SELECT key, value, updated_at FROM settings WHERE key = ?`

	var s Setting
	var updatedAtStr string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&s.Key, &s.Value, &updatedAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return Setting{}, apperrors.ErrSettingNotFound
	}
	if err != nil {
		return Setting{}, fmt.Errorf("failed to query settings table: %w", err)
	}

	s.UpdatedAt, err = ParseTime(updatedAtStr)
	if err != nil {
		return Setting{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return s, nil
}

// SetSettings upserts every value atomically.
func (r *SettingsRepository) SetSettings(ctx context.Context, values map[string]string, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	for key, value := range values {
		if _, err := tx.ExecContext(ctx, query, key, value, formatTimestamp(at)); err != nil {
			return fmt.Errorf("failed to upsert setting %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}

	return nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/pkg/apperrors"
)

// SettingRepository handles database operations for portal settings
type SettingRepository struct {
	db *pgxpool.Pool
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{
		db: db,
	}
}

// GetByKey retrieves a setting by key
func (r *SettingRepository) GetByKey(ctx context.Context, key string) (*models.Setting, error) {
	query := `
		SELECT key, value, updated_at
		FROM settings
		WHERE key = $1
	`

	var setting models.Setting
	err := r.db.QueryRow(ctx, query, key).Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSettingNotFound
		}
		return nil, fmt.Errorf("error retrieving setting: %w", err)
	}

	return &setting, nil
}

// GetAll retrieves all settings
func (r *SettingRepository) GetAll(ctx context.Context) ([]*models.Setting, error) {
	query := `
		SELECT key, value, updated_at
		FROM settings
		ORDER BY key
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*models.Setting
	for rows.Next() {
		var setting models.Setting
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, &setting)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Upsert writes a setting value, inserting the key when it does not exist
func (r *SettingRepository) Upsert(ctx context.Context, setting *models.Setting) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query, setting.Key, setting.Value).Scan(&setting.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error saving setting: %w", err)
	}

	return nil
}

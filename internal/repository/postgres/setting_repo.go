package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

type settingRepo struct {
	db *sqlx.DB
}

// NewSettingRepo creates a new PostgreSQL-backed SettingRepository.
func NewSettingRepo(db *sqlx.DB) port.SettingRepository {
	return &settingRepo{db: db}
}

func (r *settingRepo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var setting domain.Setting
	err := r.db.GetContext(ctx, &setting, "SELECT * FROM settings WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("settingRepo.Get: %w", err)
	}
	return &setting, nil
}

func (r *settingRepo) Upsert(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("settingRepo.Upsert: %w", err)
	}
	return nil
}

func (r *settingRepo) Increment(ctx context.Context, key string) (int64, error) {
	// Single-statement upsert so concurrent increments never hand out the
	// same value.
	query := `INSERT INTO settings (key, value, updated_at) VALUES ($1, '1', $2)
		ON CONFLICT (key) DO UPDATE SET
			value = (settings.value::bigint + 1)::text,
			updated_at = EXCLUDED.updated_at
		RETURNING value::bigint`

	var next int64
	err := r.db.GetContext(ctx, &next, query, key, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("settingRepo.Increment: %w", err)
	}
	return next, nil
}

func (r *settingRepo) List(ctx context.Context) ([]domain.Setting, error) {
	var settings []domain.Setting
	err := r.db.SelectContext(ctx, &settings, "SELECT * FROM settings ORDER BY key ASC")
	if err != nil {
		return nil, fmt.Errorf("settingRepo.List: %w", err)
	}
	return settings, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

type paymentModeRepo struct {
	db *sqlx.DB
}

// NewPaymentModeRepo creates a new PostgreSQL-backed PaymentModeRepository.
func NewPaymentModeRepo(db *sqlx.DB) port.PaymentModeRepository {
	return &paymentModeRepo{db: db}
}

func (r *paymentModeRepo) Create(ctx context.Context, mode *domain.PaymentMode) error {
	mode.ID = uuid.New()
	now := time.Now().UTC()
	mode.CreatedAt = now
	mode.UpdatedAt = now

	query := `INSERT INTO payment_modes (id, name, description, is_default, enabled, removed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		mode.ID, mode.Name, mode.Description, mode.IsDefault, mode.Enabled, mode.Removed,
		mode.CreatedAt, mode.UpdatedAt)
	if err != nil {
		return fmt.Errorf("paymentModeRepo.Create: %w", err)
	}
	return nil
}

func (r *paymentModeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMode, error) {
	var mode domain.PaymentMode
	err := r.db.GetContext(ctx, &mode,
		"SELECT * FROM payment_modes WHERE id = $1 AND removed = false", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("paymentModeRepo.GetByID: %w", err)
	}
	return &mode, nil
}

func (r *paymentModeRepo) List(ctx context.Context, offset, limit int) ([]domain.PaymentMode, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM payment_modes WHERE removed = false")
	if err != nil {
		return nil, 0, fmt.Errorf("paymentModeRepo.List count: %w", err)
	}

	var modes []domain.PaymentMode
	err = r.db.SelectContext(ctx, &modes,
		"SELECT * FROM payment_modes WHERE removed = false ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("paymentModeRepo.List: %w", err)
	}
	return modes, total, nil
}

func (r *paymentModeRepo) Update(ctx context.Context, mode *domain.PaymentMode) error {
	mode.UpdatedAt = time.Now().UTC()
	query := `UPDATE payment_modes SET name = $1, description = $2, is_default = $3, enabled = $4, updated_at = $5
		WHERE id = $6 AND removed = false`

	result, err := r.db.ExecContext(ctx, query,
		mode.Name, mode.Description, mode.IsDefault, mode.Enabled, mode.UpdatedAt, mode.ID)
	if err != nil {
		return fmt.Errorf("paymentModeRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *paymentModeRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE payment_modes SET removed = true, updated_at = $1 WHERE id = $2 AND removed = false",
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("paymentModeRepo.SoftDelete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			"SELECT EXISTS (SELECT 1 FROM payment_modes WHERE id = $1)", id); err != nil {
			return fmt.Errorf("paymentModeRepo.SoftDelete exists: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
	}
	return nil
}

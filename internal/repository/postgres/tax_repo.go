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

type taxRepo struct {
	db *sqlx.DB
}

// NewTaxRepo creates a new PostgreSQL-backed TaxRepository.
func NewTaxRepo(db *sqlx.DB) port.TaxRepository {
	return &taxRepo{db: db}
}

func (r *taxRepo) Create(ctx context.Context, tax *domain.Tax) error {
	tax.ID = uuid.New()
	now := time.Now().UTC()
	tax.CreatedAt = now
	tax.UpdatedAt = now

	query := `INSERT INTO taxes (id, tax_name, tax_value, is_default, enabled, removed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		tax.ID, tax.TaxName, tax.TaxValue, tax.IsDefault, tax.Enabled, tax.Removed,
		tax.CreatedAt, tax.UpdatedAt)
	if err != nil {
		return fmt.Errorf("taxRepo.Create: %w", err)
	}
	return nil
}

func (r *taxRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tax, error) {
	var tax domain.Tax
	err := r.db.GetContext(ctx, &tax,
		"SELECT * FROM taxes WHERE id = $1 AND removed = false", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("taxRepo.GetByID: %w", err)
	}
	return &tax, nil
}

func (r *taxRepo) List(ctx context.Context, offset, limit int) ([]domain.Tax, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM taxes WHERE removed = false")
	if err != nil {
		return nil, 0, fmt.Errorf("taxRepo.List count: %w", err)
	}

	var taxes []domain.Tax
	err = r.db.SelectContext(ctx, &taxes,
		"SELECT * FROM taxes WHERE removed = false ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("taxRepo.List: %w", err)
	}
	return taxes, total, nil
}

func (r *taxRepo) Update(ctx context.Context, tax *domain.Tax) error {
	tax.UpdatedAt = time.Now().UTC()
	query := `UPDATE taxes SET tax_name = $1, tax_value = $2, is_default = $3, enabled = $4, updated_at = $5
		WHERE id = $6 AND removed = false`

	result, err := r.db.ExecContext(ctx, query,
		tax.TaxName, tax.TaxValue, tax.IsDefault, tax.Enabled, tax.UpdatedAt, tax.ID)
	if err != nil {
		return fmt.Errorf("taxRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *taxRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE taxes SET removed = true, updated_at = $1 WHERE id = $2 AND removed = false",
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("taxRepo.SoftDelete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			"SELECT EXISTS (SELECT 1 FROM taxes WHERE id = $1)", id); err != nil {
			return fmt.Errorf("taxRepo.SoftDelete exists: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
	}
	return nil
}

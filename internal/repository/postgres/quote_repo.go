package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

type quoteRepo struct {
	db *sqlx.DB
}

// NewQuoteRepo creates a new PostgreSQL-backed QuoteRepository.
func NewQuoteRepo(db *sqlx.DB) port.QuoteRepository {
	return &quoteRepo{db: db}
}

func (r *quoteRepo) Create(ctx context.Context, q *domain.Quote) error {
	q.ID = uuid.New()
	now := time.Now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now

	query := `INSERT INTO quotes (
			id, number, year, client_id, date, expired_date, items,
			tax_rate, discount, sub_total, tax_total, total,
			status, converted, note, pdf_path, removed, created_by,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20)`

	_, err := r.db.ExecContext(ctx, query,
		q.ID, q.Number, q.Year, q.ClientID, q.Date, q.ExpiredDate, q.Items,
		q.TaxRate, q.Discount, q.SubTotal, q.TaxTotal, q.Total,
		q.Status, q.Converted, q.Note, q.PDFPath, q.Removed, q.CreatedBy,
		q.CreatedAt, q.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "number") {
			return domain.ErrDuplicateNumber
		}
		return fmt.Errorf("quoteRepo.Create: %w", err)
	}
	return nil
}

func (r *quoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	var q domain.Quote
	err := r.db.GetContext(ctx, &q,
		"SELECT * FROM quotes WHERE id = $1 AND removed = false", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("quoteRepo.GetByID: %w", err)
	}
	return &q, nil
}

func (r *quoteRepo) List(ctx context.Context, offset, limit int) ([]domain.Quote, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM quotes WHERE removed = false")
	if err != nil {
		return nil, 0, fmt.Errorf("quoteRepo.List count: %w", err)
	}

	var quotes []domain.Quote
	err = r.db.SelectContext(ctx, &quotes,
		"SELECT * FROM quotes WHERE removed = false ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("quoteRepo.List: %w", err)
	}
	return quotes, total, nil
}

func (r *quoteRepo) Update(ctx context.Context, q *domain.Quote) error {
	q.UpdatedAt = time.Now().UTC()
	query := `UPDATE quotes SET
			number = $1, year = $2, client_id = $3, date = $4, expired_date = $5,
			items = $6, tax_rate = $7, discount = $8, sub_total = $9, tax_total = $10,
			total = $11, status = $12, note = $13, updated_at = $14
		WHERE id = $15 AND removed = false`

	result, err := r.db.ExecContext(ctx, query,
		q.Number, q.Year, q.ClientID, q.Date, q.ExpiredDate,
		q.Items, q.TaxRate, q.Discount, q.SubTotal, q.TaxTotal,
		q.Total, q.Status, q.Note, q.UpdatedAt, q.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "number") {
			return domain.ErrDuplicateNumber
		}
		return fmt.Errorf("quoteRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrQuoteNotFound
	}
	return nil
}

func (r *quoteRepo) MarkConverted(ctx context.Context, id uuid.UUID) error {
	// converted = false in the predicate makes conversion single-shot even
	// under concurrent requests.
	result, err := r.db.ExecContext(ctx,
		`UPDATE quotes SET converted = true, status = $1, updated_at = $2
			WHERE id = $3 AND removed = false AND converted = false`,
		domain.QuoteStatusAccepted, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("quoteRepo.MarkConverted: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		var converted bool
		err := r.db.GetContext(ctx, &converted,
			"SELECT converted FROM quotes WHERE id = $1 AND removed = false", id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrQuoteNotFound
			}
			return fmt.Errorf("quoteRepo.MarkConverted check: %w", err)
		}
		if converted {
			return domain.ErrQuoteConverted
		}
		return domain.ErrQuoteNotFound
	}
	return nil
}

func (r *quoteRepo) UpdatePDFPath(ctx context.Context, id uuid.UUID, path string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE quotes SET pdf_path = $1, updated_at = $2 WHERE id = $3 AND removed = false",
		path, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("quoteRepo.UpdatePDFPath: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrQuoteNotFound
	}
	return nil
}

func (r *quoteRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE quotes SET removed = true, updated_at = $1 WHERE id = $2 AND removed = false",
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("quoteRepo.SoftDelete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			"SELECT EXISTS (SELECT 1 FROM quotes WHERE id = $1)", id); err != nil {
			return fmt.Errorf("quoteRepo.SoftDelete exists: %w", err)
		}
		if !exists {
			return domain.ErrQuoteNotFound
		}
	}
	return nil
}

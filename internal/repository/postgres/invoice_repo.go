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
	"github.com/shopspring/decimal"

	"ledgerly/internal/domain"
	"ledgerly/internal/money"
	"ledgerly/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	inv.ID = uuid.New()
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	query := `INSERT INTO invoices (
			id, number, year, client_id, date, expired_date, items,
			tax_rate, discount, sub_total, tax_total, total, credit,
			status, payment_status, note, pdf_path, removed, created_by,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21)`

	_, err := r.db.ExecContext(ctx, query,
		inv.ID, inv.Number, inv.Year, inv.ClientID, inv.Date, inv.ExpiredDate, inv.Items,
		inv.TaxRate, inv.Discount, inv.SubTotal, inv.TaxTotal, inv.Total, inv.Credit,
		inv.Status, inv.PaymentStatus, inv.Note, inv.PDFPath, inv.Removed, inv.CreatedBy,
		inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "number") {
			return domain.ErrDuplicateNumber
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM invoices WHERE id = $1 AND removed = false", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices WHERE removed = false")
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices WHERE removed = false ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListByClient(ctx context.Context, clientID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM invoices WHERE client_id = $1 AND removed = false", clientID)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByClient count: %w", err)
	}

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices WHERE client_id = $1 AND removed = false
			ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		clientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByClient: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListAll(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices WHERE removed = false ORDER BY year DESC, number DESC")
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListAll: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	inv.UpdatedAt = time.Now().UTC()
	query := `UPDATE invoices SET
			number = $1, year = $2, client_id = $3, date = $4, expired_date = $5,
			items = $6, tax_rate = $7, discount = $8, sub_total = $9, tax_total = $10,
			total = $11, credit = $12, status = $13, payment_status = $14, note = $15,
			updated_at = $16
		WHERE id = $17 AND removed = false`

	result, err := r.db.ExecContext(ctx, query,
		inv.Number, inv.Year, inv.ClientID, inv.Date, inv.ExpiredDate,
		inv.Items, inv.TaxRate, inv.Discount, inv.SubTotal, inv.TaxTotal,
		inv.Total, inv.Credit, inv.Status, inv.PaymentStatus, inv.Note,
		inv.UpdatedAt, inv.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "number") {
			return domain.ErrDuplicateNumber
		}
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepo) ApplyCredit(ctx context.Context, id uuid.UUID, credit decimal.Decimal, status domain.PaymentStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET credit = $1, payment_status = $2, updated_at = $3
			WHERE id = $4 AND removed = false`,
		credit, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.ApplyCredit: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepo) UpdatePDFPath(ctx context.Context, id uuid.UUID, path string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET pdf_path = $1, updated_at = $2 WHERE id = $3 AND removed = false",
		path, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdatePDFPath: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET removed = true, updated_at = $1 WHERE id = $2 AND removed = false",
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.SoftDelete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		// Either never existed or already removed. Check which so the caller
		// can stay idempotent on repeated deletes.
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			"SELECT EXISTS (SELECT 1 FROM invoices WHERE id = $1)", id); err != nil {
			return fmt.Errorf("invoiceRepo.SoftDelete exists: %w", err)
		}
		if !exists {
			return domain.ErrInvoiceNotFound
		}
	}
	return nil
}

func (r *invoiceRepo) SummaryByClient(ctx context.Context, clientID uuid.UUID) (*domain.ClientSummary, error) {
	var summary domain.ClientSummary
	err := r.db.GetContext(ctx, &summary,
		`SELECT $1::uuid AS client_id,
			COUNT(*) AS invoice_count,
			COALESCE(SUM(total), 0) AS total_billed,
			COALESCE(SUM(credit), 0) AS total_paid
		FROM invoices WHERE client_id = $1 AND removed = false`, clientID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.SummaryByClient: %w", err)
	}
	summary.Outstanding = money.Sub(summary.TotalBilled, summary.TotalPaid)
	return &summary, nil
}

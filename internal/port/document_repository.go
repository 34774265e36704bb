package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledgerly/internal/domain"
)

// InvoiceRepository defines the contract for invoice persistence.
// Every read excludes soft-deleted rows; deletes are always soft.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	ListAll(ctx context.Context) ([]domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	// ApplyCredit sets the cumulative credit and derived payment status.
	ApplyCredit(ctx context.Context, id uuid.UUID, credit decimal.Decimal, status domain.PaymentStatus) error
	UpdatePDFPath(ctx context.Context, id uuid.UUID, path string) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	SummaryByClient(ctx context.Context, clientID uuid.UUID) (*domain.ClientSummary, error)
}

// QuoteRepository defines the contract for quote persistence.
type QuoteRepository interface {
	Create(ctx context.Context, q *domain.Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quote, error)
	List(ctx context.Context, offset, limit int) ([]domain.Quote, int, error)
	Update(ctx context.Context, q *domain.Quote) error
	MarkConverted(ctx context.Context, id uuid.UUID) error
	UpdatePDFPath(ctx context.Context, id uuid.UUID, path string) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines the contract for payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	List(ctx context.Context, offset, limit int) ([]domain.Payment, int, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error)
	// SoftDeleteByInvoice marks every active payment of an invoice removed
	// and reports how many rows were affected.
	SoftDeleteByInvoice(ctx context.Context, invoiceID uuid.UUID) (int64, error)
}

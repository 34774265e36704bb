package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledgerly/internal/billing"
	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

// SettingLastInvoiceNumber is the settings key tracking the invoice number sequence.
const SettingLastInvoiceNumber = "last_invoice_number"

// CreateInvoiceInput is the DTO for creating an invoice. Number is optional;
// when zero the next value of the invoice number sequence is used.
type CreateInvoiceInput struct {
	Number      int              `json:"number"`
	Year        int              `json:"year"`
	ClientID    uuid.UUID        `json:"client_id" binding:"required"`
	Date        time.Time        `json:"date" binding:"required"`
	ExpiredDate time.Time        `json:"expired_date" binding:"required"`
	Items       domain.LineItems `json:"items" binding:"required"`
	TaxRate     decimal.Decimal  `json:"tax_rate"`
	Discount    decimal.Decimal  `json:"discount"`
	Status      string           `json:"status"`
	Note        string           `json:"note"`
}

// UpdateInvoiceInput is the DTO for updating an invoice. Totals are always
// recomputed server-side from the resulting item list.
type UpdateInvoiceInput struct {
	Number      *int              `json:"number"`
	Year        *int              `json:"year"`
	ClientID    *uuid.UUID        `json:"client_id"`
	Date        *time.Time        `json:"date"`
	ExpiredDate *time.Time        `json:"expired_date"`
	Items       *domain.LineItems `json:"items"`
	TaxRate     *decimal.Decimal  `json:"tax_rate"`
	Discount    *decimal.Decimal  `json:"discount"`
	Status      *string           `json:"status"`
	Note        *string           `json:"note"`
}

// InvoiceService defines the invoice lifecycle contract.
type InvoiceService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input CreateInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	ListAll(ctx context.Context) ([]domain.Invoice, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type invoiceService struct {
	invoiceRepo port.InvoiceRepository
	paymentRepo port.PaymentRepository
	clientRepo  port.ClientRepository
	settingRepo port.SettingRepository
	artifacts   port.ArtifactGenerator
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	paymentRepo port.PaymentRepository,
	clientRepo port.ClientRepository,
	settingRepo port.SettingRepository,
	artifacts port.ArtifactGenerator,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
		settingRepo: settingRepo,
		artifacts:   artifacts,
	}
}

func (s *invoiceService) Create(ctx context.Context, createdBy uuid.UUID, input CreateInvoiceInput) (*domain.Invoice, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", domain.ErrValidation)
	}

	status := domain.InvoiceStatusDraft
	if input.Status != "" {
		if !domain.ValidInvoiceStatuses[domain.InvoiceStatus(input.Status)] {
			return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, input.Status)
		}
		status = domain.InvoiceStatus(input.Status)
	}

	if !input.ExpiredDate.After(input.Date) {
		return nil, fmt.Errorf("%w: expired_date must be after date", domain.ErrValidation)
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	number := input.Number
	if number == 0 {
		next, err := s.settingRepo.Increment(ctx, SettingLastInvoiceNumber)
		if err != nil {
			return nil, fmt.Errorf("invoice.Create number: %w", err)
		}
		number = int(next)
	}

	year := input.Year
	if year == 0 {
		year = input.Date.Year()
	}

	totals, err := billing.Compute(input.Items, input.TaxRate, input.Discount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	inv := &domain.Invoice{
		Number:        number,
		Year:          year,
		ClientID:      input.ClientID,
		Date:          input.Date,
		ExpiredDate:   input.ExpiredDate,
		Items:         totals.Items,
		TaxRate:       input.TaxRate,
		Discount:      input.Discount,
		SubTotal:      totals.SubTotal,
		TaxTotal:      totals.TaxTotal,
		Total:         totals.Total,
		Credit:        decimal.Zero,
		Status:        status,
		PaymentStatus: domain.PaymentStatusUnpaid,
		Note:          input.Note,
		CreatedBy:     createdBy,
	}
	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.generatePDF(inv, client)

	return inv, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoiceRepo.List(ctx, offset, limit)
}

func (s *invoiceService) ListByClient(ctx context.Context, clientID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoiceRepo.ListByClient(ctx, clientID, offset, limit)
}

func (s *invoiceService) ListAll(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListAll(ctx)
}

func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Number != nil {
		inv.Number = *input.Number
	}
	if input.Year != nil {
		inv.Year = *input.Year
	}
	if input.ClientID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *input.ClientID); err != nil {
			return nil, err
		}
		inv.ClientID = *input.ClientID
	}
	if input.Date != nil {
		inv.Date = *input.Date
	}
	if input.ExpiredDate != nil {
		inv.ExpiredDate = *input.ExpiredDate
	}
	if input.Items != nil {
		if len(*input.Items) == 0 {
			return nil, fmt.Errorf("%w: at least one item is required", domain.ErrValidation)
		}
		inv.Items = *input.Items
	}
	if input.TaxRate != nil {
		inv.TaxRate = *input.TaxRate
	}
	if input.Discount != nil {
		inv.Discount = *input.Discount
	}
	if input.Status != nil {
		if !domain.ValidInvoiceStatuses[domain.InvoiceStatus(*input.Status)] {
			return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, *input.Status)
		}
		inv.Status = domain.InvoiceStatus(*input.Status)
	}
	if input.Note != nil {
		inv.Note = *input.Note
	}

	if !inv.ExpiredDate.After(inv.Date) {
		return nil, fmt.Errorf("%w: expired_date must be after date", domain.ErrValidation)
	}

	totals, err := billing.Compute(inv.Items, inv.TaxRate, inv.Discount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Applied payments are immutable; an edit that drops the total below the
	// credit already collected is rejected.
	if totals.Total.LessThan(inv.Credit) {
		return nil, domain.ErrCreditExceedsTotal
	}

	inv.Items = totals.Items
	inv.SubTotal = totals.SubTotal
	inv.TaxTotal = totals.TaxTotal
	inv.Total = totals.Total
	inv.PaymentStatus = billing.PaymentStatusFor(inv.Credit, inv.Total)

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	if client, err := s.clientRepo.GetByID(ctx, inv.ClientID); err == nil {
		s.generatePDF(inv, client)
	}

	return inv, nil
}

func (s *invoiceService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.invoiceRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	cascaded, err := s.paymentRepo.SoftDeleteByInvoice(ctx, id)
	if err != nil {
		// The invoice is already marked removed; surface the partial cascade
		// loudly but do not roll back the delete.
		log.Printf("invoice.Remove: cascading payments for %s: %v", id, err)
		return fmt.Errorf("invoice.Remove cascade: %w", err)
	}
	if cascaded > 0 {
		log.Printf("invoice.Remove: removed %d payment(s) for invoice %s", cascaded, id)
	}
	return nil
}

// generatePDF renders the invoice artifact off the request path. Failures are
// logged only.
func (s *invoiceService) generatePDF(inv *domain.Invoice, client *domain.Client) {
	if s.artifacts == nil {
		return
	}
	invCopy := *inv
	clientCopy := *client
	go func() {
		path, err := s.artifacts.GenerateInvoice(&invCopy, &clientCopy)
		if err != nil {
			log.Printf("invoice.generatePDF: %v", err)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.invoiceRepo.UpdatePDFPath(ctx, invCopy.ID, path); err != nil {
			log.Printf("invoice.generatePDF: saving path: %v", err)
		}
	}()
}

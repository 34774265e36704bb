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

// SettingLastQuoteNumber is the settings key tracking the quote number sequence.
const SettingLastQuoteNumber = "last_quote_number"

// CreateQuoteInput is the DTO for creating a quote.
type CreateQuoteInput struct {
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

// UpdateQuoteInput is the DTO for updating a quote.
type UpdateQuoteInput struct {
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

// QuoteService defines the quote lifecycle contract.
type QuoteService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input CreateQuoteInput) (*domain.Quote, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quote, error)
	List(ctx context.Context, offset, limit int) ([]domain.Quote, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateQuoteInput) (*domain.Quote, error)
	// ConvertToInvoice turns an accepted quote into a pending invoice. A quote
	// converts at most once.
	ConvertToInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type quoteService struct {
	quoteRepo   port.QuoteRepository
	invoiceRepo port.InvoiceRepository
	clientRepo  port.ClientRepository
	settingRepo port.SettingRepository
	artifacts   port.ArtifactGenerator
}

// NewQuoteService creates a new QuoteService implementation.
func NewQuoteService(
	quoteRepo port.QuoteRepository,
	invoiceRepo port.InvoiceRepository,
	clientRepo port.ClientRepository,
	settingRepo port.SettingRepository,
	artifacts port.ArtifactGenerator,
) QuoteService {
	return &quoteService{
		quoteRepo:   quoteRepo,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		settingRepo: settingRepo,
		artifacts:   artifacts,
	}
}

func (s *quoteService) Create(ctx context.Context, createdBy uuid.UUID, input CreateQuoteInput) (*domain.Quote, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", domain.ErrValidation)
	}

	status := domain.QuoteStatusDraft
	if input.Status != "" {
		if !domain.ValidQuoteStatuses[domain.QuoteStatus(input.Status)] {
			return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, input.Status)
		}
		status = domain.QuoteStatus(input.Status)
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
		next, err := s.settingRepo.Increment(ctx, SettingLastQuoteNumber)
		if err != nil {
			return nil, fmt.Errorf("quote.Create number: %w", err)
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

	q := &domain.Quote{
		Number:      number,
		Year:        year,
		ClientID:    input.ClientID,
		Date:        input.Date,
		ExpiredDate: input.ExpiredDate,
		Items:       totals.Items,
		TaxRate:     input.TaxRate,
		Discount:    input.Discount,
		SubTotal:    totals.SubTotal,
		TaxTotal:    totals.TaxTotal,
		Total:       totals.Total,
		Status:      status,
		Note:        input.Note,
		CreatedBy:   createdBy,
	}
	if err := s.quoteRepo.Create(ctx, q); err != nil {
		return nil, err
	}

	s.generatePDF(q, client)

	return q, nil
}

func (s *quoteService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	return s.quoteRepo.GetByID(ctx, id)
}

func (s *quoteService) List(ctx context.Context, offset, limit int) ([]domain.Quote, int, error) {
	return s.quoteRepo.List(ctx, offset, limit)
}

func (s *quoteService) Update(ctx context.Context, id uuid.UUID, input UpdateQuoteInput) (*domain.Quote, error) {
	q, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.Converted {
		return nil, domain.ErrQuoteConverted
	}

	if input.Number != nil {
		q.Number = *input.Number
	}
	if input.Year != nil {
		q.Year = *input.Year
	}
	if input.ClientID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *input.ClientID); err != nil {
			return nil, err
		}
		q.ClientID = *input.ClientID
	}
	if input.Date != nil {
		q.Date = *input.Date
	}
	if input.ExpiredDate != nil {
		q.ExpiredDate = *input.ExpiredDate
	}
	if input.Items != nil {
		if len(*input.Items) == 0 {
			return nil, fmt.Errorf("%w: at least one item is required", domain.ErrValidation)
		}
		q.Items = *input.Items
	}
	if input.TaxRate != nil {
		q.TaxRate = *input.TaxRate
	}
	if input.Discount != nil {
		q.Discount = *input.Discount
	}
	if input.Status != nil {
		if !domain.ValidQuoteStatuses[domain.QuoteStatus(*input.Status)] {
			return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, *input.Status)
		}
		q.Status = domain.QuoteStatus(*input.Status)
	}
	if input.Note != nil {
		q.Note = *input.Note
	}

	if !q.ExpiredDate.After(q.Date) {
		return nil, fmt.Errorf("%w: expired_date must be after date", domain.ErrValidation)
	}

	totals, err := billing.Compute(q.Items, q.TaxRate, q.Discount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	q.Items = totals.Items
	q.SubTotal = totals.SubTotal
	q.TaxTotal = totals.TaxTotal
	q.Total = totals.Total

	if err := s.quoteRepo.Update(ctx, q); err != nil {
		return nil, err
	}

	if client, err := s.clientRepo.GetByID(ctx, q.ClientID); err == nil {
		s.generatePDF(q, client)
	}

	return q, nil
}

func (s *quoteService) ConvertToInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	q, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// MarkConverted flips converted atomically, so a concurrent second
	// conversion loses here rather than creating a duplicate invoice.
	if err := s.quoteRepo.MarkConverted(ctx, id); err != nil {
		return nil, err
	}

	next, err := s.settingRepo.Increment(ctx, SettingLastInvoiceNumber)
	if err != nil {
		return nil, fmt.Errorf("quote.ConvertToInvoice number: %w", err)
	}

	inv := &domain.Invoice{
		Number:        int(next),
		Year:          q.Year,
		ClientID:      q.ClientID,
		Date:          time.Now().UTC(),
		ExpiredDate:   q.ExpiredDate,
		Items:         q.Items,
		TaxRate:       q.TaxRate,
		Discount:      q.Discount,
		SubTotal:      q.SubTotal,
		TaxTotal:      q.TaxTotal,
		Total:         q.Total,
		Credit:        decimal.Zero,
		Status:        domain.InvoiceStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
		Note:          q.Note,
		CreatedBy:     q.CreatedBy,
	}
	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("quote.ConvertToInvoice: %w", err)
	}

	if client, err := s.clientRepo.GetByID(ctx, inv.ClientID); err == nil && s.artifacts != nil {
		go func() {
			path, err := s.artifacts.GenerateInvoice(inv, client)
			if err != nil {
				log.Printf("quote.ConvertToInvoice pdf: %v", err)
				return
			}
			pctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.invoiceRepo.UpdatePDFPath(pctx, inv.ID, path); err != nil {
				log.Printf("quote.ConvertToInvoice pdf path: %v", err)
			}
		}()
	}

	return inv, nil
}

func (s *quoteService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.quoteRepo.SoftDelete(ctx, id)
}

func (s *quoteService) generatePDF(q *domain.Quote, client *domain.Client) {
	if s.artifacts == nil {
		return
	}
	qCopy := *q
	clientCopy := *client
	go func() {
		path, err := s.artifacts.GenerateQuote(&qCopy, &clientCopy)
		if err != nil {
			log.Printf("quote.generatePDF: %v", err)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.quoteRepo.UpdatePDFPath(ctx, qCopy.ID, path); err != nil {
			log.Printf("quote.generatePDF: saving path: %v", err)
		}
	}()
}

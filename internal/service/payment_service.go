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
	"ledgerly/internal/money"
	"ledgerly/internal/port"
)

// SettingLastPaymentNumber is the settings key tracking the payment number sequence.
const SettingLastPaymentNumber = "last_payment_number"

// CreatePaymentInput is the DTO for recording a payment against an invoice.
type CreatePaymentInput struct {
	InvoiceID     uuid.UUID       `json:"invoice_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentModeID uuid.UUID       `json:"payment_mode_id" binding:"required"`
	Date          time.Time       `json:"date"`
	Ref           string          `json:"ref"`
	Description   string          `json:"description"`
}

// PaymentService defines the payment application contract. Create either
// applies the full amount or declines; there are no partial applications.
type PaymentService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input CreatePaymentInput) (*domain.Payment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	List(ctx context.Context, offset, limit int) ([]domain.Payment, int, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error)
}

type paymentService struct {
	paymentRepo port.PaymentRepository
	invoiceRepo port.InvoiceRepository
	settingRepo port.SettingRepository
	locker      *keyedLocker
}

// NewPaymentService creates a new PaymentService implementation.
func NewPaymentService(
	paymentRepo port.PaymentRepository,
	invoiceRepo port.InvoiceRepository,
	settingRepo port.SettingRepository,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		settingRepo: settingRepo,
		locker:      newKeyedLocker(),
	}
}

func (s *paymentService) Create(ctx context.Context, createdBy uuid.UUID, input CreatePaymentInput) (*domain.Payment, error) {
	if !input.Amount.IsPositive() {
		return nil, domain.ErrMinimumAmount
	}

	// One payment at a time per invoice: credit is read, recomputed and
	// written back below.
	unlock := s.locker.Lock(input.InvoiceID.String())
	defer unlock()

	inv, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}

	if input.Amount.GreaterThan(inv.Balance()) {
		return nil, domain.ErrExceedsBalance
	}

	number, err := s.settingRepo.Increment(ctx, SettingLastPaymentNumber)
	if err != nil {
		return nil, fmt.Errorf("payment.Create number: %w", err)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	payment := &domain.Payment{
		Number:        int(number),
		InvoiceID:     inv.ID,
		ClientID:      inv.ClientID,
		Amount:        input.Amount,
		PaymentModeID: input.PaymentModeID,
		Date:          date,
		Ref:           input.Ref,
		Description:   input.Description,
		CreatedBy:     createdBy,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	credit := money.Add(inv.Credit, input.Amount)
	status := billing.PaymentStatusFor(credit, inv.Total)
	if err := s.invoiceRepo.ApplyCredit(ctx, inv.ID, credit, status); err != nil {
		// The payment row exists but the invoice credit was not advanced.
		log.Printf("payment.Create: payment %s recorded but credit update failed for invoice %s: %v",
			payment.ID, inv.ID, err)
		return nil, fmt.Errorf("payment.Create apply credit: %w", err)
	}

	return payment, nil
}

func (s *paymentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *paymentService) List(ctx context.Context, offset, limit int) ([]domain.Payment, int, error) {
	return s.paymentRepo.List(ctx, offset, limit)
}

func (s *paymentService) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error) {
	return s.paymentRepo.ListByInvoice(ctx, invoiceID)
}

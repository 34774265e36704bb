package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

// CreateTaxInput is the DTO for creating a tax rate.
type CreateTaxInput struct {
	TaxName   string          `json:"tax_name" binding:"required"`
	TaxValue  decimal.Decimal `json:"tax_value" binding:"required"`
	IsDefault bool            `json:"is_default"`
}

// UpdateTaxInput is the DTO for updating a tax rate.
type UpdateTaxInput struct {
	TaxName   *string          `json:"tax_name"`
	TaxValue  *decimal.Decimal `json:"tax_value"`
	IsDefault *bool            `json:"is_default"`
	Enabled   *bool            `json:"enabled"`
}

// TaxService defines the tax rate management contract.
type TaxService interface {
	Create(ctx context.Context, input CreateTaxInput) (*domain.Tax, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tax, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tax, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTaxInput) (*domain.Tax, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type taxService struct {
	repo port.TaxRepository
}

// NewTaxService creates a new TaxService implementation.
func NewTaxService(repo port.TaxRepository) TaxService {
	return &taxService{repo: repo}
}

func (s *taxService) Create(ctx context.Context, input CreateTaxInput) (*domain.Tax, error) {
	tax := &domain.Tax{
		TaxName:   input.TaxName,
		TaxValue:  input.TaxValue,
		IsDefault: input.IsDefault,
		Enabled:   true,
	}
	if err := s.repo.Create(ctx, tax); err != nil {
		return nil, err
	}
	return tax, nil
}

func (s *taxService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tax, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *taxService) List(ctx context.Context, offset, limit int) ([]domain.Tax, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *taxService) Update(ctx context.Context, id uuid.UUID, input UpdateTaxInput) (*domain.Tax, error) {
	tax, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.TaxName != nil {
		tax.TaxName = *input.TaxName
	}
	if input.TaxValue != nil {
		tax.TaxValue = *input.TaxValue
	}
	if input.IsDefault != nil {
		tax.IsDefault = *input.IsDefault
	}
	if input.Enabled != nil {
		tax.Enabled = *input.Enabled
	}

	if err := s.repo.Update(ctx, tax); err != nil {
		return nil, err
	}
	return tax, nil
}

func (s *taxService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

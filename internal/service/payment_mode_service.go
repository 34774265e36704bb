package service

import (
	"context"

	"github.com/google/uuid"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

// CreatePaymentModeInput is the DTO for creating a payment mode.
type CreatePaymentModeInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsDefault   bool   `json:"is_default"`
}

// UpdatePaymentModeInput is the DTO for updating a payment mode.
type UpdatePaymentModeInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsDefault   *bool   `json:"is_default"`
	Enabled     *bool   `json:"enabled"`
}

// PaymentModeService defines the payment mode management contract.
type PaymentModeService interface {
	Create(ctx context.Context, input CreatePaymentModeInput) (*domain.PaymentMode, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMode, error)
	List(ctx context.Context, offset, limit int) ([]domain.PaymentMode, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePaymentModeInput) (*domain.PaymentMode, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type paymentModeService struct {
	repo port.PaymentModeRepository
}

// NewPaymentModeService creates a new PaymentModeService implementation.
func NewPaymentModeService(repo port.PaymentModeRepository) PaymentModeService {
	return &paymentModeService{repo: repo}
}

func (s *paymentModeService) Create(ctx context.Context, input CreatePaymentModeInput) (*domain.PaymentMode, error) {
	mode := &domain.PaymentMode{
		Name:        input.Name,
		Description: input.Description,
		IsDefault:   input.IsDefault,
		Enabled:     true,
	}
	if err := s.repo.Create(ctx, mode); err != nil {
		return nil, err
	}
	return mode, nil
}

func (s *paymentModeService) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMode, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *paymentModeService) List(ctx context.Context, offset, limit int) ([]domain.PaymentMode, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *paymentModeService) Update(ctx context.Context, id uuid.UUID, input UpdatePaymentModeInput) (*domain.PaymentMode, error) {
	mode, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		mode.Name = *input.Name
	}
	if input.Description != nil {
		mode.Description = *input.Description
	}
	if input.IsDefault != nil {
		mode.IsDefault = *input.IsDefault
	}
	if input.Enabled != nil {
		mode.Enabled = *input.Enabled
	}

	if err := s.repo.Update(ctx, mode); err != nil {
		return nil, err
	}
	return mode, nil
}

func (s *paymentModeService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

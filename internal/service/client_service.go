package service

import (
	"context"

	"github.com/google/uuid"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

// CreateClientInput is the DTO for creating a client.
type CreateClientInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Country string `json:"country"`
	Address string `json:"address"`
	Email   string `json:"email" binding:"omitempty,email"`
}

// UpdateClientInput is the DTO for updating a client.
type UpdateClientInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Country *string `json:"country"`
	Address *string `json:"address"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Enabled *bool   `json:"enabled"`
}

// ClientService defines the client management contract.
type ClientService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input CreateClientInput) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, offset, limit int) ([]domain.Client, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateClientInput) (*domain.Client, error)
	Remove(ctx context.Context, id uuid.UUID) error
	// Summary aggregates invoice count, billed, paid and outstanding totals.
	Summary(ctx context.Context, id uuid.UUID) (*domain.ClientSummary, error)
}

type clientService struct {
	clientRepo  port.ClientRepository
	invoiceRepo port.InvoiceRepository
}

// NewClientService creates a new ClientService implementation.
func NewClientService(clientRepo port.ClientRepository, invoiceRepo port.InvoiceRepository) ClientService {
	return &clientService{clientRepo: clientRepo, invoiceRepo: invoiceRepo}
}

func (s *clientService) Create(ctx context.Context, createdBy uuid.UUID, input CreateClientInput) (*domain.Client, error) {
	client := &domain.Client{
		Name:      input.Name,
		Phone:     input.Phone,
		Country:   input.Country,
		Address:   input.Address,
		Email:     input.Email,
		Enabled:   true,
		CreatedBy: createdBy,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context, offset, limit int) ([]domain.Client, int, error) {
	return s.clientRepo.List(ctx, offset, limit)
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, input UpdateClientInput) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Country != nil {
		client.Country = *input.Country
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Enabled != nil {
		client.Enabled = *input.Enabled
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.clientRepo.SoftDelete(ctx, id)
}

func (s *clientService) Summary(ctx context.Context, id uuid.UUID) (*domain.ClientSummary, error) {
	if _, err := s.clientRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.invoiceRepo.SummaryByClient(ctx, id)
}

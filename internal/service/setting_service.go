package service

import (
	"context"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

// UpsertSettingInput is the DTO for setting a key/value pair.
type UpsertSettingInput struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// SettingService defines the application settings contract.
type SettingService interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, input UpsertSettingInput) (*domain.Setting, error)
	List(ctx context.Context) ([]domain.Setting, error)
}

type settingService struct {
	repo port.SettingRepository
}

// NewSettingService creates a new SettingService implementation.
func NewSettingService(repo port.SettingRepository) SettingService {
	return &settingService{repo: repo}
}

func (s *settingService) Get(ctx context.Context, key string) (*domain.Setting, error) {
	return s.repo.Get(ctx, key)
}

func (s *settingService) Upsert(ctx context.Context, input UpsertSettingInput) (*domain.Setting, error) {
	if err := s.repo.Upsert(ctx, input.Key, input.Value); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, input.Key)
}

func (s *settingService) List(ctx context.Context) ([]domain.Setting, error) {
	return s.repo.List(ctx)
}

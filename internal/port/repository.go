package port

import (
	"context"

	"github.com/google/uuid"

	"ledgerly/internal/domain"
)

// ClientRepository defines the contract for client persistence.
// Query methods exclude soft-deleted rows.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, offset, limit int) ([]domain.Client, int, error)
	Update(ctx context.Context, client *domain.Client) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// TaxRepository defines the contract for tax rate persistence.
type TaxRepository interface {
	Create(ctx context.Context, tax *domain.Tax) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tax, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tax, int, error)
	Update(ctx context.Context, tax *domain.Tax) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// PaymentModeRepository defines the contract for payment mode persistence.
type PaymentModeRepository interface {
	Create(ctx context.Context, mode *domain.PaymentMode) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMode, error)
	List(ctx context.Context, offset, limit int) ([]domain.PaymentMode, int, error)
	Update(ctx context.Context, mode *domain.PaymentMode) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the contract for back-office user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SettingRepository defines the contract for key/value application settings.
type SettingRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, key, value string) error
	// Increment bumps an integer-valued setting by one and returns the new
	// value, creating the row at 1 when absent.
	Increment(ctx context.Context, key string) (int64, error)
	List(ctx context.Context) ([]domain.Setting, error)
}

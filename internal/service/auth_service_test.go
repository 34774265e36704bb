package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ledgerly/internal/config"
	"ledgerly/internal/domain"
	"ledgerly/internal/service"
	"ledgerly/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "ledgerly-test",
	}
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.On("GetByEmail", mock.Anything, "jo@example.com").Return(&domain.User{
		ID:           uuid.New(),
		Email:        "jo@example.com",
		PasswordHash: string(hash),
		Role:         domain.UserRoleAdmin,
		Enabled:      true,
	}, nil)

	tokens, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "jo@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	claims, err := svc.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "jo@example.com", claims.Email)
	assert.Equal(t, domain.UserRoleAdmin, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	userRepo.On("GetByEmail", mock.Anything, "jo@example.com").Return(&domain.User{
		PasswordHash: string(hash),
		Enabled:      true,
	}, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "jo@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_DisabledUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "jo@example.com").Return(&domain.User{
		Enabled: false,
	}, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "jo@example.com",
		Password: "whatever1",
	})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestValidateToken_RejectsRefreshAsAccess(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	userRepo.On("GetByEmail", mock.Anything, "jo@example.com").Return(&domain.User{
		ID:           uuid.New(),
		Email:        "jo@example.com",
		PasswordHash: string(hash),
		Enabled:      true,
	}, nil)

	tokens, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "jo@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokens.RefreshToken)
	assert.Error(t, err)
}

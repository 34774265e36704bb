package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ledgerly/internal/domain"
	"ledgerly/internal/service"
	"ledgerly/mocks"
)

func setupPaymentService() (
	*mocks.MockPaymentRepo,
	*mocks.MockInvoiceRepo,
	*mocks.MockSettingRepo,
	service.PaymentService,
) {
	paymentRepo := new(mocks.MockPaymentRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	settingRepo := new(mocks.MockSettingRepo)

	svc := service.NewPaymentService(paymentRepo, invoiceRepo, settingRepo)
	return paymentRepo, invoiceRepo, settingRepo, svc
}

func TestPaymentCreate_DeclinesNonPositiveAmount(t *testing.T) {
	paymentRepo, invoiceRepo, _, svc := setupPaymentService()

	for _, amount := range []string{"0", "-10"} {
		_, err := svc.Create(context.Background(), uuid.New(), service.CreatePaymentInput{
			InvoiceID:     uuid.New(),
			Amount:        dec(amount),
			PaymentModeID: uuid.New(),
		})
		assert.ErrorIs(t, err, domain.ErrMinimumAmount, "amount %s", amount)
	}

	// Declined before anything is read or written.
	invoiceRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentCreate_DeclinesAmountOverBalance(t *testing.T) {
	paymentRepo, invoiceRepo, _, svc := setupPaymentService()

	invoiceID := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, invoiceID).Return(&domain.Invoice{
		ID:     invoiceID,
		Total:  dec("220"),
		Credit: dec("200"),
	}, nil)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreatePaymentInput{
		InvoiceID:     invoiceID,
		Amount:        dec("20.01"),
		PaymentModeID: uuid.New(),
	})

	assert.ErrorIs(t, err, domain.ErrExceedsBalance)
	paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	invoiceRepo.AssertNotCalled(t, "ApplyCredit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentCreate_InvoiceNotFound(t *testing.T) {
	_, invoiceRepo, _, svc := setupPaymentService()

	invoiceID := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, invoiceID).Return(nil, domain.ErrInvoiceNotFound)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreatePaymentInput{
		InvoiceID:     invoiceID,
		Amount:        dec("10"),
		PaymentModeID: uuid.New(),
	})

	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestPaymentCreate_FullPaymentMarksPaid(t *testing.T) {
	paymentRepo, invoiceRepo, settingRepo, svc := setupPaymentService()

	invoiceID := uuid.New()
	clientID := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, invoiceID).Return(&domain.Invoice{
		ID:       invoiceID,
		ClientID: clientID,
		Total:    dec("220"),
		Credit:   decimal.Zero,
	}, nil)
	settingRepo.On("Increment", mock.Anything, service.SettingLastPaymentNumber).Return(int64(7), nil)
	paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	invoiceRepo.On("ApplyCredit", mock.Anything, invoiceID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("220")) }),
		domain.PaymentStatusPaid).Return(nil)

	payment, err := svc.Create(context.Background(), uuid.New(), service.CreatePaymentInput{
		InvoiceID:     invoiceID,
		Amount:        dec("220"),
		PaymentModeID: uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, 7, payment.Number)
	assert.Equal(t, clientID, payment.ClientID)
	assert.Equal(t, "220", payment.Amount.String())
	invoiceRepo.AssertExpectations(t)
}

func TestPaymentCreate_PartialPaymentMarksPartially(t *testing.T) {
	paymentRepo, invoiceRepo, settingRepo, svc := setupPaymentService()

	invoiceID := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, invoiceID).Return(&domain.Invoice{
		ID:     invoiceID,
		Total:  dec("220"),
		Credit: dec("100"),
	}, nil)
	settingRepo.On("Increment", mock.Anything, service.SettingLastPaymentNumber).Return(int64(8), nil)
	paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	invoiceRepo.On("ApplyCredit", mock.Anything, invoiceID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("150")) }),
		domain.PaymentStatusPartially).Return(nil)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreatePaymentInput{
		InvoiceID:     invoiceID,
		Amount:        dec("50"),
		PaymentModeID: uuid.New(),
	})

	require.NoError(t, err)
	invoiceRepo.AssertExpectations(t)
}

func TestPaymentCreate_ExactBalanceAccepted(t *testing.T) {
	paymentRepo, invoiceRepo, settingRepo, svc := setupPaymentService()

	invoiceID := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, invoiceID).Return(&domain.Invoice{
		ID:     invoiceID,
		Total:  dec("100"),
		Credit: dec("60"),
	}, nil)
	settingRepo.On("Increment", mock.Anything, service.SettingLastPaymentNumber).Return(int64(9), nil)
	paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	invoiceRepo.On("ApplyCredit", mock.Anything, invoiceID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("100")) }),
		domain.PaymentStatusPaid).Return(nil)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreatePaymentInput{
		InvoiceID:     invoiceID,
		Amount:        dec("40"),
		PaymentModeID: uuid.New(),
	})

	require.NoError(t, err)
}

func TestPaymentCreate_ApplyCreditFailureSurfaces(t *testing.T) {
	paymentRepo, invoiceRepo, settingRepo, svc := setupPaymentService()

	invoiceID := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, invoiceID).Return(&domain.Invoice{
		ID:    invoiceID,
		Total: dec("100"),
	}, nil)
	settingRepo.On("Increment", mock.Anything, service.SettingLastPaymentNumber).Return(int64(10), nil)
	paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	invoiceRepo.On("ApplyCredit", mock.Anything, invoiceID, mock.Anything, mock.Anything).
		Return(domain.ErrInvoiceNotFound)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreatePaymentInput{
		InvoiceID:     invoiceID,
		Amount:        dec("100"),
		PaymentModeID: uuid.New(),
	})

	assert.Error(t, err)
}

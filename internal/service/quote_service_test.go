package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ledgerly/internal/domain"
	"ledgerly/internal/service"
	"ledgerly/mocks"
)

func setupQuoteService() (
	*mocks.MockQuoteRepo,
	*mocks.MockInvoiceRepo,
	*mocks.MockClientRepo,
	*mocks.MockSettingRepo,
	service.QuoteService,
) {
	quoteRepo := new(mocks.MockQuoteRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	settingRepo := new(mocks.MockSettingRepo)

	svc := service.NewQuoteService(quoteRepo, invoiceRepo, clientRepo, settingRepo, nil)
	return quoteRepo, invoiceRepo, clientRepo, settingRepo, svc
}

func TestQuoteCreate_ComputesTotals(t *testing.T) {
	quoteRepo, _, clientRepo, settingRepo, svc := setupQuoteService()

	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID}, nil)
	settingRepo.On("Increment", mock.Anything, service.SettingLastQuoteNumber).Return(int64(3), nil)
	quoteRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Quote")).Return(nil)

	q, err := svc.Create(context.Background(), uuid.New(), service.CreateQuoteInput{
		ClientID:    clientID,
		Date:        time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		ExpiredDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Items:       domain.LineItems{{Quantity: dec("4"), Price: dec("25")}},
		TaxRate:     dec("20"),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, q.Number)
	assert.Equal(t, "100", q.SubTotal.String())
	assert.Equal(t, "20", q.TaxTotal.String())
	assert.Equal(t, "120", q.Total.String())
	assert.False(t, q.Converted)
}

func TestQuoteCreate_ExpiryMustFollowIssueDate(t *testing.T) {
	quoteRepo, _, _, _, svc := setupQuoteService()

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateQuoteInput{
		ClientID:    uuid.New(),
		Date:        time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		ExpiredDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Items:       domain.LineItems{{Quantity: dec("1"), Price: dec("100")}},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	quoteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestQuoteUpdate_ConvertedIsImmutable(t *testing.T) {
	quoteRepo, _, _, _, svc := setupQuoteService()

	id := uuid.New()
	quoteRepo.On("GetByID", mock.Anything, id).Return(&domain.Quote{ID: id, Converted: true}, nil)

	note := "updated"
	_, err := svc.Update(context.Background(), id, service.UpdateQuoteInput{Note: &note})

	assert.ErrorIs(t, err, domain.ErrQuoteConverted)
	quoteRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestQuoteConvert_CreatesPendingInvoice(t *testing.T) {
	quoteRepo, invoiceRepo, clientRepo, settingRepo, svc := setupQuoteService()

	id := uuid.New()
	clientID := uuid.New()
	quote := &domain.Quote{
		ID:       id,
		Number:   5,
		Year:     2026,
		ClientID: clientID,
		Items:    domain.LineItems{{Quantity: dec("2"), Price: dec("100"), Total: dec("200")}},
		TaxRate:  dec("10"),
		SubTotal: dec("200"),
		TaxTotal: dec("20"),
		Total:    dec("220"),
	}
	quoteRepo.On("GetByID", mock.Anything, id).Return(quote, nil)
	quoteRepo.On("MarkConverted", mock.Anything, id).Return(nil)
	settingRepo.On("Increment", mock.Anything, service.SettingLastInvoiceNumber).Return(int64(50), nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	clientRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID}, nil)

	inv, err := svc.ConvertToInvoice(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, 50, inv.Number)
	assert.Equal(t, clientID, inv.ClientID)
	assert.Equal(t, "220", inv.Total.String())
	assert.True(t, inv.Credit.IsZero())
	assert.Equal(t, domain.InvoiceStatusPending, inv.Status)
	assert.Equal(t, domain.PaymentStatusUnpaid, inv.PaymentStatus)
}

func TestQuoteConvert_SecondConversionRejected(t *testing.T) {
	quoteRepo, invoiceRepo, _, _, svc := setupQuoteService()

	id := uuid.New()
	quoteRepo.On("GetByID", mock.Anything, id).Return(&domain.Quote{ID: id, Converted: true}, nil)
	quoteRepo.On("MarkConverted", mock.Anything, id).Return(domain.ErrQuoteConverted)

	_, err := svc.ConvertToInvoice(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrQuoteConverted)
	invoiceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

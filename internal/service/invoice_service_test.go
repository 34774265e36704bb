package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ledgerly/internal/domain"
	"ledgerly/internal/service"
	"ledgerly/mocks"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func setupInvoiceService() (
	*mocks.MockInvoiceRepo,
	*mocks.MockPaymentRepo,
	*mocks.MockClientRepo,
	*mocks.MockSettingRepo,
	service.InvoiceService,
) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	paymentRepo := new(mocks.MockPaymentRepo)
	clientRepo := new(mocks.MockClientRepo)
	settingRepo := new(mocks.MockSettingRepo)

	svc := service.NewInvoiceService(invoiceRepo, paymentRepo, clientRepo, settingRepo, nil)
	return invoiceRepo, paymentRepo, clientRepo, settingRepo, svc
}

func TestInvoiceCreate_ComputesTotals(t *testing.T) {
	invoiceRepo, _, clientRepo, settingRepo, svc := setupInvoiceService()

	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID, Name: "Acme"}, nil)
	settingRepo.On("Increment", mock.Anything, service.SettingLastInvoiceNumber).Return(int64(42), nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := svc.Create(context.Background(), uuid.New(), service.CreateInvoiceInput{
		ClientID:    clientID,
		Date:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ExpiredDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Items: domain.LineItems{
			{ItemName: "Widget", Quantity: dec("2"), Price: dec("100")},
		},
		TaxRate: dec("10"),
	})

	require.NoError(t, err)
	assert.Equal(t, 42, inv.Number)
	assert.Equal(t, 2026, inv.Year)
	assert.Equal(t, "200", inv.SubTotal.String())
	assert.Equal(t, "20", inv.TaxTotal.String())
	assert.Equal(t, "220", inv.Total.String())
	assert.True(t, inv.Credit.IsZero())
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, domain.PaymentStatusUnpaid, inv.PaymentStatus)
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceCreate_IgnoresClientSuppliedTotals(t *testing.T) {
	invoiceRepo, _, clientRepo, settingRepo, svc := setupInvoiceService()

	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID}, nil)
	settingRepo.On("Increment", mock.Anything, service.SettingLastInvoiceNumber).Return(int64(1), nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := svc.Create(context.Background(), uuid.New(), service.CreateInvoiceInput{
		ClientID:    clientID,
		Date:        time.Now(),
		ExpiredDate: time.Now().AddDate(0, 1, 0),
		Items: domain.LineItems{
			// total lies; server recomputes
			{ItemName: "Widget", Quantity: dec("1"), Price: dec("50"), Total: dec("9999")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "50", inv.Items[0].Total.String())
	assert.Equal(t, "50", inv.Total.String())
}

func TestInvoiceCreate_NoItems(t *testing.T) {
	_, _, _, _, svc := setupInvoiceService()

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateInvoiceInput{
		ClientID:    uuid.New(),
		Date:        time.Now(),
		ExpiredDate: time.Now(),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvoiceCreate_InvalidStatus(t *testing.T) {
	_, _, _, _, svc := setupInvoiceService()

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateInvoiceInput{
		ClientID:    uuid.New(),
		Date:        time.Now(),
		ExpiredDate: time.Now().AddDate(0, 1, 0),
		Items:       domain.LineItems{{Quantity: dec("1"), Price: dec("1")}},
		Status:      "bogus",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvoiceCreate_ClientNotFound(t *testing.T) {
	_, _, clientRepo, _, svc := setupInvoiceService()

	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, clientID).Return(nil, domain.ErrClientNotFound)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateInvoiceInput{
		ClientID:    clientID,
		Date:        time.Now(),
		ExpiredDate: time.Now().AddDate(0, 1, 0),
		Items:       domain.LineItems{{Quantity: dec("1"), Price: dec("1")}},
	})

	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestInvoiceCreate_ExpiryMustFollowIssueDate(t *testing.T) {
	tests := []struct {
		name        string
		expiredDate time.Time
	}{
		{"before issue date", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		{"same as issue date", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoiceRepo, _, _, _, svc := setupInvoiceService()

			_, err := svc.Create(context.Background(), uuid.New(), service.CreateInvoiceInput{
				ClientID:    uuid.New(),
				Date:        time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
				ExpiredDate: tt.expiredDate,
				Items:       domain.LineItems{{Quantity: dec("1"), Price: dec("100")}},
			})

			assert.ErrorIs(t, err, domain.ErrValidation)
			invoiceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestInvoiceUpdate_RecomputesAndKeepsCredit(t *testing.T) {
	invoiceRepo, _, clientRepo, _, svc := setupInvoiceService()

	id := uuid.New()
	existing := &domain.Invoice{
		ID:            id,
		ClientID:      uuid.New(),
		Date:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ExpiredDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Items:         domain.LineItems{{Quantity: dec("2"), Price: dec("100"), Total: dec("200")}},
		TaxRate:       dec("10"),
		SubTotal:      dec("200"),
		TaxTotal:      dec("20"),
		Total:         dec("220"),
		Credit:        dec("100"),
		Status:        domain.InvoiceStatusSent,
		PaymentStatus: domain.PaymentStatusPartially,
	}
	invoiceRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	invoiceRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	clientRepo.On("GetByID", mock.Anything, existing.ClientID).Return(&domain.Client{ID: existing.ClientID}, nil)

	newItems := domain.LineItems{{Quantity: dec("3"), Price: dec("100")}}
	inv, err := svc.Update(context.Background(), id, service.UpdateInvoiceInput{Items: &newItems})

	require.NoError(t, err)
	assert.Equal(t, "300", inv.SubTotal.String())
	assert.Equal(t, "330", inv.Total.String())
	assert.Equal(t, "100", inv.Credit.String())
	assert.Equal(t, domain.PaymentStatusPartially, inv.PaymentStatus)
}

func TestInvoiceUpdate_RejectsTotalBelowCredit(t *testing.T) {
	invoiceRepo, _, _, _, svc := setupInvoiceService()

	id := uuid.New()
	existing := &domain.Invoice{
		ID:          id,
		ClientID:    uuid.New(),
		Date:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ExpiredDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Items:       domain.LineItems{{Quantity: dec("2"), Price: dec("100"), Total: dec("200")}},
		Total:       dec("200"),
		Credit:      dec("150"),
	}
	invoiceRepo.On("GetByID", mock.Anything, id).Return(existing, nil)

	newItems := domain.LineItems{{Quantity: dec("1"), Price: dec("100")}}
	_, err := svc.Update(context.Background(), id, service.UpdateInvoiceInput{Items: &newItems})

	assert.ErrorIs(t, err, domain.ErrCreditExceedsTotal)
	invoiceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInvoiceUpdate_PaidWhenCreditMeetsNewTotal(t *testing.T) {
	invoiceRepo, _, clientRepo, _, svc := setupInvoiceService()

	id := uuid.New()
	existing := &domain.Invoice{
		ID:            id,
		ClientID:      uuid.New(),
		Date:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ExpiredDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Items:         domain.LineItems{{Quantity: dec("2"), Price: dec("100"), Total: dec("200")}},
		Total:         dec("200"),
		Credit:        dec("100"),
		PaymentStatus: domain.PaymentStatusPartially,
	}
	invoiceRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	invoiceRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	clientRepo.On("GetByID", mock.Anything, existing.ClientID).Return(&domain.Client{ID: existing.ClientID}, nil)

	newItems := domain.LineItems{{Quantity: dec("1"), Price: dec("100")}}
	inv, err := svc.Update(context.Background(), id, service.UpdateInvoiceInput{Items: &newItems})

	require.NoError(t, err)
	assert.Equal(t, "100", inv.Total.String())
	assert.Equal(t, domain.PaymentStatusPaid, inv.PaymentStatus)
}

func TestInvoiceUpdate_ExpiryMustFollowIssueDate(t *testing.T) {
	invoiceRepo, _, _, _, svc := setupInvoiceService()

	id := uuid.New()
	existing := &domain.Invoice{
		ID:          id,
		ClientID:    uuid.New(),
		Date:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ExpiredDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Items:       domain.LineItems{{Quantity: dec("1"), Price: dec("100"), Total: dec("100")}},
		Total:       dec("100"),
	}
	invoiceRepo.On("GetByID", mock.Anything, id).Return(existing, nil)

	badExpiry := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Update(context.Background(), id, service.UpdateInvoiceInput{ExpiredDate: &badExpiry})

	assert.ErrorIs(t, err, domain.ErrValidation)
	invoiceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInvoiceRemove_CascadesToPayments(t *testing.T) {
	invoiceRepo, paymentRepo, _, _, svc := setupInvoiceService()

	id := uuid.New()
	invoiceRepo.On("SoftDelete", mock.Anything, id).Return(nil)
	paymentRepo.On("SoftDeleteByInvoice", mock.Anything, id).Return(int64(2), nil)

	err := svc.Remove(context.Background(), id)

	assert.NoError(t, err)
	paymentRepo.AssertExpectations(t)
}

func TestInvoiceRemove_SecondRemoveSucceeds(t *testing.T) {
	invoiceRepo, paymentRepo, _, _, svc := setupInvoiceService()

	// The repository treats removing an already-removed invoice as a no-op,
	// so a repeated delete comes back clean with nothing left to cascade.
	id := uuid.New()
	invoiceRepo.On("SoftDelete", mock.Anything, id).Return(nil).Twice()
	paymentRepo.On("SoftDeleteByInvoice", mock.Anything, id).Return(int64(2), nil).Once()
	paymentRepo.On("SoftDeleteByInvoice", mock.Anything, id).Return(int64(0), nil).Once()

	require.NoError(t, svc.Remove(context.Background(), id))
	assert.NoError(t, svc.Remove(context.Background(), id))
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceRemove_NotFound(t *testing.T) {
	invoiceRepo, paymentRepo, _, _, svc := setupInvoiceService()

	id := uuid.New()
	invoiceRepo.On("SoftDelete", mock.Anything, id).Return(domain.ErrInvoiceNotFound)

	err := svc.Remove(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
	paymentRepo.AssertNotCalled(t, "SoftDeleteByInvoice", mock.Anything, mock.Anything)
}

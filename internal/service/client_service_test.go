package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ledgerly/internal/domain"
	"ledgerly/internal/service"
	"ledgerly/mocks"
)

func TestClientSummary(t *testing.T) {
	clientRepo := new(mocks.MockClientRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewClientService(clientRepo, invoiceRepo)

	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID}, nil)
	invoiceRepo.On("SummaryByClient", mock.Anything, clientID).Return(&domain.ClientSummary{
		ClientID:     clientID,
		InvoiceCount: 3,
		TotalBilled:  dec("660"),
		TotalPaid:    dec("440"),
		Outstanding:  dec("220"),
	}, nil)

	summary, err := svc.Summary(context.Background(), clientID)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.InvoiceCount)
	assert.Equal(t, "220", summary.Outstanding.String())
}

func TestClientSummary_ClientNotFound(t *testing.T) {
	clientRepo := new(mocks.MockClientRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewClientService(clientRepo, invoiceRepo)

	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, clientID).Return(nil, domain.ErrClientNotFound)

	_, err := svc.Summary(context.Background(), clientID)

	assert.ErrorIs(t, err, domain.ErrClientNotFound)
	invoiceRepo.AssertNotCalled(t, "SummaryByClient", mock.Anything, mock.Anything)
}

func TestClientUpdate_PartialFields(t *testing.T) {
	clientRepo := new(mocks.MockClientRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewClientService(clientRepo, invoiceRepo)

	id := uuid.New()
	clientRepo.On("GetByID", mock.Anything, id).Return(&domain.Client{
		ID:    id,
		Name:  "Acme",
		Email: "old@acme.test",
	}, nil)
	clientRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	email := "new@acme.test"
	client, err := svc.Update(context.Background(), id, service.UpdateClientInput{Email: &email})

	require.NoError(t, err)
	assert.Equal(t, "Acme", client.Name)
	assert.Equal(t, "new@acme.test", client.Email)
}

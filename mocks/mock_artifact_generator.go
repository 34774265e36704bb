package mocks

import (
	"github.com/stretchr/testify/mock"

	"ledgerly/internal/domain"
)

// MockArtifactGenerator is a mock implementation of port.ArtifactGenerator.
type MockArtifactGenerator struct {
	mock.Mock
}

func (m *MockArtifactGenerator) GenerateInvoice(inv *domain.Invoice, client *domain.Client) (string, error) {
	args := m.Called(inv, client)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactGenerator) GenerateQuote(q *domain.Quote, client *domain.Client) (string, error) {
	args := m.Called(q, client)
	return args.String(0), args.Error(1)
}

package port

import "ledgerly/internal/domain"

// ArtifactGenerator renders the printable artifact (PDF) for a financial
// document and returns the path it was written to. Generation runs outside
// the request path; failures are logged, never propagated to the caller.
type ArtifactGenerator interface {
	GenerateInvoice(inv *domain.Invoice, client *domain.Client) (string, error)
	GenerateQuote(q *domain.Quote, client *domain.Client) (string, error)
}

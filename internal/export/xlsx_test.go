package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ledgerly/internal/domain"
	"ledgerly/internal/export"
)

func TestWriteInvoices(t *testing.T) {
	inv := domain.Invoice{
		Number:        12,
		Year:          2026,
		ClientID:      uuid.New(),
		Date:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ExpiredDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		SubTotal:      decimal.RequireFromString("200"),
		TaxTotal:      decimal.RequireFromString("20"),
		Total:         decimal.RequireFromString("220"),
		Credit:        decimal.RequireFromString("100"),
		Status:        domain.InvoiceStatusSent,
		PaymentStatus: domain.PaymentStatusPartially,
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteInvoices(&buf, []domain.Invoice{inv}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Number", rows[0][0])
	assert.Equal(t, "12", rows[1][0])
	assert.Equal(t, "220.00", rows[1][8])
	assert.Equal(t, "120.00", rows[1][10]) // balance
	assert.Equal(t, "partially", rows[1][12])
}

func TestWriteInvoices_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteInvoices(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}

// Package export renders the invoice register as an Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"ledgerly/internal/domain"
)

const sheetName = "Invoices"

var headers = []string{
	"Number", "Year", "Client ID", "Date", "Due Date",
	"Sub Total", "Tax Total", "Discount", "Total", "Credit", "Balance",
	"Status", "Payment Status",
}

// WriteInvoices streams an xlsx workbook listing the given invoices.
func WriteInvoices(w io.Writer, invoices []domain.Invoice) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("export.WriteInvoices sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("export.WriteInvoices sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("export.WriteInvoices header: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("export.WriteInvoices header: %w", err)
		}
	}

	for i, inv := range invoices {
		row := i + 2
		values := []interface{}{
			inv.Number,
			inv.Year,
			inv.ClientID.String(),
			inv.Date.Format("2006-01-02"),
			inv.ExpiredDate.Format("2006-01-02"),
			inv.SubTotal.StringFixed(2),
			inv.TaxTotal.StringFixed(2),
			inv.Discount.StringFixed(2),
			inv.Total.StringFixed(2),
			inv.Credit.StringFixed(2),
			inv.Balance().StringFixed(2),
			string(inv.Status),
			string(inv.PaymentStatus),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("export.WriteInvoices row %d: %w", row, err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("export.WriteInvoices row %d: %w", row, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.WriteInvoices write: %w", err)
	}
	return nil
}

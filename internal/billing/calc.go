// Package billing computes the derived financial fields of invoices and
// quotes: per-item totals, the document subtotal, the tax total, and the
// grand total. All arithmetic goes through the money package.
package billing

import (
	"github.com/shopspring/decimal"

	"ledgerly/internal/domain"
	"ledgerly/internal/money"
)

// Totals holds the derived fields of a financial document.
type Totals struct {
	Items    domain.LineItems
	SubTotal decimal.Decimal
	TaxTotal decimal.Decimal
	Total    decimal.Decimal
}

// ComputeItems returns a copy of items with each total recomputed as
// quantity * price, together with the document subtotal. Any client-supplied
// item total is discarded. Negative quantities or prices are not rejected;
// they produce negative line totals that propagate into the subtotal.
func ComputeItems(items domain.LineItems) (domain.LineItems, decimal.Decimal) {
	out := make(domain.LineItems, len(items))
	subTotal := money.Zero
	for i, item := range items {
		item.Total = money.Multiply(item.Quantity, item.Price)
		out[i] = item
		subTotal = money.Add(subTotal, item.Total)
	}
	return out, subTotal
}

// ComputeTotals derives the tax total and grand total from a subtotal, a tax
// rate in percent, and a flat discount. A zero tax rate means no tax.
func ComputeTotals(subTotal, taxRate, discount decimal.Decimal) (taxTotal, total decimal.Decimal, err error) {
	rate, err := money.Divide(taxRate, decimal.NewFromInt(100))
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	taxTotal = money.Multiply(subTotal, rate)
	total = money.Sub(money.Add(subTotal, taxTotal), discount)
	return taxTotal, total, nil
}

// Compute runs ComputeItems and ComputeTotals for a document draft.
func Compute(items domain.LineItems, taxRate, discount decimal.Decimal) (*Totals, error) {
	computed, subTotal := ComputeItems(items)
	taxTotal, total, err := ComputeTotals(subTotal, taxRate, discount)
	if err != nil {
		return nil, err
	}
	return &Totals{
		Items:    computed,
		SubTotal: subTotal,
		TaxTotal: taxTotal,
		Total:    total,
	}, nil
}

// PaymentStatusFor derives the payment status from the credit applied so far
// against the document total.
func PaymentStatusFor(credit, total decimal.Decimal) domain.PaymentStatus {
	switch {
	case credit.GreaterThanOrEqual(total) && total.GreaterThan(decimal.Zero):
		return domain.PaymentStatusPaid
	case credit.GreaterThan(decimal.Zero):
		return domain.PaymentStatusPartially
	default:
		return domain.PaymentStatusUnpaid
	}
}

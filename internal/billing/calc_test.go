package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerly/internal/billing"
	"ledgerly/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func item(qty, price string) domain.LineItem {
	return domain.LineItem{Quantity: dec(qty), Price: dec(price)}
}

func TestComputeItems_RecomputesTotals(t *testing.T) {
	items := domain.LineItems{
		{Quantity: dec("2"), Price: dec("100"), Total: dec("999")}, // client total ignored
		item("3", "9.99"),
	}

	computed, subTotal := billing.ComputeItems(items)

	require.Len(t, computed, 2)
	assert.Equal(t, "200", computed[0].Total.String())
	assert.Equal(t, "29.97", computed[1].Total.String())
	assert.Equal(t, "229.97", subTotal.String())

	// Input slice is untouched.
	assert.Equal(t, "999", items[0].Total.String())
}

func TestComputeItems_ZeroQuantityOrPrice(t *testing.T) {
	computed, subTotal := billing.ComputeItems(domain.LineItems{
		item("0", "100"),
		item("5", "0"),
	})

	assert.True(t, computed[0].Total.IsZero())
	assert.True(t, computed[1].Total.IsZero())
	assert.True(t, subTotal.IsZero())
}

func TestComputeItems_Empty(t *testing.T) {
	computed, subTotal := billing.ComputeItems(nil)
	assert.Empty(t, computed)
	assert.True(t, subTotal.IsZero())
}

func TestComputeItems_OrderIndependent(t *testing.T) {
	a := domain.LineItems{item("1", "0.1"), item("1", "0.2"), item("1", "0.3")}
	b := domain.LineItems{item("1", "0.3"), item("1", "0.1"), item("1", "0.2")}

	_, subA := billing.ComputeItems(a)
	_, subB := billing.ComputeItems(b)

	assert.Equal(t, "0.6", subA.String())
	assert.True(t, subA.Equal(subB))
}

func TestComputeItems_NegativeValuesPropagate(t *testing.T) {
	computed, subTotal := billing.ComputeItems(domain.LineItems{
		item("2", "100"),
		item("-1", "50"),
	})

	assert.Equal(t, "-50", computed[1].Total.String())
	assert.Equal(t, "150", subTotal.String())
}

func TestComputeTotals(t *testing.T) {
	taxTotal, total, err := billing.ComputeTotals(dec("200"), dec("10"), dec("0"))
	require.NoError(t, err)
	assert.Equal(t, "20", taxTotal.String())
	assert.Equal(t, "220", total.String())
}

func TestComputeTotals_ZeroTaxRate(t *testing.T) {
	taxTotal, total, err := billing.ComputeTotals(dec("150"), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, taxTotal.IsZero())
	assert.Equal(t, "150", total.String())
}

func TestComputeTotals_Discount(t *testing.T) {
	taxTotal, total, err := billing.ComputeTotals(dec("100"), dec("20"), dec("30"))
	require.NoError(t, err)
	assert.Equal(t, "20", taxTotal.String())
	assert.Equal(t, "90", total.String())
}

func TestCompute_EndToEnd(t *testing.T) {
	totals, err := billing.Compute(domain.LineItems{item("2", "100")}, dec("10"), decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, "200", totals.SubTotal.String())
	assert.Equal(t, "20", totals.TaxTotal.String())
	assert.Equal(t, "220", totals.Total.String())
	assert.Equal(t, "200", totals.Items[0].Total.String())
}

func TestPaymentStatusFor(t *testing.T) {
	assert.Equal(t, domain.PaymentStatusUnpaid, billing.PaymentStatusFor(decimal.Zero, dec("100")))
	assert.Equal(t, domain.PaymentStatusPartially, billing.PaymentStatusFor(dec("50"), dec("100")))
	assert.Equal(t, domain.PaymentStatusPaid, billing.PaymentStatusFor(dec("100"), dec("100")))
}

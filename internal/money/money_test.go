package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ledgerly/internal/money"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAdd(t *testing.T) {
	assert.True(t, money.Add(dec("10"), dec("20")).Equal(dec("30")))

	// 0.1 + 0.2 must be exactly 0.3, not 0.30000000000000004.
	assert.Equal(t, "0.3", money.Add(dec("0.1"), dec("0.2")).String())
}

func TestSub(t *testing.T) {
	assert.True(t, money.Sub(dec("30"), dec("10")).Equal(dec("20")))
	assert.True(t, money.Sub(dec("0.3"), dec("0.1")).Equal(dec("0.2")))
}

func TestMultiply(t *testing.T) {
	assert.True(t, money.Multiply(dec("10"), dec("5")).Equal(dec("50")))
	assert.True(t, money.Multiply(dec("2"), dec("100")).Equal(dec("200")))

	// Rounds to currency precision.
	assert.Equal(t, "0.33", money.Multiply(dec("3.333"), dec("0.1")).String())
}

func TestDivide(t *testing.T) {
	q, err := money.Divide(dec("50"), dec("5"))
	assert.NoError(t, err)
	assert.True(t, q.Equal(dec("10")))

	q, err = money.Divide(dec("10"), dec("100"))
	assert.NoError(t, err)
	assert.True(t, q.Equal(dec("0.1")))
}

func TestDivide_ByZero(t *testing.T) {
	_, err := money.Divide(dec("50"), decimal.Zero)
	assert.ErrorIs(t, err, money.ErrDivisionByZero)
}

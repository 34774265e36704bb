// Package money provides the four arithmetic operations used for every
// currency calculation in the application. Each result is rounded to two
// decimal places so that repeated operations stay at currency precision
// and never accumulate binary floating-point artifacts.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Places is the currency precision applied to every result.
const Places = 2

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Zero is the zero amount at currency precision.
var Zero = decimal.Zero

// Add returns a + b rounded to currency precision.
func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b).Round(Places)
}

// Sub returns a - b rounded to currency precision.
func Sub(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b).Round(Places)
}

// Multiply returns a * b rounded to currency precision.
func Multiply(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Round(Places)
}

// Divide returns a / b rounded to currency precision, or ErrDivisionByZero
// when b is zero.
func Divide(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	return a.Div(b).Round(Places), nil
}

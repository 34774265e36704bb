package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateNumber    = errors.New("document number already exists for this year")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrQuoteConverted     = errors.New("quote has already been converted")
	ErrCreditExceedsTotal = errors.New("recomputed total is below the credit already applied")

	// Declined payment outcomes. These are expected business results, not
	// system failures; the handler layer reports them without a 4xx/5xx.
	ErrMinimumAmount  = errors.New("minimum amount of payment not reached")
	ErrExceedsBalance = errors.New("amount exceeds the remaining invoice balance")
)

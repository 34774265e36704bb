package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledgerly/internal/money"
)

// User represents a back-office user who can authenticate against the API.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	Role         UserRole  `db:"role" json:"role"`
	Enabled      bool      `db:"enabled" json:"enabled"`
	Removed      bool      `db:"removed" json:"removed"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Client represents a customer that invoices and quotes are issued to.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Country   string    `db:"country" json:"country"`
	Address   string    `db:"address" json:"address"`
	Email     string    `db:"email" json:"email"`
	Enabled   bool      `db:"enabled" json:"enabled"`
	Removed   bool      `db:"removed" json:"removed"`
	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ClientSummary aggregates the financial position of a single client.
type ClientSummary struct {
	ClientID     uuid.UUID       `db:"client_id" json:"client_id"`
	InvoiceCount int             `db:"invoice_count" json:"invoice_count"`
	TotalBilled  decimal.Decimal `db:"total_billed" json:"total_billed"`
	TotalPaid    decimal.Decimal `db:"total_paid" json:"total_paid"`
	Outstanding  decimal.Decimal `json:"outstanding"`
}

// Tax is a configurable tax rate, expressed as a percentage.
type Tax struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	TaxName   string          `db:"tax_name" json:"tax_name"`
	TaxValue  decimal.Decimal `db:"tax_value" json:"tax_value"`
	IsDefault bool            `db:"is_default" json:"is_default"`
	Enabled   bool            `db:"enabled" json:"enabled"`
	Removed   bool            `db:"removed" json:"removed"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// PaymentMode is a configurable way of paying an invoice (bank transfer, cash, ...).
type PaymentMode struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	IsDefault   bool      `db:"is_default" json:"is_default"`
	Enabled     bool      `db:"enabled" json:"enabled"`
	Removed     bool      `db:"removed" json:"removed"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Setting is a key/value application setting row.
type Setting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// LineItem is a single billable line on an invoice or quote. Its total is
// always recomputed server-side; client-supplied totals are ignored.
type LineItem struct {
	ItemName    string          `json:"item_name"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// LineItems is stored as a single JSONB column; items have no identity or
// lifecycle outside their parent document.
type LineItems []LineItem

// Value implements driver.Valuer for JSONB storage.
func (li LineItems) Value() (driver.Value, error) {
	if li == nil {
		return json.Marshal(LineItems{})
	}
	return json.Marshal(li)
}

// Scan implements sql.Scanner for JSONB storage.
func (li *LineItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*li = nil
		return nil
	case []byte:
		return json.Unmarshal(v, li)
	case string:
		return json.Unmarshal([]byte(v), li)
	default:
		return fmt.Errorf("unsupported type %T for LineItems", src)
	}
}

// Invoice is a financial document billed to a client. SubTotal, TaxTotal,
// Total, Credit and PaymentStatus are derived fields owned by the server.
type Invoice struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	Number        int             `db:"number" json:"number"`
	Year          int             `db:"year" json:"year"`
	ClientID      uuid.UUID       `db:"client_id" json:"client_id"`
	Date          time.Time       `db:"date" json:"date"`
	ExpiredDate   time.Time       `db:"expired_date" json:"expired_date"`
	Items         LineItems       `db:"items" json:"items"`
	TaxRate       decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	Discount      decimal.Decimal `db:"discount" json:"discount"`
	SubTotal      decimal.Decimal `db:"sub_total" json:"sub_total"`
	TaxTotal      decimal.Decimal `db:"tax_total" json:"tax_total"`
	Total         decimal.Decimal `db:"total" json:"total"`
	Credit        decimal.Decimal `db:"credit" json:"credit"`
	Status        InvoiceStatus   `db:"status" json:"status"`
	PaymentStatus PaymentStatus   `db:"payment_status" json:"payment_status"`
	Note          string          `db:"note" json:"note"`
	PDFPath       string          `db:"pdf_path" json:"pdf_path"`
	Removed       bool            `db:"removed" json:"removed"`
	CreatedBy     uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// Balance returns the amount still owed on the invoice.
func (i *Invoice) Balance() decimal.Decimal {
	return money.Sub(i.Total, i.Credit)
}

// Quote is structurally an invoice without payment tracking. A quote can be
// converted into a pending invoice exactly once.
type Quote struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Number      int             `db:"number" json:"number"`
	Year        int             `db:"year" json:"year"`
	ClientID    uuid.UUID       `db:"client_id" json:"client_id"`
	Date        time.Time       `db:"date" json:"date"`
	ExpiredDate time.Time       `db:"expired_date" json:"expired_date"`
	Items       LineItems       `db:"items" json:"items"`
	TaxRate     decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	Discount    decimal.Decimal `db:"discount" json:"discount"`
	SubTotal    decimal.Decimal `db:"sub_total" json:"sub_total"`
	TaxTotal    decimal.Decimal `db:"tax_total" json:"tax_total"`
	Total       decimal.Decimal `db:"total" json:"total"`
	Status      QuoteStatus     `db:"status" json:"status"`
	Converted   bool            `db:"converted" json:"converted"`
	Note        string          `db:"note" json:"note"`
	PDFPath     string          `db:"pdf_path" json:"pdf_path"`
	Removed     bool            `db:"removed" json:"removed"`
	CreatedBy   uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// Payment records an amount applied against an invoice. Payments are created
// through the payment service only and are never edited afterwards; they are
// soft-deleted when their invoice is removed.
type Payment struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	Number        int             `db:"number" json:"number"`
	InvoiceID     uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	ClientID      uuid.UUID       `db:"client_id" json:"client_id"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	PaymentModeID uuid.UUID       `db:"payment_mode_id" json:"payment_mode_id"`
	Date          time.Time       `db:"date" json:"date"`
	Ref           string          `db:"ref" json:"ref"`
	Description   string          `db:"description" json:"description"`
	Removed       bool            `db:"removed" json:"removed"`
	CreatedBy     uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

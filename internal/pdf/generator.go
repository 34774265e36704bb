package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"ledgerly/internal/config"
	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

type generator struct {
	cfg config.PDFConfig
}

// NewGenerator creates a gofpdf-backed ArtifactGenerator writing into the
// configured output directory.
func NewGenerator(cfg config.PDFConfig) (port.ArtifactGenerator, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("pdf output dir: %w", err)
	}
	return &generator{cfg: cfg}, nil
}

func (g *generator) GenerateInvoice(inv *domain.Invoice, client *domain.Client) (string, error) {
	filename := fmt.Sprintf("invoice-%d-%d.pdf", inv.Year, inv.Number)
	doc := document{
		title:       "INVOICE",
		number:      inv.Number,
		year:        inv.Year,
		date:        inv.Date,
		expiredDate: inv.ExpiredDate,
		items:       inv.Items,
		subTotal:    inv.SubTotal,
		taxTotal:    inv.TaxTotal,
		discount:    inv.Discount,
		total:       inv.Total,
		credit:      inv.Credit,
		balance:     inv.Balance(),
		showBalance: true,
		note:        inv.Note,
	}
	return g.render(filename, client, doc)
}

func (g *generator) GenerateQuote(q *domain.Quote, client *domain.Client) (string, error) {
	filename := fmt.Sprintf("quote-%d-%d.pdf", q.Year, q.Number)
	doc := document{
		title:       "QUOTE",
		number:      q.Number,
		year:        q.Year,
		date:        q.Date,
		expiredDate: q.ExpiredDate,
		items:       q.Items,
		subTotal:    q.SubTotal,
		taxTotal:    q.TaxTotal,
		discount:    q.Discount,
		total:       q.Total,
		note:        q.Note,
	}
	return g.render(filename, client, doc)
}

type document struct {
	title       string
	number      int
	year        int
	date        time.Time
	expiredDate time.Time
	items       domain.LineItems
	subTotal    decimal.Decimal
	taxTotal    decimal.Decimal
	discount    decimal.Decimal
	total       decimal.Decimal
	credit      decimal.Decimal
	balance     decimal.Decimal
	showBalance bool
	note        string
}

func (g *generator) render(filename string, client *domain.Client, doc document) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 8, g.cfg.CompanyName)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 24)
	pdf.Cell(0, 10, doc.title)
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 6, fmt.Sprintf("Number: %d/%d", doc.number, doc.year))
	pdf.Cell(60, 6, fmt.Sprintf("Date: %s", doc.date.Format("January 2, 2006")))
	pdf.Ln(6)
	pdf.Cell(60, 6, fmt.Sprintf("Due Date: %s", doc.expiredDate.Format("January 2, 2006")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Bill To:")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, client.Name)
	pdf.Ln(5)
	if client.Address != "" {
		pdf.Cell(0, 5, client.Address)
		pdf.Ln(5)
	}
	if client.Email != "" {
		pdf.Cell(0, 5, client.Email)
		pdf.Ln(5)
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.Cell(90, 8, "Item")
	pdf.Cell(25, 8, "Qty")
	pdf.Cell(35, 8, "Price")
	pdf.Cell(40, 8, "Total")
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	for _, item := range doc.items {
		name := item.ItemName
		if name == "" {
			name = item.Description
		}
		pdf.Cell(90, 6, name)
		pdf.Cell(25, 6, item.Quantity.String())
		pdf.Cell(35, 6, item.Price.StringFixed(2))
		pdf.Cell(40, 6, item.Total.StringFixed(2))
		pdf.Ln(6)
	}

	pdf.Ln(10)
	pdf.SetX(115)
	pdf.Cell(35, 8, "Subtotal:")
	pdf.Cell(40, 8, doc.subTotal.StringFixed(2))
	pdf.Ln(8)
	pdf.SetX(115)
	pdf.Cell(35, 8, "Tax:")
	pdf.Cell(40, 8, doc.taxTotal.StringFixed(2))
	pdf.Ln(8)
	if !doc.discount.IsZero() {
		pdf.SetX(115)
		pdf.Cell(35, 8, "Discount:")
		pdf.Cell(40, 8, doc.discount.Neg().StringFixed(2))
		pdf.Ln(8)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.SetX(115)
	pdf.Cell(35, 8, "Total:")
	pdf.Cell(40, 8, doc.total.StringFixed(2))
	pdf.Ln(8)

	if doc.showBalance {
		pdf.SetFont("Arial", "", 10)
		pdf.SetX(115)
		pdf.Cell(35, 8, "Paid:")
		pdf.Cell(40, 8, doc.credit.StringFixed(2))
		pdf.Ln(8)

		pdf.SetFont("Arial", "B", 14)
		pdf.SetX(115)
		pdf.Cell(35, 10, "Balance Due:")
		pdf.Cell(40, 10, doc.balance.StringFixed(2))
		pdf.Ln(10)
	}

	if doc.note != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, doc.note, "", "L", false)
	}

	path := filepath.Join(g.cfg.OutputDir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}
	return path, nil
}

package printing

import (
	"context"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/erp/mfgdesk/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

//go:embed templates/sales_invoice.html
var salesInvoiceTemplate string

// Letterhead is the issuing company printed at the top of an invoice
type Letterhead struct {
	Name    string
	Address string
	GSTIN   string
	Phone   string
	Email   string
}

// InvoiceLine is one printed row. Amounts are rounded for display.
type InvoiceLine struct {
	ItemCode  string
	ItemName  string
	Unit      string
	Quantity  decimal.Decimal
	Rate      decimal.Decimal
	Amount    decimal.Decimal
	TaxRate   decimal.Decimal
	TaxAmount decimal.Decimal
}

// InvoiceView is the data bound to the sales invoice template
type InvoiceView struct {
	Company      Letterhead
	Number       string
	Date         string
	DueDate      string
	Status       string
	PaymentTerms string
	ReceiptRef   string
	CustomerCode string
	CustomerName string
	Remarks      string
	Lines        []InvoiceLine
	Totals       document.Totals
}

// NewInvoiceView maps a sales invoice to its printed form
func NewInvoiceView(company Letterhead, doc *document.Document) (*InvoiceView, error) {
	if doc == nil || doc.Kind != document.KindSalesInvoice {
		return nil, NewRenderError(ErrCodeInvalidHTML, "only sales invoices can be printed", nil)
	}

	lines := make([]InvoiceLine, 0, len(doc.Items))
	for _, it := range doc.Items {
		line := InvoiceLine{
			ItemCode: it.ItemCode,
			ItemName: it.ItemName,
			Unit:     it.Unit,
			Quantity: it.Quantity,
			Rate:     it.Rate,
			Amount:   valueobject.RoundMoney(it.Amount),
			TaxRate:  document.DefaultTaxRate,
		}
		if it.TaxRate != nil {
			line.TaxRate = *it.TaxRate
		}
		if it.TaxAmount != nil {
			line.TaxAmount = valueobject.RoundMoney(*it.TaxAmount)
		}
		lines = append(lines, line)
	}

	return &InvoiceView{
		Company:      company,
		Number:       doc.DocumentNumber,
		Date:         doc.DocumentDate,
		DueDate:      doc.DueDate,
		Status:       doc.Status.String(),
		PaymentTerms: string(doc.PaymentTerms),
		ReceiptRef:   doc.MaterialReceiptRef,
		CustomerCode: doc.CounterpartyCode,
		CustomerName: doc.CounterpartyName,
		Remarks:      doc.Remarks,
		Lines:        lines,
		Totals:       doc.Totals().Rounded(),
	}, nil
}

// InvoicePrinter renders sales invoices to HTML and PDF
type InvoicePrinter struct {
	company  Letterhead
	tmpl     *template.Template
	renderer PDFRenderer
}

// NewInvoicePrinter parses the built-in invoice template
func NewInvoicePrinter(company Letterhead, engine *TemplateEngine, renderer PDFRenderer) (*InvoicePrinter, error) {
	if engine == nil {
		engine = NewTemplateEngine()
	}
	if renderer == nil {
		renderer = DisabledRenderer{}
	}
	tmpl, err := engine.Parse("sales_invoice", salesInvoiceTemplate)
	if err != nil {
		return nil, err
	}
	return &InvoicePrinter{company: company, tmpl: tmpl, renderer: renderer}, nil
}

// HTML renders the invoice page
func (p *InvoicePrinter) HTML(doc *document.Document) (string, error) {
	view, err := NewInvoiceView(p.company, doc)
	if err != nil {
		return "", err
	}
	return execute(p.tmpl, view)
}

// PDF renders the invoice to an A4 PDF
func (p *InvoicePrinter) PDF(ctx context.Context, doc *document.Document) (*RenderResult, error) {
	page, err := p.HTML(doc)
	if err != nil {
		return nil, err
	}
	return p.renderer.Render(ctx, &RenderRequest{
		HTML:        page,
		PaperSize:   PaperSizeA4,
		Orientation: OrientationPortrait,
		Margins:     DefaultMargins(),
		Title:       fmt.Sprintf("Invoice %s", doc.DocumentNumber),
		FooterHTML:  `<div style="font-size:8px;width:100%;text-align:center;">Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`,
	})
}

// Close releases the PDF renderer
func (p *InvoicePrinter) Close() error {
	return p.renderer.Close()
}

package printing

import (
	"context"
	"testing"

	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RenderResult), args.Error(1)
}

func (m *mockRenderer) Close() error {
	return m.Called().Error(0)
}

func sampleInvoice(t *testing.T) *document.Document {
	t.Helper()
	d := document.New(document.KindSalesInvoice)
	d.DocumentNumber = "INV-2024-001"
	d.DocumentDate = "2024-06-05"
	d.CounterpartyCode = "CUS-7"
	d.CounterpartyName = "Acme <Retail>"
	d.Discount = decimal.NewFromInt(80)
	d.Items = []document.LineItem{{
		ItemCode: "PA/IC/2024-25/00001",
		ItemName: "Sealing jaw",
		Unit:     "nos",
		Quantity: decimal.NewFromInt(10),
		Rate:     decimal.NewFromInt(100),
	}}
	require.NoError(t, d.Recalculate())
	return d
}

func TestInvoicePrinter_HTML(t *testing.T) {
	p, err := NewInvoicePrinter(Letterhead{Name: "Pack Automation", GSTIN: "29abcde1234f1z5"}, nil, nil)
	require.NoError(t, err)

	out, err := p.HTML(sampleInvoice(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Pack Automation")
	assert.Contains(t, out, "GSTIN: 29ABCDE1234F1Z5")
	assert.Contains(t, out, "INV-2024-001")
	assert.Contains(t, out, "05 Jun 2024")
	assert.Contains(t, out, "Acme &lt;Retail&gt; (CUS-7)")
	assert.Contains(t, out, "1,000.00")
	assert.Contains(t, out, "₹180.00")
	assert.Contains(t, out, "₹1,100.00")
	assert.NotContains(t, out, "Due Date")
}

func TestInvoicePrinter_RejectsOtherKinds(t *testing.T) {
	p, err := NewInvoicePrinter(Letterhead{}, nil, nil)
	require.NoError(t, err)

	_, err = p.HTML(document.New(document.KindPurchaseOrder))
	assert.Error(t, err)
}

func TestInvoicePrinter_PDF(t *testing.T) {
	ctx := context.Background()
	renderer := new(mockRenderer)
	renderer.On("Render", ctx, mock.MatchedBy(func(req *RenderRequest) bool {
		return req.PaperSize == PaperSizeA4 && req.Title == "Invoice INV-2024-001" && req.FooterHTML != ""
	})).Return(&RenderResult{PDFData: []byte("%PDF-1.4"), PageCount: 1}, nil)
	renderer.On("Close").Return(nil)

	p, err := NewInvoicePrinter(Letterhead{Name: "Pack Automation"}, NewTemplateEngine(), renderer)
	require.NoError(t, err)

	res, err := p.PDF(ctx, sampleInvoice(t))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), res.PDFData)
	assert.NoError(t, p.Close())
	renderer.AssertExpectations(t)
}

func TestInvoicePrinter_DisabledRenderer(t *testing.T) {
	p, err := NewInvoicePrinter(Letterhead{}, nil, nil)
	require.NoError(t, err)

	_, err = p.PDF(context.Background(), sampleInvoice(t))
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeRendererDisabled, renderErr.Code)
}

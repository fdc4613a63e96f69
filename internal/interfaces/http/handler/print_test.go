package handler

import (
	"net/http"
	"strings"
	"testing"

	printapp "github.com/erp/mfgdesk/internal/application/printing"
	infra "github.com/erp/mfgdesk/internal/infrastructure/printing"
	"github.com/erp/mfgdesk/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePDF = []byte("%PDF-1.7\n/Type /Page\n%%EOF")

func TestPrintHandler_HTML(t *testing.T) {
	env := newTestEnv(t)
	id := env.createdID(t, "/api/v1/documents/sales-invoice", salesInvoiceBody())

	w := env.do(t, http.MethodGet, "/api/v1/documents/sales-invoice/"+id+"/print?format=html", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "style-src 'unsafe-inline'")
	assert.Contains(t, w.Body.String(), "TAX INVOICE")
	assert.Contains(t, w.Body.String(), "Zenith Foods")
	assert.Contains(t, w.Body.String(), "₹1,100.00")
}

func TestPrintHandler_PDFInline(t *testing.T) {
	env := newTestEnv(t, withRenderer(fixedRenderer{pdf: samplePDF}))
	id := env.createdID(t, "/api/v1/documents/sales-invoice", salesInvoiceBody())

	w := env.do(t, http.MethodGet, "/api/v1/documents/sales-invoice/"+id+"/print", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="SI-2024-123.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, samplePDF, w.Body.Bytes())
}

func TestPrintHandler_PDFArchived(t *testing.T) {
	files := storage.NewMemoryObjectStorage("https://files.example.test")
	env := newTestEnv(t, withRenderer(fixedRenderer{pdf: samplePDF}), withStorage(files))
	id := env.createdID(t, "/api/v1/documents/sales-invoice", salesInvoiceBody())

	w := env.do(t, http.MethodGet, "/api/v1/documents/sales-invoice/"+id+"/print?format=pdf", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode[printapp.InvoicePDF](t, w).Data
	assert.Equal(t, "invoices/"+id+"/SI-2024-123.pdf", out.StorageKey)
	assert.True(t, strings.HasPrefix(out.DownloadURL, "https://files.example.test/"), out.DownloadURL)

	stored, ok := files.Object(out.StorageKey)
	require.True(t, ok)
	assert.Equal(t, samplePDF, stored)
}

func TestPrintHandler_Failures(t *testing.T) {
	t.Run("renderer disabled", func(t *testing.T) {
		env := newTestEnv(t)
		id := env.createdID(t, "/api/v1/documents/sales-invoice", salesInvoiceBody())

		w := env.do(t, http.MethodGet, "/api/v1/documents/sales-invoice/"+id+"/print", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "ERR_UNAVAILABLE", decode[any](t, w).Error.Code)
	})

	t.Run("render timeout", func(t *testing.T) {
		env := newTestEnv(t, withRenderer(fixedRenderer{
			err: infra.NewRenderError(infra.ErrCodeRenderTimeout, "PDF rendering timed out", nil),
		}))
		id := env.createdID(t, "/api/v1/documents/sales-invoice", salesInvoiceBody())

		w := env.do(t, http.MethodGet, "/api/v1/documents/sales-invoice/"+id+"/print", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("only sales invoices", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodGet, "/api/v1/documents/purchase-order/abc/print", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing invoice", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodGet, "/api/v1/documents/sales-invoice/nope/print?format=html", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown format", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodGet, "/api/v1/documents/sales-invoice/abc/print?format=docx", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

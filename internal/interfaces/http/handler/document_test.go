package handler

import (
	"net/http"
	"testing"

	docapp "github.com/erp/mfgdesk/internal/application/document"
	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesInvoiceBody() map[string]any {
	return map[string]any{
		"documentNumber":   "SI/2024/123",
		"documentDate":     "2024-09-02",
		"counterpartyCode": "BUY-0007",
		"counterpartyName": "Zenith Foods",
		"dueDate":          "2024-10-02",
		"discount":         "80",
		"items": []map[string]any{
			{"itemCode": "PA/IC/2024-25/00001", "itemName": "Sealing Jaw Heater", "unit": "nos", "quantity": "10", "rate": "100"},
		},
	}
}

func TestDocumentHandler_CreateSalesInvoice(t *testing.T) {
	env := newTestEnv(t)

	body := salesInvoiceBody()
	// client totals are ignored
	body["totals"] = map[string]any{"grandTotal": "1"}

	w := env.do(t, http.MethodPost, "/api/v1/documents/sales-invoice", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	doc := decode[docapp.DocumentResponse](t, w).Data
	assert.Equal(t, document.KindSalesInvoice, doc.Kind)
	assert.Equal(t, document.StatusPending, doc.Status)
	assert.Equal(t, "1000", doc.Totals.Subtotal.String())
	assert.Equal(t, "180", doc.Totals.TotalTax.String())
	assert.Equal(t, "1100", doc.Totals.GrandTotal.String())

	list := decode[[]docapp.DocumentResponse](t, env.do(t, http.MethodGet, "/api/v1/documents/sales-invoice?search=zenith", nil))
	require.Len(t, list.Data, 1)
	assert.Equal(t, doc.ID, list.Data[0].ID)
}

func TestDocumentHandler_DuplicateNumberConflicts(t *testing.T) {
	env := newTestEnv(t)
	env.createdID(t, "/api/v1/documents/sales-invoice", salesInvoiceBody())

	w := env.do(t, http.MethodPost, "/api/v1/documents/sales-invoice", salesInvoiceBody())
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	resp := decode[any](t, w)
	assert.Equal(t, "ERR_ALREADY_EXISTS", resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "documentNumber", resp.Error.Details[0].Field)

	list := decode[[]docapp.DocumentResponse](t, env.do(t, http.MethodGet, "/api/v1/documents/sales-invoice", nil))
	assert.Len(t, list.Data, 1)
}

func TestDocumentHandler_EmptyLineItems(t *testing.T) {
	env := newTestEnv(t)
	body := salesInvoiceBody()
	body["items"] = []any{}

	w := env.do(t, http.MethodPost, "/api/v1/documents/sales-invoice", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode[any](t, w)
	assert.Equal(t, "ERR_EMPTY_LINE_ITEMS", resp.Error.Code)
	assert.Equal(t, "Please add at least one item.", resp.Error.Message)
}

func TestDocumentHandler_LineFailuresAreIndexed(t *testing.T) {
	env := newTestEnv(t)
	body := salesInvoiceBody()
	body["items"] = []map[string]any{
		{"itemCode": "A", "quantity": "1", "rate": "10"},
		{"itemCode": "", "quantity": "2", "rate": "10"},
	}

	w := env.do(t, http.MethodPost, "/api/v1/documents/sales-invoice", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode[any](t, w)
	fields := make([]string, 0, len(resp.Error.Details))
	for _, d := range resp.Error.Details {
		fields = append(fields, d.Field)
	}
	assert.Contains(t, fields, "items[1].itemCode")
}

func TestDocumentHandler_UnknownKind(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/documents/quotation", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentHandler_ReplaceDeleteRefresh(t *testing.T) {
	env := newTestEnv(t)
	id := env.createdID(t, "/api/v1/documents/sales-invoice", salesInvoiceBody())

	body := salesInvoiceBody()
	body["status"] = "Paid"
	w := env.do(t, http.MethodPut, "/api/v1/documents/sales-invoice/"+id, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, document.StatusPaid, decode[docapp.DocumentResponse](t, w).Data.Status)

	w = env.do(t, http.MethodPost, "/api/v1/documents/sales-invoice/refresh", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "documents/sales-invoice", decode[RefreshData](t, w).Data.Bucket)

	assert.Equal(t, http.StatusNoContent, env.do(t, http.MethodDelete, "/api/v1/documents/sales-invoice/"+id, nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/api/v1/documents/sales-invoice/"+id, nil).Code)
}

func TestDocumentHandler_Export(t *testing.T) {
	env := newTestEnv(t)
	env.createdID(t, "/api/v1/documents/sales-invoice", salesInvoiceBody())

	w := env.do(t, http.MethodGet, "/api/v1/documents/sales-invoice/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="sales-invoice-`)
}

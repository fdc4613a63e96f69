package handler

import (
	"net/http"
	"testing"

	calcapp "github.com/erp/mfgdesk/internal/application/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoreHandler_Validate(t *testing.T) {
	env := newTestEnv(t)

	t.Run("failures are reported with 200", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/validate", map[string]any{
			"fields": map[string]string{"gstin": "27AAPFU0939F1Z", "email": "sales@acme.in"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[calcapp.ValidateResponse](t, w).Data
		assert.False(t, resp.Valid)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "gstin", resp.Errors[0].Field)
	})

	t.Run("valid field", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/validate", map[string]any{"field": "contactNumber", "value": "9876543210"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decode[calcapp.ValidateResponse](t, w).Data.Valid)
	})

	t.Run("unknown field", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/validate", map[string]any{"field": "shoeSize", "value": "9"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ERR_INVALID_INPUT", decode[any](t, w).Error.Code)
	})
}

func TestCoreHandler_CalculateLine(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/calculate/line", map[string]any{
		"kind": "sales-invoice",
		"line": map[string]any{"itemCode": "A", "quantity": "3", "rate": "33.33"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	line := decode[calcapp.LineResponse](t, w).Data
	assert.Equal(t, "99.99", line.Amount.String())
	require.NotNil(t, line.TaxRate)
	assert.Equal(t, "18", line.TaxRate.String())

	t.Run("kind is required", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/calculate/line", map[string]any{"line": map[string]any{"itemCode": "A"}})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("non-numeric quantity", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/calculate/line", map[string]any{
			"kind": "purchase-order",
			"line": map[string]any{"itemCode": "A", "quantity": "ten", "rate": "5"},
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "ERR_VALIDATION_FORMAT", decode[any](t, w).Error.Code)
	})
}

func TestCoreHandler_CalculateTotals(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/calculate/totals", map[string]any{
		"kind":     "sales-invoice",
		"discount": "80",
		"items": []map[string]any{
			{"itemCode": "A", "quantity": "10", "rate": "100"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[calcapp.TotalsResponse](t, w).Data
	assert.Equal(t, "1000", resp.Totals.Subtotal.String())
	assert.Equal(t, "180", resp.Totals.TotalTax.String())
	assert.Equal(t, "1100", resp.Totals.GrandTotal.String())
	assert.Len(t, resp.Items, 1)

	t.Run("unknown kind", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/calculate/totals", map[string]any{"kind": "quotation"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

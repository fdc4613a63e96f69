package calculation

import (
	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ValidateRequest checks either one field (Field, Value) or many (Fields)
type ValidateRequest struct {
	Field  string            `json:"field"`
	Value  string            `json:"value"`
	Fields map[string]string `json:"fields"`
}

// ValidateResponse lists every failing field; Valid is true when there are none
type ValidateResponse struct {
	Valid  bool                 `json:"valid"`
	Errors []*shared.FieldError `json:"errors"`
}

// LineRequest is one line typed into a form, numbers as raw text
type LineRequest struct {
	Kind string             `json:"kind" binding:"required"`
	Line document.LineDraft `json:"line"`
}

// LineResponse is a computed line. Amounts are rounded for display.
type LineResponse struct {
	Quantity  decimal.Decimal  `json:"quantity"`
	Rate      decimal.Decimal  `json:"rate"`
	Amount    decimal.Decimal  `json:"amount"`
	TaxRate   *decimal.Decimal `json:"taxRate,omitempty"`
	TaxAmount *decimal.Decimal `json:"taxAmount,omitempty"`
}

// TotalsRequest carries every line of a document draft and its discount
type TotalsRequest struct {
	Kind     string               `json:"kind" binding:"required"`
	Items    []document.LineDraft `json:"items"`
	Discount string               `json:"discount"`
}

// TotalsResponse holds the computed lines and document totals
type TotalsResponse struct {
	Items  []LineResponse  `json:"items"`
	Totals document.Totals `json:"totals"`
}

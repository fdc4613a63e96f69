package document

import (
	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/erp/mfgdesk/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DefaultTaxRate applied to invoice lines that do not specify one
var DefaultTaxRate = decimal.NewFromInt(18)

// TaxRates returns the allowed invoice tax percentages
func TaxRates() []decimal.Decimal {
	return []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(5),
		decimal.NewFromInt(12),
		decimal.NewFromInt(18),
		decimal.NewFromInt(28),
	}
}

// IsAllowedTaxRate reports whether rate is one of TaxRates()
func IsAllowedTaxRate(rate decimal.Decimal) bool {
	for _, r := range TaxRates() {
		if r.Equal(rate) {
			return true
		}
	}
	return false
}

// LineAmount returns quantity × rate at full precision
func LineAmount(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate)
}

// TaxAmount returns amount × taxRate / 100 at full precision
func TaxAmount(amount, taxRate decimal.Decimal) decimal.Decimal {
	return amount.Mul(taxRate).Div(hundred)
}

// Totals holds the document-level aggregates
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	TotalTax   decimal.Decimal `json:"totalTax"`
	Discount   decimal.Decimal `json:"discount"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	ItemCount  int             `json:"itemCount"`
}

// Rounded returns a copy with every amount rounded for display
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal:   valueobject.RoundMoney(t.Subtotal),
		TotalTax:   valueobject.RoundMoney(t.TotalTax),
		Discount:   valueobject.RoundMoney(t.Discount),
		GrandTotal: valueobject.RoundMoney(t.GrandTotal),
		ItemCount:  t.ItemCount,
	}
}

// ComputeTotals sums the line amounts and tax amounts of items and applies a
// flat discount. The grand total never goes below zero.
// An empty item list is rejected with shared.ErrEmptyLineItemList.
func ComputeTotals(items []LineItem, discount decimal.Decimal) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, shared.ErrEmptyLineItemList
	}
	if discount.IsNegative() {
		return Totals{}, shared.NewFormatError("discount", "Discount cannot be negative.")
	}

	subtotal := decimal.Zero
	totalTax := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
		if item.TaxAmount != nil {
			totalTax = totalTax.Add(*item.TaxAmount)
		}
	}

	grand := subtotal.Add(totalTax).Sub(discount)
	if grand.IsNegative() {
		grand = decimal.Zero
	}

	return Totals{
		Subtotal:   subtotal,
		TotalTax:   totalTax,
		Discount:   discount,
		GrandTotal: grand,
		ItemCount:  len(items),
	}, nil
}

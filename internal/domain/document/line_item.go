package document

import (
	"slices"
	"strings"
	"time"

	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of every document date
const DateLayout = "2006-01-02"

// LineItem is one row of a document.
// Amount (and TaxAmount on invoices) are always recomputed from the inputs;
// values sent by a client are overwritten.
type LineItem struct {
	ItemCode     string           `json:"itemCode"`
	ItemName     string           `json:"itemName"`
	Unit         string           `json:"unit,omitempty"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Rate         decimal.Decimal  `json:"rate"`
	Amount       decimal.Decimal  `json:"amount"`
	OrderedQty   *decimal.Decimal `json:"orderedQty,omitempty"`
	ReceivedQty  *decimal.Decimal `json:"receivedQty,omitempty"`
	TaxRate      *decimal.Decimal `json:"taxRate,omitempty"`
	TaxAmount    *decimal.Decimal `json:"taxAmount,omitempty"`
	RequiredDate string           `json:"requiredDate,omitempty"`
	LineStatus   LineStatus       `json:"lineStatus,omitempty"`
}

// LineInput carries the operator's entries for a new line.
// Nil numbers are "not entered".
type LineInput struct {
	ItemCode     string
	ItemName     string
	Unit         string
	Quantity     *decimal.Decimal
	Rate         *decimal.Decimal
	OrderedQty   *decimal.Decimal
	ReceivedQty  *decimal.Decimal
	TaxRate      *decimal.Decimal
	RequiredDate string
	LineStatus   LineStatus
}

// LineDraft is a line as typed into a form: every number is raw text.
type LineDraft struct {
	ItemCode     string `json:"itemCode"`
	ItemName     string `json:"itemName"`
	Unit         string `json:"unit"`
	Quantity     string `json:"quantity"`
	Rate         string `json:"rate"`
	OrderedQty   string `json:"orderedQty"`
	ReceivedQty  string `json:"receivedQty"`
	TaxRate      string `json:"taxRate"`
	RequiredDate string `json:"requiredDate"`
	LineStatus   string `json:"lineStatus"`
}

// ParseNumber converts raw form text to a decimal. Empty text yields nil
// (not entered); anything non-numeric is a format error on field.
func ParseNumber(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, shared.NewFormatError(field, field+" must be a number.")
	}
	return &d, nil
}

// Input parses the draft's numbers. All unparsable fields are reported together.
func (d LineDraft) Input() (LineInput, error) {
	var errs shared.FieldErrors
	parse := func(field, raw string) *decimal.Decimal {
		v, err := ParseNumber(field, raw)
		errs.Add(err)
		return v
	}

	in := LineInput{
		ItemCode:     d.ItemCode,
		ItemName:     d.ItemName,
		Unit:         d.Unit,
		Quantity:     parse("quantity", d.Quantity),
		Rate:         parse("rate", d.Rate),
		OrderedQty:   parse("orderedQty", d.OrderedQty),
		ReceivedQty:  parse("receivedQty", d.ReceivedQty),
		TaxRate:      parse("taxRate", d.TaxRate),
		RequiredDate: d.RequiredDate,
		LineStatus:   LineStatus(strings.TrimSpace(d.LineStatus)),
	}
	return in, errs.Err()
}

// requiredInputs lists the numeric entries a line of kind k cannot be added without
func requiredInputs(k Kind) []string {
	switch k {
	case KindIndent:
		return []string{"quantity", "requiredDate"}
	case KindMaterialReceipt:
		return []string{"orderedQty", "receivedQty", "rate"}
	default:
		return []string{"quantity", "rate"}
	}
}

// NewLineItem builds a line of kind k from operator input, refusing it when the
// item is unselected or a number the kind requires is missing or negative.
func NewLineItem(k Kind, in LineInput) (LineItem, error) {
	var errs shared.FieldErrors

	if strings.TrimSpace(in.ItemCode) == "" {
		errs.Add(shared.NewRequiredFieldError("itemCode", "Please select an item."))
	}

	present := map[string]bool{
		"quantity":     in.Quantity != nil,
		"rate":         in.Rate != nil,
		"orderedQty":   in.OrderedQty != nil,
		"receivedQty":  in.ReceivedQty != nil,
		"requiredDate": strings.TrimSpace(in.RequiredDate) != "",
	}
	for _, field := range requiredInputs(k) {
		if !present[field] {
			errs.Add(shared.NewRequiredFieldError(field, ""))
		}
	}

	for field, v := range map[string]*decimal.Decimal{
		"quantity":    in.Quantity,
		"rate":        in.Rate,
		"orderedQty":  in.OrderedQty,
		"receivedQty": in.ReceivedQty,
	} {
		if v != nil && v.IsNegative() {
			errs.Add(shared.NewFormatError(field, field+" cannot be negative."))
		}
	}

	if in.RequiredDate != "" && !isDate(in.RequiredDate) {
		errs.Add(shared.NewFormatError("requiredDate", "Invalid date."))
	}
	if in.LineStatus != "" && !in.LineStatus.IsValid() {
		errs.Add(shared.NewFormatError("lineStatus", "Invalid line status."))
	}
	if k.HasTax() && in.TaxRate != nil && !IsAllowedTaxRate(*in.TaxRate) {
		errs.Add(shared.NewFormatError("taxRate", "Tax rate must be one of 0, 5, 12, 18 or 28."))
	}

	if err := errs.Err(); err != nil {
		return LineItem{}, sortFieldErrors(errs)
	}

	item := LineItem{
		ItemCode:     strings.TrimSpace(in.ItemCode),
		ItemName:     strings.TrimSpace(in.ItemName),
		Unit:         in.Unit,
		Quantity:     valueOrZero(in.Quantity),
		Rate:         valueOrZero(in.Rate),
		RequiredDate: in.RequiredDate,
	}

	switch k {
	case KindMaterialReceipt:
		item.OrderedQty = in.OrderedQty
		item.ReceivedQty = in.ReceivedQty
		item.Quantity = *in.ReceivedQty
		item.LineStatus = in.LineStatus
		if item.LineStatus == "" {
			item.LineStatus = LineStatusComplete
		}
	case KindSalesInvoice:
		rate := DefaultTaxRate
		if in.TaxRate != nil {
			rate = *in.TaxRate
		}
		item.TaxRate = &rate
	}

	item.Recalculate(k)
	return item, nil
}

// Recalculate derives Amount (and TaxAmount for invoices) from the line's
// quantities and rate. Material receipts bill the received quantity.
func (li *LineItem) Recalculate(k Kind) {
	qty := li.Quantity
	if k == KindMaterialReceipt && li.ReceivedQty != nil {
		qty = *li.ReceivedQty
		li.Quantity = qty
	}
	li.Amount = LineAmount(qty, li.Rate)

	if k.HasTax() {
		rate := DefaultTaxRate
		if li.TaxRate != nil {
			rate = *li.TaxRate
		}
		li.TaxRate = &rate
		tax := TaxAmount(li.Amount, rate)
		li.TaxAmount = &tax
	} else {
		li.TaxRate = nil
		li.TaxAmount = nil
	}
}

// Input returns the operator entries that produced the line, so stored lines
// can be re-validated through NewLineItem.
func (li LineItem) Input() LineInput {
	qty := li.Quantity
	rate := li.Rate
	return LineInput{
		ItemCode:     li.ItemCode,
		ItemName:     li.ItemName,
		Unit:         li.Unit,
		Quantity:     &qty,
		Rate:         &rate,
		OrderedQty:   li.OrderedQty,
		ReceivedQty:  li.ReceivedQty,
		TaxRate:      li.TaxRate,
		RequiredDate: li.RequiredDate,
		LineStatus:   li.LineStatus,
	}
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func isDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// sortFieldErrors orders errors by field name so map iteration does not leak
// into messages.
func sortFieldErrors(errs shared.FieldErrors) shared.FieldErrors {
	out := slices.Clone(errs)
	slices.SortStableFunc(out, func(a, b *shared.FieldError) int {
		return strings.Compare(a.Field, b.Field)
	})
	return out
}

// Package calculation serves the stateless validation and line arithmetic
// used by data entry screens before anything is saved.
package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/erp/mfgdesk/internal/domain/shared/valueobject"
	"github.com/erp/mfgdesk/internal/domain/validation"
	"github.com/erp/mfgdesk/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownField is returned when a field has no validation rule
	ErrUnknownField = shared.NewDomainError("UNKNOWN_FIELD", "No validation rule exists for this field")
	// ErrInvalidKind is returned for an unknown document kind
	ErrInvalidKind = shared.NewDomainError("INVALID_KIND", "Unknown document kind")
)

// Service runs validators and the line-item calculator. It holds no state.
type Service struct{}

// NewService creates a new Service
func NewService() *Service {
	return &Service{}
}

// Validate checks the submitted fields. Failures are reported in the
// response, not as an error; only an unknown field name is an error.
func (s *Service) Validate(ctx context.Context, req ValidateRequest) (*ValidateResponse, error) {
	values := make(map[validation.Field]string, len(req.Fields)+1)
	for name, v := range req.Fields {
		values[validation.Field(name)] = v
	}
	if req.Field != "" {
		values[validation.Field(req.Field)] = req.Value
	}
	if len(values) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "field or fields is required")
	}
	for f := range values {
		if !validation.IsKnown(f) {
			return nil, shared.NewDomainError(ErrUnknownField.Code, fmt.Sprintf("No validation rule exists for %q", f))
		}
	}

	errs := validation.ValidateAll(values)
	if errs == nil {
		errs = shared.FieldErrors{}
	}
	return &ValidateResponse{Valid: len(errs) == 0, Errors: errs}, nil
}

// CalculateLine builds a single line and returns its amount and tax
func (s *Service) CalculateLine(ctx context.Context, req LineRequest) (_ *LineResponse, err error) {
	_, span := telemetry.StartServiceSpan(ctx, "calculation", "line", "document.kind", req.Kind)
	defer func() { telemetry.EndSpan(span, err) }()

	k, err := parseKind(req.Kind)
	if err != nil {
		return nil, err
	}
	item, err := buildLine(k, req.Line)
	if err != nil {
		return nil, err
	}
	resp := toLineResponse(item)
	return &resp, nil
}

// CalculateTotals builds every line and sums them. Line failures are
// reported together as items[i].<field>.
func (s *Service) CalculateTotals(ctx context.Context, req TotalsRequest) (_ *TotalsResponse, err error) {
	_, span := telemetry.StartServiceSpan(ctx, "calculation", "totals",
		"document.kind", req.Kind, "document.lines", len(req.Items))
	defer func() { telemetry.EndSpan(span, err) }()

	k, err := parseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	discount := decimal.Zero
	var errs shared.FieldErrors
	if k == document.KindSalesInvoice {
		d, derr := document.ParseNumber("discount", req.Discount)
		errs.Add(derr)
		switch {
		case d == nil:
		case d.IsNegative():
			errs.Add(shared.NewFormatError("discount", "Discount cannot be negative."))
		default:
			discount = *d
		}
	}

	items := make([]document.LineItem, 0, len(req.Items))
	for i, draft := range req.Items {
		item, err := buildLine(k, draft)
		if err != nil {
			var lineErrs shared.FieldErrors
			if !errors.As(err, &lineErrs) {
				return nil, err
			}
			for _, fe := range lineErrs {
				errs.Add(&shared.FieldError{
					Field:   fmt.Sprintf("items[%d].%s", i, fe.Field),
					Code:    fe.Code,
					Message: fe.Message,
				})
			}
			continue
		}
		items = append(items, item)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	totals, err := document.ComputeTotals(items, discount)
	if err != nil {
		return nil, err
	}
	resp := &TotalsResponse{Items: make([]LineResponse, len(items)), Totals: totals.Rounded()}
	for i, item := range items {
		resp.Items[i] = toLineResponse(item)
	}
	return resp, nil
}

func parseKind(kind string) (document.Kind, error) {
	k := document.Kind(kind)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// buildLine parses the draft and builds the line; parse and rule failures
// are merged so the operator sees all of them at once.
func buildLine(k document.Kind, draft document.LineDraft) (document.LineItem, error) {
	in, parseErr := draft.Input()
	item, err := document.NewLineItem(k, in)
	if parseErr == nil {
		return item, err
	}
	var errs shared.FieldErrors
	errs.Add(parseErr)
	if err != nil {
		var ruleErrs shared.FieldErrors
		if errors.As(err, &ruleErrs) {
			for _, fe := range ruleErrs {
				// a value that failed to parse also shows as missing
				if errs.Lookup(fe.Field) == nil {
					errs.Add(fe)
				}
			}
		}
	}
	return document.LineItem{}, errs
}

func toLineResponse(item document.LineItem) LineResponse {
	resp := LineResponse{
		Quantity: item.Quantity,
		Rate:     item.Rate,
		Amount:   valueobject.RoundMoney(item.Amount),
		TaxRate:  item.TaxRate,
	}
	if item.TaxAmount != nil {
		tax := valueobject.RoundMoney(*item.TaxAmount)
		resp.TaxAmount = &tax
	}
	return resp
}

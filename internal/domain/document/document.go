package document

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Document is the record shape shared by every transactional document kind.
// Kind-specific sections are left empty on kinds that do not use them.
type Document struct {
	Kind             Kind            `json:"kind"`
	DocumentNumber   string          `json:"documentNumber"`
	DocumentDate     string          `json:"documentDate"`
	CounterpartyCode string          `json:"counterpartyCode,omitempty"`
	CounterpartyName string          `json:"counterpartyName,omitempty"`
	Status           Status          `json:"status"`
	Remarks          string          `json:"remarks,omitempty"`
	Items            []LineItem      `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	TotalTax         decimal.Decimal `json:"totalTax"`
	Discount         decimal.Decimal `json:"discount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TotalItems       int             `json:"totalItems"`

	// Indent
	RequestedBy string     `json:"requestedBy,omitempty"`
	Department  Department `json:"department,omitempty"`

	// Indent and job work order
	Priority Priority `json:"priority,omitempty"`

	// Purchase order and sales invoice
	PaymentTerms PaymentTerms `json:"paymentTerms,omitempty"`

	// Purchase order
	IndentRef    string `json:"indentRef,omitempty"`
	DeliveryDate string `json:"deliveryDate,omitempty"`

	// Job work order
	JobType         JobType `json:"jobType,omitempty"`
	StartDate       string  `json:"startDate,omitempty"`
	ExpectedEndDate string  `json:"expectedEndDate,omitempty"`
	WorkDescription string  `json:"workDescription,omitempty"`

	// Material receipt
	POReference  string       `json:"poReference,omitempty"`
	ReceivedBy   string       `json:"receivedBy,omitempty"`
	QualityCheck QualityCheck `json:"qualityCheck,omitempty"`

	// Sales invoice
	MaterialReceiptRef string `json:"materialReceiptRef,omitempty"`
	DueDate            string `json:"dueDate,omitempty"`

	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New returns an empty document of kind k with the kind's defaults applied
func New(k Kind) *Document {
	d := &Document{Kind: k, Items: []LineItem{}}
	d.ApplyDefaults()
	return d
}

// ApplyDefaults fills enum fields the operator left empty
func (d *Document) ApplyDefaults() {
	if d.Status == "" {
		d.Status = StatusPending
	}
	switch d.Kind {
	case KindIndent, KindJobWorkOrder:
		if d.Priority == "" {
			d.Priority = PriorityMedium
		}
	case KindPurchaseOrder, KindSalesInvoice:
		if d.PaymentTerms == "" {
			d.PaymentTerms = PaymentTerms30Days
		}
	case KindMaterialReceipt:
		if d.QualityCheck == "" {
			d.QualityCheck = QualityCheckPending
		}
	}
	if d.Kind != KindSalesInvoice {
		d.Discount = decimal.Zero
	}
}

// Totals returns the current aggregates as stored on the document
func (d *Document) Totals() Totals {
	return Totals{
		Subtotal:   d.Subtotal,
		TotalTax:   d.TotalTax,
		Discount:   d.Discount,
		GrandTotal: d.TotalAmount,
		ItemCount:  d.TotalItems,
	}
}

// Recalculate re-derives every line amount and the document totals from the
// current item list. A document without items is rejected.
func (d *Document) Recalculate() error {
	for i := range d.Items {
		d.Items[i].Recalculate(d.Kind)
	}
	totals, err := ComputeTotals(d.Items, d.Discount)
	if err != nil {
		return err
	}
	d.Subtotal = totals.Subtotal
	d.TotalTax = totals.TotalTax
	d.TotalAmount = totals.GrandTotal
	d.TotalItems = totals.ItemCount
	return nil
}

// Validate checks header fields, enum values and every line.
// Field failures are returned together as shared.FieldErrors; an empty item
// list is reported as shared.ErrEmptyLineItemList.
func (d *Document) Validate() error {
	if !d.Kind.IsValid() {
		return shared.NewDomainError("INVALID_KIND", "Unknown document kind")
	}

	var errs shared.FieldErrors
	required := func(field, value, message string) {
		if strings.TrimSpace(value) == "" {
			errs.Add(shared.NewRequiredFieldError(field, message))
		}
	}
	date := func(field, value string) {
		if value != "" && !isDate(value) {
			errs.Add(shared.NewFormatError(field, "Invalid date."))
		}
	}

	required("documentNumber", d.DocumentNumber, "Document number is required.")
	date("documentDate", d.DocumentDate)

	if !d.Kind.AllowsStatus(d.Status) {
		errs.Add(shared.NewFormatError("status", "Invalid status for "+d.Kind.Label()+"."))
	}

	switch d.Kind {
	case KindIndent:
		required("requestedBy", d.RequestedBy, "Requested by is required.")
		required("department", string(d.Department), "Department is required.")
		if d.Department != "" && !d.Department.IsValid() {
			errs.Add(shared.NewFormatError("department", "Invalid department."))
		}
	default:
		required("counterpartyName", d.CounterpartyName, d.Kind.CounterpartyLabel()+" is required.")
	}

	if d.Kind == KindIndent || d.Kind == KindJobWorkOrder {
		if !d.Priority.IsValid() {
			errs.Add(shared.NewFormatError("priority", "Invalid priority."))
		}
	}
	if d.Kind == KindPurchaseOrder || d.Kind == KindSalesInvoice {
		if !d.PaymentTerms.ValidFor(d.Kind) {
			errs.Add(shared.NewFormatError("paymentTerms", "Invalid payment terms."))
		}
	}

	switch d.Kind {
	case KindPurchaseOrder:
		date("deliveryDate", d.DeliveryDate)
	case KindJobWorkOrder:
		if d.JobType != "" && !d.JobType.IsValid() {
			errs.Add(shared.NewFormatError("jobType", "Invalid job type."))
		}
		date("startDate", d.StartDate)
		date("expectedEndDate", d.ExpectedEndDate)
	case KindMaterialReceipt:
		if !d.QualityCheck.IsValid() {
			errs.Add(shared.NewFormatError("qualityCheck", "Invalid quality check status."))
		}
	case KindSalesInvoice:
		date("dueDate", d.DueDate)
		if d.Discount.IsNegative() {
			errs.Add(shared.NewFormatError("discount", "Discount cannot be negative."))
		}
	}

	for i, item := range d.Items {
		if _, err := NewLineItem(d.Kind, item.Input()); err != nil {
			var lineErrs shared.FieldErrors
			if errors.As(err, &lineErrs) {
				for _, fe := range lineErrs {
					errs.Add(&shared.FieldError{
						Field:   fmt.Sprintf("items[%d].%s", i, fe.Field),
						Code:    fe.Code,
						Message: fe.Message,
					})
				}
			}
		}
	}

	if err := errs.Err(); err != nil {
		return err
	}
	if len(d.Items) == 0 {
		return shared.ErrEmptyLineItemList
	}
	return nil
}

// Prepare validates the document and recomputes its totals ahead of a save.
// Timestamps are stamped with now; CreatedAt is kept when already set.
func (d *Document) Prepare(now time.Time) error {
	d.ApplyDefaults()
	if d.DocumentDate == "" {
		d.DocumentDate = now.Format(DateLayout)
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if err := d.Recalculate(); err != nil {
		return err
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	return nil
}

// Matches reports whether term occurs in any searchable field
func (d *Document) Matches(term string) bool {
	return shared.MatchesSearch(term,
		d.DocumentNumber,
		d.CounterpartyName,
		d.CounterpartyCode,
		string(d.Status),
		d.RequestedBy,
		string(d.Department),
	)
}

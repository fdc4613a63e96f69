package document

// Kind identifies a transactional document type.
// The value doubles as the subtype segment of the record path.
type Kind string

const (
	KindIndent          Kind = "indent"
	KindPurchaseOrder   Kind = "purchase-order"
	KindJobWorkOrder    Kind = "job-work-order"
	KindMaterialReceipt Kind = "material-receipt"
	KindSalesInvoice    Kind = "sales-invoice"
)

// Collection is the top-level record collection documents are stored under
const Collection = "documents"

// AllKinds returns every document kind in menu order
func AllKinds() []Kind {
	return []Kind{KindIndent, KindPurchaseOrder, KindJobWorkOrder, KindMaterialReceipt, KindSalesInvoice}
}

// IsValid checks if the kind is known
func (k Kind) IsValid() bool {
	switch k {
	case KindIndent, KindPurchaseOrder, KindJobWorkOrder, KindMaterialReceipt, KindSalesInvoice:
		return true
	}
	return false
}

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// Label returns a human-readable name
func (k Kind) Label() string {
	switch k {
	case KindIndent:
		return "Purchase Indent"
	case KindPurchaseOrder:
		return "Purchase Order"
	case KindJobWorkOrder:
		return "Job Work Order"
	case KindMaterialReceipt:
		return "Material Receipt"
	case KindSalesInvoice:
		return "Sales Invoice"
	}
	return string(k)
}

// CounterpartyLabel names the party a document of this kind is raised against
func (k Kind) CounterpartyLabel() string {
	switch k {
	case KindPurchaseOrder, KindMaterialReceipt:
		return "Supplier"
	case KindJobWorkOrder:
		return "Contractor"
	case KindSalesInvoice:
		return "Customer"
	}
	return ""
}

// HasTax reports whether lines of this kind carry a tax rate
func (k Kind) HasTax() bool {
	return k == KindSalesInvoice
}

// Status is a free-form workflow label. Any allowed status may be set by an
// edit; there are no transition guards.
type Status string

const (
	StatusPending           Status = "Pending"
	StatusApproved          Status = "Approved"
	StatusRejected          Status = "Rejected"
	StatusPartiallyApproved Status = "Partially Approved"
	StatusSentToSupplier    Status = "Sent to Supplier"
	StatusAcknowledged      Status = "Acknowledged"
	StatusPartiallyReceived Status = "Partially Received"
	StatusCompleted         Status = "Completed"
	StatusCancelled         Status = "Cancelled"
	StatusInProgress        Status = "In Progress"
	StatusOnHold            Status = "On Hold"
	StatusQualityCheck      Status = "Quality Check"
	StatusSent              Status = "Sent"
	StatusPaid              Status = "Paid"
	StatusOverdue           Status = "Overdue"
	StatusPartiallyPaid     Status = "Partially Paid"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

var statusesByKind = map[Kind][]Status{
	KindIndent: {StatusPending, StatusApproved, StatusRejected, StatusPartiallyApproved},
	KindPurchaseOrder: {
		StatusPending, StatusApproved, StatusSentToSupplier, StatusAcknowledged,
		StatusPartiallyReceived, StatusCompleted, StatusCancelled,
	},
	KindJobWorkOrder: {
		StatusPending, StatusInProgress, StatusOnHold, StatusQualityCheck,
		StatusCompleted, StatusCancelled,
	},
	KindMaterialReceipt: {StatusPending, StatusInProgress, StatusCompleted, StatusRejected},
	KindSalesInvoice: {
		StatusPending, StatusSent, StatusPaid, StatusOverdue,
		StatusPartiallyPaid, StatusCancelled,
	},
}

// Statuses returns the closed status set of the kind
func (k Kind) Statuses() []Status {
	return append([]Status(nil), statusesByKind[k]...)
}

// AllowsStatus reports whether s belongs to the status set of the kind
func (k Kind) AllowsStatus(s Status) bool {
	for _, allowed := range statusesByKind[k] {
		if allowed == s {
			return true
		}
	}
	return false
}

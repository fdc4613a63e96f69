package document

import (
	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// LineRequest is one line as submitted. Nil numbers are "not entered".
// Amount and tax are always computed by the server.
type LineRequest struct {
	ItemCode     string           `json:"itemCode"`
	ItemName     string           `json:"itemName"`
	Unit         string           `json:"unit"`
	Quantity     *decimal.Decimal `json:"quantity"`
	Rate         *decimal.Decimal `json:"rate"`
	OrderedQty   *decimal.Decimal `json:"orderedQty"`
	ReceivedQty  *decimal.Decimal `json:"receivedQty"`
	TaxRate      *decimal.Decimal `json:"taxRate"`
	RequiredDate string           `json:"requiredDate"`
	LineStatus   string           `json:"lineStatus"`
}

func (r LineRequest) input() document.LineInput {
	return document.LineInput{
		ItemCode:     r.ItemCode,
		ItemName:     r.ItemName,
		Unit:         r.Unit,
		Quantity:     r.Quantity,
		Rate:         r.Rate,
		OrderedQty:   r.OrderedQty,
		ReceivedQty:  r.ReceivedQty,
		TaxRate:      r.TaxRate,
		RequiredDate: r.RequiredDate,
		LineStatus:   document.LineStatus(r.LineStatus),
	}
}

// DocumentRequest is the body of a document create or full replace.
// Fields a kind does not use are ignored. Totals are never accepted.
type DocumentRequest struct {
	DocumentNumber   string           `json:"documentNumber" binding:"max=50"`
	DocumentDate     string           `json:"documentDate"`
	CounterpartyCode string           `json:"counterpartyCode"`
	CounterpartyName string           `json:"counterpartyName" binding:"max=200"`
	Status           string           `json:"status"`
	Remarks          string           `json:"remarks" binding:"max=2000"`
	Items            []LineRequest    `json:"items"`
	Discount         *decimal.Decimal `json:"discount"`

	RequestedBy        string `json:"requestedBy"`
	Department         string `json:"department"`
	Priority           string `json:"priority"`
	PaymentTerms       string `json:"paymentTerms"`
	IndentRef          string `json:"indentRef"`
	DeliveryDate       string `json:"deliveryDate"`
	JobType            string `json:"jobType"`
	StartDate          string `json:"startDate"`
	ExpectedEndDate    string `json:"expectedEndDate"`
	WorkDescription    string `json:"workDescription"`
	POReference        string `json:"poReference"`
	ReceivedBy         string `json:"receivedBy"`
	QualityCheck       string `json:"qualityCheck"`
	MaterialReceiptRef string `json:"materialReceiptRef"`
	DueDate            string `json:"dueDate"`
}

// toDocument copies the header of req onto a new document of kind k.
// Lines are built separately so missing numbers can be reported per line.
func (r DocumentRequest) toDocument(k document.Kind) *document.Document {
	d := document.New(k)
	d.DocumentNumber = r.DocumentNumber
	d.DocumentDate = r.DocumentDate
	d.CounterpartyCode = r.CounterpartyCode
	d.CounterpartyName = r.CounterpartyName
	d.Status = document.Status(r.Status)
	d.Remarks = r.Remarks

	switch k {
	case document.KindIndent:
		d.RequestedBy = r.RequestedBy
		d.Department = document.Department(r.Department)
		d.Priority = document.Priority(r.Priority)
	case document.KindPurchaseOrder:
		d.IndentRef = r.IndentRef
		d.DeliveryDate = r.DeliveryDate
		d.PaymentTerms = document.PaymentTerms(r.PaymentTerms)
	case document.KindJobWorkOrder:
		d.JobType = document.JobType(r.JobType)
		d.StartDate = r.StartDate
		d.ExpectedEndDate = r.ExpectedEndDate
		d.Priority = document.Priority(r.Priority)
		d.WorkDescription = r.WorkDescription
	case document.KindMaterialReceipt:
		d.POReference = r.POReference
		d.ReceivedBy = r.ReceivedBy
		d.QualityCheck = document.QualityCheck(r.QualityCheck)
	case document.KindSalesInvoice:
		d.MaterialReceiptRef = r.MaterialReceiptRef
		d.DueDate = r.DueDate
		d.PaymentTerms = document.PaymentTerms(r.PaymentTerms)
		if r.Discount != nil {
			d.Discount = *r.Discount
		}
	}
	return d
}

// DocumentResponse is a stored document with amounts rounded for display
type DocumentResponse struct {
	ID      string `json:"id"`
	Version int64  `json:"version"`
	document.Document
	Totals document.Totals `json:"totals"`
}

func toResponse(e *record.Entry[document.Document]) DocumentResponse {
	d := e.Value
	totals := d.Totals().Rounded()

	items := make([]document.LineItem, len(d.Items))
	for i, it := range d.Items {
		it.Amount = valueobject.RoundMoney(it.Amount)
		if it.TaxAmount != nil {
			tax := valueobject.RoundMoney(*it.TaxAmount)
			it.TaxAmount = &tax
		}
		items[i] = it
	}
	d.Items = items
	d.Subtotal = totals.Subtotal
	d.TotalTax = totals.TotalTax
	d.Discount = totals.Discount
	d.TotalAmount = totals.GrandTotal

	return DocumentResponse{ID: e.ID, Version: e.Version, Document: d, Totals: totals}
}

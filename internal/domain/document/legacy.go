package document

import "github.com/erp/mfgdesk/internal/domain/record"

// Bucket returns the record bucket documents of kind k are stored in
func (k Kind) Bucket() record.Bucket {
	return record.NewBucket(Collection, string(k))
}

// LegacyFields maps the per-kind field names older records were saved with
// onto the shared document header. The short name wins over its "...Name"
// variant when a record carries both.
func LegacyFields(k Kind) record.FieldRenames {
	switch k {
	case KindIndent:
		return record.FieldRenames{
			{Legacy: "indentNo", Canonical: "documentNumber"},
			{Legacy: "indentDate", Canonical: "documentDate"},
		}
	case KindPurchaseOrder:
		return record.FieldRenames{
			{Legacy: "poNumber", Canonical: "documentNumber"},
			{Legacy: "poDate", Canonical: "documentDate"},
			{Legacy: "supplier", Canonical: "counterpartyName"},
			{Legacy: "supplierName", Canonical: "counterpartyName"},
			{Legacy: "supplierCode", Canonical: "counterpartyCode"},
		}
	case KindJobWorkOrder:
		return record.FieldRenames{
			{Legacy: "jobOrderNo", Canonical: "documentNumber"},
			{Legacy: "orderDate", Canonical: "documentDate"},
			{Legacy: "contractor", Canonical: "counterpartyName"},
			{Legacy: "contractorName", Canonical: "counterpartyName"},
			{Legacy: "contractorCode", Canonical: "counterpartyCode"},
		}
	case KindMaterialReceipt:
		return record.FieldRenames{
			{Legacy: "receiptNo", Canonical: "documentNumber"},
			{Legacy: "receiptDate", Canonical: "documentDate"},
			{Legacy: "supplier", Canonical: "counterpartyName"},
			{Legacy: "supplierName", Canonical: "counterpartyName"},
			{Legacy: "supplierCode", Canonical: "counterpartyCode"},
		}
	case KindSalesInvoice:
		return record.FieldRenames{
			{Legacy: "invoiceNo", Canonical: "documentNumber"},
			{Legacy: "invoiceDate", Canonical: "documentDate"},
			{Legacy: "customer", Canonical: "counterpartyName"},
			{Legacy: "customerName", Canonical: "counterpartyName"},
			{Legacy: "customerCode", Canonical: "counterpartyCode"},
		}
	}
	return nil
}

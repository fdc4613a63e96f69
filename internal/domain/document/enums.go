package document

import "slices"

// Priority of an indent or job work order
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// IsValid checks if the priority is known
func (p Priority) IsValid() bool {
	return slices.Contains([]Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}, p)
}

// Department raising an indent
type Department string

const (
	DepartmentProduction     Department = "Production"
	DepartmentMaintenance    Department = "Maintenance"
	DepartmentQuality        Department = "Quality"
	DepartmentAdministration Department = "Administration"
	DepartmentSales          Department = "Sales"
)

// IsValid checks if the department is known
func (d Department) IsValid() bool {
	return slices.Contains([]Department{
		DepartmentProduction, DepartmentMaintenance, DepartmentQuality,
		DepartmentAdministration, DepartmentSales,
	}, d)
}

// PaymentTerms of a purchase order or sales invoice
type PaymentTerms string

const (
	PaymentTermsImmediate PaymentTerms = "Immediate"
	PaymentTerms15Days    PaymentTerms = "15 Days"
	PaymentTerms30Days    PaymentTerms = "30 Days"
	PaymentTerms45Days    PaymentTerms = "45 Days"
	PaymentTerms60Days    PaymentTerms = "60 Days"
	PaymentTermsAdvance   PaymentTerms = "Advance"
	PaymentTermsCOD       PaymentTerms = "COD"
)

// ValidFor reports whether the terms are offered on documents of kind k
func (p PaymentTerms) ValidFor(k Kind) bool {
	switch k {
	case KindPurchaseOrder:
		return slices.Contains([]PaymentTerms{
			PaymentTerms15Days, PaymentTerms30Days, PaymentTerms45Days,
			PaymentTerms60Days, PaymentTermsAdvance, PaymentTermsCOD,
		}, p)
	case KindSalesInvoice:
		return slices.Contains([]PaymentTerms{
			PaymentTermsImmediate, PaymentTerms15Days, PaymentTerms30Days,
			PaymentTerms45Days, PaymentTerms60Days, PaymentTermsCOD,
		}, p)
	}
	return false
}

// JobType of a job work order
type JobType string

const (
	JobTypeManufacturing JobType = "Manufacturing"
	JobTypeAssembly      JobType = "Assembly"
	JobTypeRepair        JobType = "Repair"
	JobTypeMaintenance   JobType = "Maintenance"
	JobTypeInstallation  JobType = "Installation"
	JobTypeTesting       JobType = "Testing"
)

// IsValid checks if the job type is known
func (j JobType) IsValid() bool {
	return slices.Contains([]JobType{
		JobTypeManufacturing, JobTypeAssembly, JobTypeRepair,
		JobTypeMaintenance, JobTypeInstallation, JobTypeTesting,
	}, j)
}

// QualityCheck result of a material receipt
type QualityCheck string

const (
	QualityCheckPending     QualityCheck = "Pending"
	QualityCheckPassed      QualityCheck = "Passed"
	QualityCheckFailed      QualityCheck = "Failed"
	QualityCheckConditional QualityCheck = "Conditional"
)

// IsValid checks if the quality check result is known
func (q QualityCheck) IsValid() bool {
	return slices.Contains([]QualityCheck{
		QualityCheckPending, QualityCheckPassed, QualityCheckFailed, QualityCheckConditional,
	}, q)
}

// LineStatus is the operator-selected completeness of a received line.
// It is never derived from the ordered and received quantities.
type LineStatus string

const (
	LineStatusComplete LineStatus = "Complete"
	LineStatusPartial  LineStatus = "Partial"
	LineStatusRejected LineStatus = "Rejected"
)

// IsValid checks if the line status is known
func (s LineStatus) IsValid() bool {
	return s == LineStatusComplete || s == LineStatusPartial || s == LineStatusRejected
}

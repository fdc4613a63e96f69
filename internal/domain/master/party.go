// Package master holds the party and item master records.
package master

import (
	"slices"
	"strings"
	"time"

	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/erp/mfgdesk/internal/domain/validation"
	"github.com/shopspring/decimal"
)

// PartyCollection is the record collection holding suppliers and buyers
const PartyCollection = "partyMaster"

// PartySubtype partitions parties into buckets
type PartySubtype string

const (
	PartySubtypeSupplier PartySubtype = "supplier"
	PartySubtypeBuyer    PartySubtype = "buyer"
)

// PartySubtypes returns every party bucket subtype
func PartySubtypes() []PartySubtype {
	return []PartySubtype{PartySubtypeSupplier, PartySubtypeBuyer}
}

// IsValid checks if the subtype is known
func (s PartySubtype) IsValid() bool {
	return s == PartySubtypeSupplier || s == PartySubtypeBuyer
}

// Bucket returns the record bucket of the subtype
func (s PartySubtype) Bucket() record.Bucket {
	return record.NewBucket(PartyCollection, string(s))
}

// PartyCategory classifies what a party does for the business
type PartyCategory string

const (
	PartyCategoryManufacturer PartyCategory = "Manufacturer"
	PartyCategoryTraders      PartyCategory = "Traders"
	PartyCategoryJobWork      PartyCategory = "Job Work"
)

// IsValid checks if the category is known
func (c PartyCategory) IsValid() bool {
	return slices.Contains([]PartyCategory{PartyCategoryManufacturer, PartyCategoryTraders, PartyCategoryJobWork}, c)
}

// PartyType tells whether the business buys from, sells to, or both
type PartyType string

const (
	PartyTypeSupplier PartyType = "Supplier"
	PartyTypeCustomer PartyType = "Customer"
	PartyTypeBoth     PartyType = "Both"
)

// IsValid checks if the party type is known
func (t PartyType) IsValid() bool {
	return t == PartyTypeSupplier || t == PartyTypeCustomer || t == PartyTypeBoth
}

// PartyStatus represents the status of a party
type PartyStatus string

const (
	PartyStatusActive   PartyStatus = "Active"
	PartyStatusInactive PartyStatus = "Inactive"
)

// IsValid checks if the status is known
func (s PartyStatus) IsValid() bool {
	return s == PartyStatusActive || s == PartyStatusInactive
}

// Party is a supplier or customer record.
// Edits replace the whole record; there is no soft delete.
type Party struct {
	PartyCode     string          `json:"partyCode"`
	PartyName     string          `json:"partyName"`
	Category      PartyCategory   `json:"category"`
	PartyType     PartyType       `json:"partyType,omitempty"`
	ContactPerson string          `json:"contactPerson,omitempty"`
	ContactNumber string          `json:"contactNumber"`
	Email         string          `json:"email,omitempty"`
	Website       string          `json:"website,omitempty"`
	PartyAddress  string          `json:"partyAddress,omitempty"`
	GSTIN         string          `json:"gstin,omitempty"`
	PANNo         string          `json:"panNo,omitempty"`
	CINNo         string          `json:"cinNo,omitempty"`
	MSMEID        string          `json:"msmeId,omitempty"`
	CreditLimit   decimal.Decimal `json:"creditLimit"`
	CreditPeriod  string          `json:"creditPeriod,omitempty"`
	CreatedBy     string          `json:"createdBy,omitempty"`
	ApprovedBy    string          `json:"approvedBy,omitempty"`
	Status        PartyStatus     `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// PartyLegacyFields maps field names used by older party records
func PartyLegacyFields() record.FieldRenames {
	return record.FieldRenames{
		{Legacy: "phone", Canonical: "contactNumber"},
		{Legacy: "address", Canonical: "partyAddress"},
		{Legacy: "gstNumber", Canonical: "gstin"},
	}
}

// Normalize trims free text and upper-cases registration numbers
func (p *Party) Normalize() {
	p.PartyCode = strings.TrimSpace(p.PartyCode)
	p.PartyName = strings.TrimSpace(p.PartyName)
	p.ContactPerson = strings.TrimSpace(p.ContactPerson)
	p.ContactNumber = strings.TrimSpace(p.ContactNumber)
	p.Email = strings.TrimSpace(p.Email)
	p.Website = strings.TrimSpace(p.Website)
	p.GSTIN = strings.ToUpper(strings.TrimSpace(p.GSTIN))
	p.PANNo = strings.ToUpper(strings.TrimSpace(p.PANNo))
	p.CINNo = strings.ToUpper(strings.TrimSpace(p.CINNo))
	p.MSMEID = strings.ToUpper(strings.TrimSpace(p.MSMEID))
	if p.Status == "" {
		p.Status = PartyStatusActive
	}
}

// Validate checks every field and returns all failures as shared.FieldErrors
func (p *Party) Validate() error {
	var errs shared.FieldErrors

	if strings.TrimSpace(p.PartyCode) == "" {
		errs.Add(shared.NewRequiredFieldError("partyCode", "Party code is required."))
	}
	if strings.TrimSpace(p.PartyName) == "" {
		errs.Add(shared.NewRequiredFieldError("partyName", "Party name is required."))
	}

	errs = append(errs, validation.ValidateAll(map[validation.Field]string{
		validation.FieldCategory:      string(p.Category),
		validation.FieldContactNumber: p.ContactNumber,
		validation.FieldEmail:         p.Email,
		validation.FieldGSTIN:         p.GSTIN,
		validation.FieldPAN:           p.PANNo,
		validation.FieldCIN:           p.CINNo,
		validation.FieldMSME:          p.MSMEID,
	})...)

	if p.Category != "" && !p.Category.IsValid() {
		errs.Add(shared.NewFormatError("category", "Invalid category."))
	}
	if p.PartyType != "" && !p.PartyType.IsValid() {
		errs.Add(shared.NewFormatError("partyType", "Party type must be Supplier, Customer or Both."))
	}
	if p.Status != "" && !p.Status.IsValid() {
		errs.Add(shared.NewFormatError("status", "Status must be Active or Inactive."))
	}
	if p.CreditLimit.IsNegative() {
		errs.Add(shared.NewFormatError("creditLimit", "Credit limit cannot be negative."))
	}

	return errs.Err()
}

// Prepare normalizes and validates the party ahead of a save.
// CreatedAt is kept when already set.
func (p *Party) Prepare(now time.Time) error {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return nil
}

// IsActive reports whether the party is active
func (p *Party) IsActive() bool {
	return p.Status == "" || p.Status == PartyStatusActive
}

// Matches reports whether term occurs in any searchable field
func (p *Party) Matches(term string) bool {
	return shared.MatchesSearch(term,
		p.PartyName,
		p.PartyCode,
		string(p.PartyType),
		p.ContactPerson,
		string(p.Category),
		p.ContactNumber,
		p.Email,
		p.GSTIN,
	)
}

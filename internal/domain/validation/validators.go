// Package validation holds the format rules for identifying fields on party,
// item and document records. Every function here is pure.
package validation

import (
	"regexp"
	"strings"

	"github.com/erp/mfgdesk/internal/domain/shared"
)

// Field names a validated record field. Values match the JSON field names.
type Field string

const (
	FieldCategory      Field = "category"
	FieldContactNumber Field = "contactNumber"
	FieldEmail         Field = "email"
	FieldGSTIN         Field = "gstin"
	FieldPAN           Field = "panNo"
	FieldCIN           Field = "cinNo"
	FieldMSME          Field = "msmeId"
	FieldHSNCode       Field = "hsnCode"
)

var (
	contactNumberPattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern         = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)
	gstinPattern         = regexp.MustCompile(`(?i)^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern           = regexp.MustCompile(`(?i)^[A-Z]{5}[0-9]{4}[A-Z]$`)
	cinPattern           = regexp.MustCompile(`(?i)^[LU]\d{5}[A-Z]{2}\d{4}[A-Z]{3}\d{6}$`)
	msmePattern          = regexp.MustCompile(`(?i)^UDYAM-[A-Z]{2}-\d{2}-\d{7}$`)
	hsnPattern           = regexp.MustCompile(`^\d{4,8}$`)
)

type rule struct {
	required bool
	pattern  *regexp.Regexp
	message  string
	missing  string
}

var rules = map[Field]rule{
	FieldCategory:      {required: true, message: "Category is required.", missing: "Category is required."},
	FieldContactNumber: {required: true, pattern: contactNumberPattern, message: "Contact number must be 10 digits.", missing: "Contact number is required."},
	FieldEmail:         {pattern: emailPattern, message: "Invalid email address."},
	FieldGSTIN:         {pattern: gstinPattern, message: "Invalid GSTIN."},
	FieldPAN:           {pattern: panPattern, message: "Invalid PAN number."},
	FieldCIN:           {pattern: cinPattern, message: "Invalid CIN number."},
	FieldMSME:          {pattern: msmePattern, message: "Invalid MSME ID."},
	FieldHSNCode:       {required: true, pattern: hsnPattern, message: "HSN Code must be between 4 and 8 digits.", missing: "HSN Code is required."},
}

// Fields returns every field that has a rule
func Fields() []Field {
	return []Field{
		FieldCategory, FieldContactNumber, FieldEmail, FieldGSTIN,
		FieldPAN, FieldCIN, FieldMSME, FieldHSNCode,
	}
}

// IsKnown reports whether a rule exists for field
func IsKnown(field Field) bool {
	_, ok := rules[field]
	return ok
}

// Validate checks value against the rule for field and returns nil when it is
// valid, or a *shared.FieldError with the message to show next to the field.
// An empty value counts as "not provided": it passes optional fields and fails
// required ones. Unknown fields always pass.
func Validate(field Field, value string) error {
	r, ok := rules[field]
	if !ok {
		return nil
	}
	value = strings.TrimSpace(value)
	if value == "" {
		if r.required {
			return shared.NewRequiredFieldError(string(field), r.missing)
		}
		return nil
	}
	if r.pattern != nil && !r.pattern.MatchString(value) {
		return shared.NewFormatError(string(field), r.message)
	}
	return nil
}

// ValidateAll checks every field in values. A failing field never stops the
// others from being checked. The result is ordered like Fields().
func ValidateAll(values map[Field]string) shared.FieldErrors {
	var errs shared.FieldErrors
	for _, f := range Fields() {
		v, ok := values[f]
		if !ok {
			continue
		}
		errs.Add(Validate(f, v))
	}
	return errs
}

// Matches reports whether a non-empty value satisfies the pattern of field.
// Used by request-binding tags where emptiness is handled by omitempty.
func Matches(field Field, value string) bool {
	r, ok := rules[field]
	if !ok || r.pattern == nil {
		return true
	}
	return r.pattern.MatchString(strings.TrimSpace(value))
}

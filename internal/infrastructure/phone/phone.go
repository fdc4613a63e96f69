// Package phone formats contact numbers for display and export.
package phone

import (
	"strings"

	"github.com/ttacon/libphonenumber"
)

// DefaultRegion is used to parse numbers stored without a country code
const DefaultRegion = "IN"

// Formatter converts stored contact numbers to E.164
type Formatter struct {
	region string
}

// NewFormatter creates a formatter for numbers local to region
func NewFormatter(region string) *Formatter {
	if region == "" {
		region = DefaultRegion
	}
	return &Formatter{region: strings.ToUpper(region)}
}

// E164 returns raw in E.164 form. ok is false when raw is not a valid
// number for the formatter's region.
func (f *Formatter) E164(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	num, err := libphonenumber.Parse(raw, f.region)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return "", false
	}
	return libphonenumber.Format(num, libphonenumber.E164), true
}

// Display returns the E.164 form of raw, or raw unchanged when it does not parse
func (f *Formatter) Display(raw string) string {
	if e164, ok := f.E164(raw); ok {
		return e164
	}
	return raw
}

package master

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ItemCodePrefix starts every generated item code
const ItemCodePrefix = "PA/IC"

const itemCodeDigits = 5

// FinancialYear returns the April-to-March financial year containing t,
// formatted as "2024-25".
func FinancialYear(t time.Time) string {
	start := t.Year()
	if t.Month() < time.April {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

// FormatItemCode returns PA/IC/<fy>/<seq zero-padded to five digits>
func FormatItemCode(fy string, seq int) string {
	return fmt.Sprintf("%s/%s/%0*d", ItemCodePrefix, fy, itemCodeDigits, seq)
}

// ParseItemCode extracts the financial year and sequence of a generated code.
// ok is false for codes not produced by FormatItemCode.
func ParseItemCode(code string) (fy string, seq int, ok bool) {
	rest, found := strings.CutPrefix(strings.TrimSpace(code), ItemCodePrefix+"/")
	if !found {
		return "", 0, false
	}
	fy, num, found := strings.Cut(rest, "/")
	if !found || fy == "" || num == "" {
		return "", 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return "", 0, false
	}
	return fy, n, true
}

// NextItemCode returns the code following the highest sequence among
// existing codes of the financial year containing now. Codes of other years
// and hand-entered codes are ignored, so numbering restarts every April.
func NextItemCode(existing []string, now time.Time) string {
	fy := FinancialYear(now)
	highest := 0
	for _, code := range existing {
		codeFY, seq, ok := ParseItemCode(code)
		if ok && codeFY == fy && seq > highest {
			highest = seq
		}
	}
	return FormatItemCode(fy, highest+1)
}

package csvimport

import (
	"errors"
	"fmt"
)

// Row error codes
const (
	CodeUnknownColumn = "UNKNOWN_COLUMN"
	CodeMalformedRow  = "MALFORMED_ROW"
	CodeInvalidValue  = "INVALID_VALUE"
)

var (
	ErrEmptyFile       = errors.New("CSV file is empty")
	ErrInvalidEncoding = errors.New("CSV file is not UTF-8")
	ErrMissingHeader   = errors.New("CSV file has no header row")
	ErrNoDataRows      = errors.New("CSV file contains no data rows")
	ErrTooManyRows     = errors.New("CSV file has too many rows")
)

// RowError reports one rejected cell or row. Row is the 1-based line number
// in the file, counting the header.
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("row %d, column %q: %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// ErrorCollection keeps the first max errors and counts the rest
type ErrorCollection struct {
	errors []RowError
	max    int
	total  int
}

// NewErrorCollection creates a collection; max <= 0 keeps 100
func NewErrorCollection(max int) *ErrorCollection {
	if max <= 0 {
		max = 100
	}
	return &ErrorCollection{max: max}
}

func (ec *ErrorCollection) Add(err RowError) {
	ec.total++
	if len(ec.errors) < ec.max {
		ec.errors = append(ec.errors, err)
	}
}

// Errors returns the kept errors; never nil
func (ec *ErrorCollection) Errors() []RowError {
	if ec.errors == nil {
		return []RowError{}
	}
	return ec.errors
}

func (ec *ErrorCollection) TotalCount() int { return ec.total }

func (ec *ErrorCollection) HasErrors() bool { return ec.total > 0 }

// IsTruncated reports whether errors were dropped past the limit
func (ec *ErrorCollection) IsTruncated() bool { return ec.total > ec.max }

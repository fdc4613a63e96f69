package shared

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error taxonomy codes shared by validators, the calculator and the store
const (
	CodeFormatError          = "FORMAT_ERROR"
	CodeRequiredFieldMissing = "REQUIRED_FIELD_MISSING"
	CodeEmptyLineItemList    = "EMPTY_LINE_ITEM_LIST"
	CodePersistenceFailure   = "PERSISTENCE_FAILURE"
)

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrEmptyLineItemList   = NewDomainError(CodeEmptyLineItemList, "Please add at least one item.")
)

// FieldError reports a single field that failed validation.
// Code is either CodeFormatError or CodeRequiredFieldMissing.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// IsRequired reports whether the field was rejected for being empty
func (e *FieldError) IsRequired() bool {
	return e.Code == CodeRequiredFieldMissing
}

// NewFormatError creates a FieldError for a value that does not match its pattern
func NewFormatError(field, message string) *FieldError {
	return &FieldError{Field: field, Code: CodeFormatError, Message: message}
}

// NewRequiredFieldError creates a FieldError for a missing required value
func NewRequiredFieldError(field, message string) *FieldError {
	if message == "" {
		message = fmt.Sprintf("%s is required.", field)
	}
	return &FieldError{Field: field, Code: CodeRequiredFieldMissing, Message: message}
}

// FieldErrors collects every failing field of a single submission
type FieldErrors []*FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Add appends err if it is a *FieldError or FieldErrors; nil is ignored
func (fe *FieldErrors) Add(err error) {
	if err == nil {
		return
	}
	var many FieldErrors
	if errors.As(err, &many) {
		*fe = append(*fe, many...)
		return
	}
	var one *FieldError
	if errors.As(err, &one) {
		*fe = append(*fe, one)
	}
}

// Err returns nil when no field failed, so callers can `return errs.Err()`
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Code returns REQUIRED_FIELD_MISSING when any required field is empty,
// FORMAT_ERROR otherwise.
func (fe FieldErrors) Code() string {
	for _, e := range fe {
		if e.IsRequired() {
			return CodeRequiredFieldMissing
		}
	}
	return CodeFormatError
}

// Lookup returns the error recorded for field, if any
func (fe FieldErrors) Lookup(field string) *FieldError {
	for _, e := range fe {
		if e.Field == field {
			return e
		}
	}
	return nil
}

// PersistenceError wraps a failure reported by the record store.
// The cause is kept for logging; callers show a generic message.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err unless it is nil or already a domain error
func NewPersistenceError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return &PersistenceError{Op: op, Path: path, Err: err}
}

// IsPersistenceFailure reports whether err came from the store
func IsPersistenceFailure(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// DuplicateKeyError reports a business key such as a party code that another
// record of the same bucket already uses. It matches ErrAlreadyExists.
type DuplicateKeyError struct {
	Field string
	Label string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s %s already exists.", e.Label, e.Value)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// NewDuplicateKeyError creates a DuplicateKeyError
func NewDuplicateKeyError(field, label, value string) *DuplicateKeyError {
	return &DuplicateKeyError{Field: field, Label: label, Value: value}
}

package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodePersistence is returned when the record store rejected a read or write
	ErrCodePersistence = "ERR_PERSISTENCE"
	// ErrCodeUnavailable is used when an optional backend is not configured
	ErrCodeUnavailable = "ERR_UNAVAILABLE"
	// ErrCodeBusy is used when a lock could not be obtained in time
	ErrCodeBusy = "ERR_BUSY"
)

// Validation error codes
const (
	// ErrCodeValidation is returned when a binding tag rejects a field
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
	// ErrCodeEmptyLineItems is used when a document is saved without items
	ErrCodeEmptyLineItems = "ERR_EMPTY_LINE_ITEMS"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	ErrCodeNotFound            = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists       = "ERR_ALREADY_EXISTS"
	ErrCodeConflict            = "ERR_CONFLICT"
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
	// ErrCodeDuplicateRequest is used when an Idempotency-Key is replayed
	ErrCodeDuplicateRequest = "ERR_DUPLICATE_REQUEST"
)

// Input error codes
const (
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
	ErrCodeTooLarge     = "ERR_REQUEST_TOO_LARGE"
)

// ErrCodeRateLimited is used when rate limit is exceeded
const ErrCodeRateLimited = "ERR_RATE_LIMITED"

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:     http.StatusInternalServerError,
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodePersistence: http.StatusInternalServerError,
	ErrCodeUnavailable: http.StatusServiceUnavailable,
	ErrCodeBusy:        http.StatusServiceUnavailable,

	// Field rule failures are 422; malformed bodies are ErrCodeInvalidJSON
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeValidationRequired: http.StatusUnprocessableEntity,
	ErrCodeValidationFormat:   http.StatusUnprocessableEntity,
	ErrCodeEmptyLineItems:     http.StatusUnprocessableEntity,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeDuplicateRequest:    http.StatusConflict,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	ErrCodeTooLarge:     http.StatusRequestEntityTooLarge,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":              ErrCodeNotFound,
	"ALREADY_EXISTS":         ErrCodeAlreadyExists,
	"INVALID_INPUT":          ErrCodeInvalidInput,
	"INVALID_PATH":           ErrCodeInvalidInput,
	"INVALID_SUBTYPE":        ErrCodeNotFound,
	"INVALID_KIND":           ErrCodeNotFound,
	"UNKNOWN_FIELD":          ErrCodeInvalidInput,
	"UNAUTHORIZED":           ErrCodeUnauthorized,
	"CONCURRENCY_CONFLICT":   ErrCodeConcurrencyConflict,
	"FORMAT_ERROR":           ErrCodeValidationFormat,
	"REQUIRED_FIELD_MISSING": ErrCodeValidationRequired,
	"EMPTY_LINE_ITEM_LIST":   ErrCodeEmptyLineItems,
	"PERSISTENCE_FAILURE":    ErrCodePersistence,
	"LOCK_NOT_OBTAINED":      ErrCodeBusy,
	"PRINTING_DISABLED":      ErrCodeUnavailable,
	"INVALID_IMPORT_FILE":    ErrCodeInvalidInput,
	"IMPORT_TOO_LARGE":       ErrCodeTooLarge,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Unknown codes are returned as-is.
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}

package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeAlreadyAssigned is used when a tenant already holds a lease
	ErrCodeAlreadyAssigned = "ERR_ALREADY_ASSIGNED"
	// ErrCodeNotAvailable is used when a property or unit is not vacant
	ErrCodeNotAvailable = "ERR_NOT_AVAILABLE"
	// ErrCodeUnitPropertyMismatch is used when a unit belongs to another property
	ErrCodeUnitPropertyMismatch = "ERR_UNIT_PROPERTY_MISMATCH"
	// ErrCodeAmountExceedsOutstanding is used when a payment overshoots an open balance
	ErrCodeAmountExceedsOutstanding = "ERR_AMOUNT_EXCEEDS_OUTSTANDING"
	// ErrCodeAmountExceedsRent is used when a payment overshoots the rent due
	ErrCodeAmountExceedsRent = "ERR_AMOUNT_EXCEEDS_RENT"
	// ErrCodeTenantNotAssigned is used when a ledger operation needs an active lease
	ErrCodeTenantNotAssigned = "ERR_TENANT_NOT_ASSIGNED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState:             http.StatusUnprocessableEntity,
	ErrCodeAlreadyAssigned:          http.StatusUnprocessableEntity,
	ErrCodeNotAvailable:             http.StatusUnprocessableEntity,
	ErrCodeUnitPropertyMismatch:     http.StatusUnprocessableEntity,
	ErrCodeAmountExceedsOutstanding: http.StatusUnprocessableEntity,
	ErrCodeAmountExceedsRent:        http.StatusUnprocessableEntity,
	ErrCodeTenantNotAssigned:        http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to the HTTP-facing codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":                  ErrCodeNotFound,
	"ALREADY_EXISTS":             ErrCodeAlreadyExists,
	"INVALID_INPUT":              ErrCodeInvalidInput,
	"INVALID_STATE":              ErrCodeInvalidState,
	"ALREADY_ASSIGNED":           ErrCodeAlreadyAssigned,
	"NOT_AVAILABLE":              ErrCodeNotAvailable,
	"UNIT_PROPERTY_MISMATCH":     ErrCodeUnitPropertyMismatch,
	"AMOUNT_EXCEEDS_OUTSTANDING": ErrCodeAmountExceedsOutstanding,
	"AMOUNT_EXCEEDS_RENT":        ErrCodeAmountExceedsRent,
	"TENANT_NOT_ASSIGNED":        ErrCodeTenantNotAssigned,

	// Field validation failures from the domain all map to invalid input
	"INVALID_TITLE":          ErrCodeInvalidInput,
	"INVALID_NAME":           ErrCodeInvalidInput,
	"INVALID_PROPERTY":       ErrCodeInvalidInput,
	"INVALID_PROPERTY_TYPE":  ErrCodeInvalidInput,
	"INVALID_LANDLORD":       ErrCodeInvalidInput,
	"INVALID_TENANT":         ErrCodeInvalidInput,
	"INVALID_PRICE":          ErrCodeInvalidInput,
	"INVALID_RENT":           ErrCodeInvalidInput,
	"INVALID_AMOUNT":         ErrCodeInvalidInput,
	"INVALID_PAYMENT_TYPE":   ErrCodeInvalidInput,
	"INVALID_PAYMENT_METHOD": ErrCodeInvalidInput,
	"INVALID_ENTRY_TYPE":     ErrCodeInvalidInput,
	"INVALID_LEASE_PERIOD":   ErrCodeInvalidInput,
	"INVALID_STATUS":         ErrCodeInvalidInput,
}

// NormalizeErrorCode converts a domain error code to the HTTP-facing format.
// Unknown codes are returned as-is.
func NormalizeErrorCode(code string) string {
	if mapped, ok := DomainErrorCodeMapping[code]; ok {
		return mapped
	}
	return code
}

package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{ErrCodeAlreadyAssigned, http.StatusUnprocessableEntity},
		{ErrCodeNotAvailable, http.StatusUnprocessableEntity},
		{ErrCodeUnitPropertyMismatch, http.StatusUnprocessableEntity},
		{ErrCodeAmountExceedsOutstanding, http.StatusUnprocessableEntity},
		{ErrCodeAmountExceedsRent, http.StatusUnprocessableEntity},
		{ErrCodeTenantNotAssigned, http.StatusUnprocessableEntity},
		{"ERR_SOMETHING_UNMAPPED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		domainCode string
		expected   string
	}{
		{"NOT_FOUND", ErrCodeNotFound},
		{"ALREADY_EXISTS", ErrCodeAlreadyExists},
		{"ALREADY_ASSIGNED", ErrCodeAlreadyAssigned},
		{"NOT_AVAILABLE", ErrCodeNotAvailable},
		{"UNIT_PROPERTY_MISMATCH", ErrCodeUnitPropertyMismatch},
		{"AMOUNT_EXCEEDS_OUTSTANDING", ErrCodeAmountExceedsOutstanding},
		{"AMOUNT_EXCEEDS_RENT", ErrCodeAmountExceedsRent},
		{"TENANT_NOT_ASSIGNED", ErrCodeTenantNotAssigned},
		{"INVALID_RENT", ErrCodeInvalidInput},
		{"INVALID_PAYMENT_METHOD", ErrCodeInvalidInput},
		{"INVALID_LEASE_PERIOD", ErrCodeInvalidInput},
		{"SOME_CUSTOM_CODE", "SOME_CUSTOM_CODE"},
	}

	for _, tt := range tests {
		t.Run(tt.domainCode, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.domainCode))
		})
	}
}

func TestNormalizedCodesHaveStatusMapping(t *testing.T) {
	// Every normalized code must resolve to a non-500 status, otherwise
	// business rule failures would surface as server errors.
	for domainCode, httpCode := range DomainErrorCodeMapping {
		status := GetHTTPStatus(httpCode)
		assert.NotEqual(t, http.StatusInternalServerError, status,
			"domain code %s maps to %s which has no HTTP status", domainCode, httpCode)
	}
}

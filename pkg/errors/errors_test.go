package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "WithoutCause",
			err:      NewValidationError("city cannot be empty"),
			expected: "VALIDATION_ERROR: city cannot be empty",
		},
		{
			name:     "WithCause",
			err:      NewTransportError("request failed", stderrors.New("connection refused")),
			expected: "TRANSPORT_ERROR: request failed (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewDatabaseError("write failed", cause)
	assert.Equal(t, cause, stderrors.Unwrap(err))

	assert.Nil(t, stderrors.Unwrap(NewNotFoundError("missing")))
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "VALIDATION_ERROR"},
		{ErrorTypeNotFound, "NOT_FOUND_ERROR"},
		{ErrorTypeTransport, "TRANSPORT_ERROR"},
		{ErrorTypeMalformedResponse, "MALFORMED_RESPONSE_ERROR"},
		{ErrorTypeDatabase, "DATABASE_ERROR"},
		{ErrorTypeConfiguration, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestErrorTypeCheckers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checker func(error) bool
		matches bool
	}{
		{name: "ValidationMatch", err: NewValidationError("bad"), checker: IsValidationError, matches: true},
		{name: "ValidationMismatch", err: NewNotFoundError("gone"), checker: IsValidationError, matches: false},
		{name: "NotFoundMatch", err: NewNotFoundError("gone"), checker: IsNotFoundError, matches: true},
		{name: "TransportMatch", err: NewTransportError("down", nil), checker: IsTransportError, matches: true},
		{name: "MalformedMatch", err: NewMalformedResponseError("bad json"), checker: IsMalformedResponseError, matches: true},
		{name: "DatabaseMatch", err: NewDatabaseError("query failed", nil), checker: IsDatabaseError, matches: true},
		{name: "ConfigurationMatch", err: NewConfigurationError("missing key", nil), checker: IsConfigurationError, matches: true},
		{name: "PlainError", err: stderrors.New("plain"), checker: IsValidationError, matches: false},
		{name: "NilError", err: nil, checker: IsNotFoundError, matches: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, tt.checker(tt.err))
		})
	}
}

func TestErrorTypeCheckers_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("get weather for city London: %w", NewNotFoundError("city not found"))
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsValidationError(wrapped))
}

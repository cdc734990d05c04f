package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal   ErrorCode = "INTERNAL_ERROR"
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeValidation ErrorCode = "VALIDATION_FAILED"

	// Model pipeline errors
	CodeConfiguration   ErrorCode = "CONFIGURATION_FAULT"
	CodeUpstream        ErrorCode = "UPSTREAM_FAULT"
	CodeMalformedOutput ErrorCode = "MALFORMED_OUTPUT"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches any DomainError carrying the same code, so sentinels like
// ErrUpstream can be used with errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Message == ""
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a key/value pair that is logged alongside the error.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Sentinels for errors.Is checks.
var (
	ErrConfiguration   = &DomainError{Code: CodeConfiguration}
	ErrUpstream        = &DomainError{Code: CodeUpstream}
	ErrMalformedOutput = &DomainError{Code: CodeMalformedOutput}
	ErrNotFound        = &DomainError{Code: CodeNotFound}
)

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewConfigurationError(message string) *DomainError {
	return NewError(CodeConfiguration, message, nil)
}

// NewUpstreamError wraps a failed or empty model call.
func NewUpstreamError(cause error) *DomainError {
	return NewError(CodeUpstream, "empty or failed model response", cause)
}

func NewMalformedOutputError(cause error) *DomainError {
	return NewError(CodeMalformedOutput, "Failed to generate structured quiz", cause)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches on Code and Message so wrapped copies created with WithCause still compare
// equal to the sentinel they came from.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// WithCause returns a copy of the error carrying an underlying cause.
func (e *DomainError) WithCause(err error) *DomainError {
	return &DomainError{Code: e.Code, Message: e.Message, Err: err}
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeMissingCredential = "MISSING_CREDENTIAL"
	ErrCodeUpstream          = "UPSTREAM_ERROR"
)

// Validation errors
var (
	ErrEmptyInput     = NewDomainError(ErrCodeValidation, "input cannot be empty")
	ErrTooFewProducts = NewDomainError(ErrCodeValidation, "at least two products are required for a comparison")
)

// Not found errors
var (
	ErrNoResults = NewDomainError(ErrCodeNotFound, "no results found")
)

// Credential errors
var (
	ErrMissingCredential = NewDomainError(ErrCodeMissingCredential, "credential not provided")
)

// Upstream errors
var (
	ErrSearchFailed = NewDomainError(ErrCodeUpstream, "search request failed")
	ErrLLMFailed    = NewDomainError(ErrCodeUpstream, "llm request failed")
)

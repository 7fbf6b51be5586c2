package errors

import (
	"net/http"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindBadRequest    ErrorKind = "bad_request"
	KindConfiguration ErrorKind = "configuration"
	KindProvider      ErrorKind = "provider"
	KindNotFound      ErrorKind = "not_found"
	KindInternal      ErrorKind = "internal"
)

// APIError is the uniform error body: {"error": message} plus its kind and
// the request id.
type APIError struct {
	Message   string    `json:"error"`
	Kind      ErrorKind `json:"kind"`
	Code      string    `json:"code,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind.
// Provider outages and unusable provider output share the same status.
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewBadRequestError creates a client error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewConfigurationError creates an error for missing server configuration
func NewConfigurationError(message string) *APIError {
	return &APIError{
		Kind:    KindConfiguration,
		Message: message,
	}
}

// NewProviderError creates an error for a failed or unusable provider call
func NewProviderError(message, code string) *APIError {
	return &APIError{
		Kind:    KindProvider,
		Message: message,
		Code:    code,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(message string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

package provider

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when a provider is used without an API key.
var ErrMissingCredential = errors.New("missing credential")

// Error represents a provider-specific failure.
type Error struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Provider  string `json:"provider"`
	Retryable bool   `json:"retryable"`
	Err       error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a provider error wrapping cause.
func NewError(provider, code, message string, retryable bool, cause error) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Provider:  provider,
		Retryable: retryable,
		Err:       cause,
	}
}

// ErrorCode extracts the provider error code, or "unknown".
func ErrorCode(err error) string {
	var perr *Error
	if errors.As(err, &perr) && perr.Code != "" {
		return perr.Code
	}
	return "unknown"
}

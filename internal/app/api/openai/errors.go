package openai

import (
	"context"
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"talkscript/internal/app/api/provider"
)

// handleAPIError converts OpenAI client errors to provider errors.
func handleAPIError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return provider.NewError(ProviderName, "canceled", "OpenAI request canceled", false, err)
	}

	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case 0:
		return provider.NewError(ProviderName, "request_failed", "OpenAI request failed", true, err)
	case http.StatusUnauthorized:
		return provider.NewError(ProviderName, "authentication_failed", "OpenAI API key is invalid or missing", false, err)
	case http.StatusTooManyRequests:
		return provider.NewError(ProviderName, "rate_limit_exceeded", "OpenAI API rate limit exceeded", true, err)
	case http.StatusRequestEntityTooLarge:
		return provider.NewError(ProviderName, "file_too_large", "Audio file is too large for OpenAI API", false, err)
	case http.StatusBadRequest:
		return provider.NewError(ProviderName, "invalid_request", "OpenAI API rejected the request", false, err)
	default:
		return provider.NewError(ProviderName, "api_error", "OpenAI API error", status >= 500, err)
	}
}

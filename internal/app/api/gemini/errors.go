package gemini

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/genai"
	"talkscript/internal/app/api/provider"
)

func handleAPIError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return provider.NewError(ProviderName, "canceled", "Gemini request canceled", false, err)
	}

	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	status := 0
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Code
	case errors.As(err, &apiErrPtr):
		status = apiErrPtr.Code
	}

	switch {
	case status == 0:
		return provider.NewError(ProviderName, "request_failed", "Gemini request failed", true, err)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return provider.NewError(ProviderName, "authentication_failed", "Gemini API key is invalid or missing", false, err)
	case status == http.StatusTooManyRequests:
		return provider.NewError(ProviderName, "rate_limit_exceeded", "Gemini API rate limit exceeded", true, err)
	case status == http.StatusBadRequest:
		return provider.NewError(ProviderName, "invalid_request", "Gemini API rejected the request", false, err)
	default:
		return provider.NewError(ProviderName, "api_error", "Gemini API error", status >= 500, err)
	}
}

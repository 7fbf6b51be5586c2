package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_HTTPStatus(t *testing.T) {
	tests := []struct {
		err      *APIError
		expected int
	}{
		{NewBadRequestError("missing file"), http.StatusBadRequest},
		{NewConfigurationError("missing credential"), http.StatusInternalServerError},
		{NewProviderError("invalid shape", "invalid_shape"), http.StatusInternalServerError},
		{NewNotFoundError("nothing here"), http.StatusNotFound},
		{NewInternalError("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Kind), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.HTTPStatus())
			assert.Equal(t, tt.err.Message, tt.err.Error())
		})
	}
}

func TestAPIError_JSON(t *testing.T) {
	err := NewProviderError("empty response", "empty_response")
	err.RequestID = "req-1"

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var body map[string]string
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "empty response", body["error"])
	assert.Equal(t, "provider", body["kind"])
	assert.Equal(t, "empty_response", body["code"])
	assert.Equal(t, "req-1", body["request_id"])
}

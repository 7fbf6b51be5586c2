// Package client implements session backends: one that calls a running
// talkscript server over HTTP and one that calls the services in process.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"talkscript/internal/app/api/provider"
	"talkscript/internal/app/script"
)

// DefaultTimeout bounds a single round trip; transcription of long audio is
// the slow case.
const DefaultTimeout = 5 * time.Minute

// ResponseError is a non-2xx answer from the server.
type ResponseError struct {
	StatusCode int
	Message    string
	Kind       string
	RequestID  string
}

func (e *ResponseError) Error() string {
	return e.Message
}

// HTTPBackend calls /api/transcribe and /api/generate-script on a server.
type HTTPBackend struct {
	baseURL string
	client  *http.Client
}

// NewHTTPBackend creates a backend for the server at baseURL. A nil client
// gets DefaultTimeout.
func NewHTTPBackend(baseURL string, client *http.Client) *HTTPBackend {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Transcribe uploads the audio as multipart field "file".
func (b *HTTPBackend) Transcribe(ctx context.Context, audio provider.Audio) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", audio.Filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(audio.Data); err != nil {
		return "", fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := b.do(ctx, "/api/transcribe", writer.FormDataContentType(), body, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

// GenerateScript posts {"text": text}.
func (b *HTTPBackend) GenerateScript(ctx context.Context, text string) (*script.Document, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	var doc script.Document
	if err := b.do(ctx, "/api/generate-script", "application/json", bytes.NewReader(payload), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (b *HTTPBackend) do(ctx context.Context, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func decodeError(status int, data []byte) error {
	var body struct {
		Error     string `json:"error"`
		Kind      string `json:"kind"`
		RequestID string `json:"request_id"`
	}
	respErr := &ResponseError{StatusCode: status}
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		respErr.Message = body.Error
		respErr.Kind = body.Kind
		respErr.RequestID = body.RequestID
	} else {
		respErr.Message = fmt.Sprintf("server returned status %d", status)
	}
	return respErr
}

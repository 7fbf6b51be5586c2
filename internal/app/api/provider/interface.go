package provider

import (
	"context"
	"net/http"
)

// Audio is an uploaded audio file as received from the client.
type Audio struct {
	Filename string
	Data     []byte
}

// Transcriber converts audio into plain text in the given language.
type Transcriber interface {
	Transcribe(ctx context.Context, audio Audio, language string) (string, error)
}

// JSONGenerator sends a system instruction and user text to a chat model
// constrained to JSON output and returns the raw content string.
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, systemPrompt, userText string) (string, error)
}

// Provider is an external AI service offering both capabilities.
type Provider interface {
	Transcriber
	JSONGenerator

	// Name identifies the provider in logs, metrics and errors.
	Name() string

	// Configured reports whether a credential is present. Handlers check it
	// on every request rather than once at startup.
	Configured() bool
}

// Options carries everything a provider creator needs.
type Options struct {
	APIKey             string
	BaseURL            string
	TranscriptionModel string
	ChatModel          string
	HTTPClient         *http.Client
}

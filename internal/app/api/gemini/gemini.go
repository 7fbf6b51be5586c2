// Package gemini adapts the Google Gemini API to the provider interfaces.
package gemini

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
	"talkscript/internal/app/api/provider"
)

// ProviderName is the registry kind and metrics label of this provider.
const ProviderName = "gemini"

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

const transcribeInstruction = "Transcribe this audio verbatim as plain text in language %q. Output only the transcription."

var audioMIMETypes = map[string]string{
	".mp3":  "audio/mpeg",
	".mpeg": "audio/mpeg",
	".mpga": "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".mp4":  "audio/mp4",
	".webm": "audio/webm",
}

func init() {
	provider.RegisterProvider(ProviderName, func(opts provider.Options) (provider.Provider, error) {
		return NewProvider(context.Background(), opts)
	})
}

// Provider implements provider.Provider with the genai SDK.
type Provider struct {
	client *genai.Client
	model  string
}

// NewProvider creates the Gemini provider. Without an API key no client is
// built and Configured reports false.
func NewProvider(ctx context.Context, opts provider.Options) (*Provider, error) {
	p := &Provider{model: opts.ChatModel}
	if p.model == "" {
		p.model = DefaultModel
	}
	if opts.APIKey == "" {
		return p, nil
	}

	cc := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	p.client = client
	return p, nil
}

// Name implements provider.Provider.
func (p *Provider) Name() string {
	return ProviderName
}

// Configured implements provider.Provider.
func (p *Provider) Configured() bool {
	return p.client != nil
}

// GenerateJSON implements provider.JSONGenerator using a JSON response MIME type.
func (p *Provider) GenerateJSON(ctx context.Context, systemPrompt, userText string) (string, error) {
	if p.client == nil {
		return "", provider.NewError(ProviderName, "missing_credential", "Gemini API key not configured", false, provider.ErrMissingCredential)
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(userText), config)
	if err != nil {
		return "", handleAPIError(err)
	}
	return resp.Text(), nil
}

// Transcribe implements provider.Transcriber by sending the audio inline.
func (p *Provider) Transcribe(ctx context.Context, audio provider.Audio, language string) (string, error) {
	if p.client == nil {
		return "", provider.NewError(ProviderName, "missing_credential", "Gemini API key not configured", false, provider.ErrMissingCredential)
	}
	if len(audio.Data) == 0 {
		return "", provider.NewError(ProviderName, "invalid_input", "audio file is empty", false, nil)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(fmt.Sprintf(transcribeInstruction, language)),
		genai.NewPartFromBytes(audio.Data, audioMIMEType(audio.Filename)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, nil)
	if err != nil {
		return "", handleAPIError(err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

func audioMIMEType(filename string) string {
	if mimeType, ok := audioMIMETypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return mimeType
	}
	return "application/octet-stream"
}

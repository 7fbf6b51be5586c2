// Package openai adapts the OpenAI API (Whisper transcription and chat
// completions) to the provider interfaces.
package openai

import (
	"github.com/sashabaranov/go-openai"
	"talkscript/internal/app/api/provider"
)

// ProviderName is the registry kind and metrics label of this provider.
const ProviderName = "openai"

func init() {
	provider.RegisterProvider(ProviderName, func(opts provider.Options) (provider.Provider, error) {
		return NewProvider(opts), nil
	})
}

// NewClient builds a go-openai client from provider options.
func NewClient(opts provider.Options) *openai.Client {
	config := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		config.BaseURL = opts.BaseURL
	}
	if opts.HTTPClient != nil {
		config.HTTPClient = opts.HTTPClient
	}
	return openai.NewClientWithConfig(config)
}

// Provider implements provider.Provider on top of the OpenAI API.
type Provider struct {
	*RemoteTranscriber
	*JSONChat
	configured bool
}

// NewProvider creates the OpenAI provider. An empty API key yields a
// provider whose Configured method reports false.
func NewProvider(opts provider.Options) *Provider {
	client := NewClient(opts)
	return &Provider{
		RemoteTranscriber: NewRemoteTranscriber(client, opts.TranscriptionModel),
		JSONChat:          NewJSONChat(client, opts.ChatModel),
		configured:        opts.APIKey != "",
	}
}

// Name implements provider.Provider.
func (p *Provider) Name() string {
	return ProviderName
}

// Configured implements provider.Provider.
func (p *Provider) Configured() bool {
	return p.configured
}

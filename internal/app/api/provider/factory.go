package provider

import (
	"fmt"

	"talkscript/internal/config"
)

// NewFromSettings builds the provider selected by settings.Provider.Kind.
// A missing API key does not fail construction; the provider reports
// Configured() == false instead.
func NewFromSettings(settings *config.Settings, keys *config.APIKeys) (Provider, error) {
	kind := settings.Provider.Kind
	creator, err := GetProviderCreator(kind)
	if err != nil {
		return nil, err
	}

	opts := Options{APIKey: keys.For(kind)}
	switch kind {
	case config.ProviderOpenAI:
		opts.BaseURL = settings.Provider.OpenAI.BaseURL
		opts.TranscriptionModel = settings.Provider.OpenAI.TranscriptionModel
		opts.ChatModel = settings.Provider.OpenAI.ChatModel
	case config.ProviderGemini:
		opts.BaseURL = settings.Provider.Gemini.BaseURL
		opts.TranscriptionModel = settings.Provider.Gemini.Model
		opts.ChatModel = settings.Provider.Gemini.Model
	}

	p, err := creator(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", kind, err)
	}
	return p, nil
}

package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"talkscript/internal/api/services"
	"talkscript/internal/app/api/provider"
	"talkscript/internal/config"

	// Register provider creators
	_ "talkscript/internal/app/api/gemini"
	_ "talkscript/internal/app/api/openai"
)

// provideProvider builds the configured provider once; handlers share it.
func provideProvider(settings *config.Settings, keys *config.APIKeys) (provider.Provider, error) {
	return provider.NewFromSettings(settings, keys)
}

// provideRegistry gives each server its own registry with runtime collectors.
func provideRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func provideTranscriptionService(settings *config.Settings, p provider.Provider, logger *zap.Logger) services.TranscriptionService {
	return services.NewTranscriptionService(p, settings.Provider.Language, logger)
}

func provideScriptService(settings *config.Settings, p provider.Provider, logger *zap.Logger) services.ScriptService {
	return services.NewScriptService(p, settings.Script.SystemPrompt, logger)
}

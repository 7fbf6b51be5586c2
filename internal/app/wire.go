//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"
	"talkscript/internal/api/server"
	"talkscript/internal/app/client"
	"talkscript/internal/config"
)

// InitializeServer wires the HTTP server for the configured provider.
func InitializeServer(settings *config.Settings, keys *config.APIKeys, logger *zap.Logger) (*server.Server, error) {
	wire.Build(provideProvider, provideRegistry, server.NewServer)
	return &server.Server{}, nil
}

// InitializeLocalBackend wires an in-process session backend for the CLI.
func InitializeLocalBackend(settings *config.Settings, keys *config.APIKeys, logger *zap.Logger) (*client.LocalBackend, error) {
	wire.Build(provideProvider, provideTranscriptionService, provideScriptService, client.NewLocalBackend)
	return &client.LocalBackend{}, nil
}

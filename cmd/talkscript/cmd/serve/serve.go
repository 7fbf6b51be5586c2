package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"talkscript/internal/app"
	"talkscript/internal/app/logging"
	"talkscript/internal/config"
)

var (
	configPath      string
	host            string
	port            string
	shutdownTimeout time.Duration
)

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "settings file (default "+config.DefaultSettingsPath+" if present)")
	Cmd.Flags().StringVar(&host, "host", "", "listen host (overrides settings)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides settings)")
	Cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "graceful shutdown timeout")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and browser UI",
	Long: `Run the HTTP API and browser UI.

Endpoints:
- POST /api/transcribe       multipart field "file"
- POST /api/generate-script  {"text": "..."}
- GET  /health, /metrics, /swagger/index.html, /`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("host") {
			settings.Server.Host = host
		}
		if cmd.Flags().Changed("port") {
			settings.Server.Port = port
		}

		logger, err := logging.ForEnvironment(settings.Server.Environment)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		keys := config.GetAPIKeys()
		if err := keys.Validate(); err != nil {
			logger.Warn("API key looks malformed", zap.Error(err))
		}
		if keys.For(settings.Provider.Kind) == "" {
			logger.Warn("No API key for the selected provider; requests will fail with missing credential",
				zap.String("provider", settings.Provider.Kind),
				zap.Strings("available", keys.Available()),
			)
		}

		srv, err := app.InitializeServer(settings, keys, logger)
		if err != nil {
			return err
		}
		if err := srv.Start(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
		case err, ok := <-srv.Errors():
			if ok && err != nil {
				return err
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

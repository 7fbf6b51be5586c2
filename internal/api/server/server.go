package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	_ "talkscript/docs" // Generated swagger docs
	"talkscript/internal/api/errors"
	"talkscript/internal/api/handlers"
	"talkscript/internal/api/middleware"
	"talkscript/internal/api/routes"
	"talkscript/internal/api/services"
	"talkscript/internal/app/api/provider"
	"talkscript/internal/config"
	"talkscript/web"
	webhandlers "talkscript/web/handlers"
)

// Config represents API server configuration
type Config struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	Environment    string
	MaxUploadBytes int64
	AllowOrigins   []string
}

// ConfigFromSettings maps loaded settings onto the server config.
func ConfigFromSettings(s *config.ServerSettings) Config {
	return Config{
		Host:           s.Host,
		Port:           s.Port,
		ReadTimeout:    s.ReadTimeout,
		WriteTimeout:   s.WriteTimeout,
		IdleTimeout:    s.IdleTimeout,
		Environment:    s.Environment,
		MaxUploadBytes: s.MaxUploadBytes,
		AllowOrigins:   s.AllowOrigins,
	}
}

// Server represents the API server
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
	errCh      chan error
}

// NewServer creates a new API server. The provider is shared by every
// request; it is instrumented with metrics registered on registry.
func NewServer(
	settings *config.Settings,
	p provider.Provider,
	registry *prometheus.Registry,
	logger *zap.Logger,
) *Server {
	cfg := ConfigFromSettings(&settings.Server)

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Metrics(middleware.NewHTTPMetrics(registry)))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.AllowOrigins)))

	router.GET("/health", handlers.Health(p.Name()))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	instrumented := provider.Instrument(p, provider.NewMetrics(registry))
	container := &routes.ServiceContainer{
		TranscriptionService: services.NewTranscriptionService(instrumented, settings.Provider.Language, logger),
		ScriptService:        services.NewScriptService(instrumented, settings.Script.SystemPrompt, logger),
		MaxUploadBytes:       cfg.MaxUploadBytes,
		SummaryLabel:         settings.Script.SummaryLabel,
	}

	api := router.Group("/api")
	routes.RegisterRoutes(api, container)

	// Swagger documentation routes
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Browser UI
	static := webhandlers.NewStaticHandler(web.Static())
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			middleware.HandleError(c, errors.NewNotFoundError("route not found: "+c.Request.URL.Path))
			return
		}
		static.ServeStatic(c)
	})

	httpServer := &http.Server{
		Addr:         cfg.Host + ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		config:     cfg,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
		errCh:      make(chan error, 1),
	}
}

// Start starts the API server in the background. Listen failures are
// reported on Errors.
func (s *Server) Start() error {
	s.logger.Info("Starting API server",
		zap.String("host", s.config.Host),
		zap.String("port", s.config.Port),
		zap.String("environment", s.config.Environment),
	)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Failed to start server", zap.Error(err))
			s.errCh <- err
		}
		close(s.errCh)
	}()

	s.logger.Info("API server started successfully",
		zap.String("address", s.httpServer.Addr),
	)

	return nil
}

// Errors delivers a listen failure, if any, and is closed when the
// listener stops.
func (s *Server) Errors() <-chan error {
	return s.errCh
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}

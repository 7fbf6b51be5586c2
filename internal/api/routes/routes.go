package routes

import (
	"github.com/gin-gonic/gin"
	"talkscript/internal/api/handlers"
	"talkscript/internal/api/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	ScriptService        services.ScriptService
	MaxUploadBytes       int64
	SummaryLabel         string
}

// RegisterRoutes registers the API endpoints under router
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService, container.MaxUploadBytes)
	router.POST("/transcribe", transcriptionHandler.Transcribe)

	scriptHandler := handlers.NewScriptHandler(container.ScriptService)
	router.POST("/generate-script", scriptHandler.Generate)

	router.GET("/config", handlers.UIConfig(container.SummaryLabel))
}

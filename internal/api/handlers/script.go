package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"talkscript/internal/api/dto"
	"talkscript/internal/api/middleware"
	"talkscript/internal/api/services"
)

// ScriptHandler handles POST /api/generate-script
type ScriptHandler struct {
	service services.ScriptService
}

// NewScriptHandler creates a new script handler
func NewScriptHandler(service services.ScriptService) *ScriptHandler {
	return &ScriptHandler{service: service}
}

// Generate handles POST /api/generate-script
//
// @Summary Generate a talk script
// @Description Sends the transcription to the chat model and returns a validated script document
// @Tags script
// @Accept json
// @Produce json
// @Param request body dto.GenerateScriptRequest true "Transcription text"
// @Success 200 {object} script.Document "Generated talk script"
// @Failure 400 {object} errors.APIError "Missing text"
// @Failure 500 {object} errors.APIError "Missing credential, provider failure or unusable output"
// @Router /generate-script [post]
func (h *ScriptHandler) Generate(c *gin.Context) {
	if err := h.service.Ready(); err != nil {
		middleware.HandleError(c, err)
		return
	}

	var req dto.GenerateScriptRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	doc, err := h.service.GenerateScript(c.Request.Context(), req.Text)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

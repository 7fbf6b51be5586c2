package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"talkscript/internal/api/dto"
)

// UIConfig handles GET /api/config
//
// @Summary Browser UI settings
// @Description Returns the display settings the embedded page needs to format a script
// @Tags ui
// @Produce json
// @Success 200 {object} dto.UIConfigResponse "UI settings"
// @Router /config [get]
func UIConfig(summaryLabel string) gin.HandlerFunc {
	response := dto.UIConfigResponse{SummaryLabel: summaryLabel}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response)
	}
}

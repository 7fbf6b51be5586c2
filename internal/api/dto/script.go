package dto

import (
	"strings"

	"talkscript/internal/api/errors"
)

// GenerateScriptRequest is the body of POST /api/generate-script.
type GenerateScriptRequest struct {
	Text string `json:"text" binding:"required" example:"今日は会議の議事録です。予算について話しました。"`
}

// Validate rejects whitespace-only text.
func (r *GenerateScriptRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.NewBadRequestError("missing text")
	}
	return nil
}

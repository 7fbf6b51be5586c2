package handlers

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"talkscript/internal/api/errors"
	"talkscript/internal/api/middleware"
	"talkscript/internal/api/services"
	"talkscript/internal/app/api/provider"
)

// multipartOverhead is the allowance for form framing on top of the file limit.
const multipartOverhead = 1 << 20

// TranscriptionHandler handles POST /api/transcribe
type TranscriptionHandler struct {
	service        services.TranscriptionService
	maxUploadBytes int64
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService, maxUploadBytes int64) *TranscriptionHandler {
	return &TranscriptionHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

// Transcribe handles POST /api/transcribe
//
// @Summary Transcribe an audio file
// @Description Forwards the uploaded audio to the speech-to-text provider and returns plain text
// @Tags transcription
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file to transcribe"
// @Success 200 {object} dto.TranscriptionResponse "Transcribed text"
// @Failure 400 {object} errors.APIError "Missing or oversized file"
// @Failure 500 {object} errors.APIError "Missing credential or provider failure"
// @Router /transcribe [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	// Credential is checked before the body is touched
	if err := h.service.Ready(); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			middleware.HandleError(c, errors.NewBadRequestError("file too large"))
			return
		}
		middleware.HandleError(c, errors.NewBadRequestError("missing file"))
		return
	}
	defer file.Close()

	if h.maxUploadBytes > 0 && header.Size > h.maxUploadBytes {
		middleware.HandleError(c, errors.NewBadRequestError("file too large"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("failed to read file"))
		return
	}

	response, err := h.service.Transcribe(c.Request.Context(), provider.Audio{
		Filename: header.Filename,
		Data:     data,
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

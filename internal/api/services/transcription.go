package services

import (
	"context"

	"go.uber.org/zap"
	"talkscript/internal/api/dto"
	"talkscript/internal/api/errors"
	"talkscript/internal/app/api/provider"
)

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	provider provider.Provider
	language string
	logger   *zap.Logger
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(p provider.Provider, language string, logger *zap.Logger) *TranscriptionServiceImpl {
	return &TranscriptionServiceImpl{
		provider: p,
		language: language,
		logger:   logger,
	}
}

// Ready implements TranscriptionService.
func (s *TranscriptionServiceImpl) Ready() error {
	return checkCredential(s.provider)
}

// Transcribe forwards the audio to the provider. Failures are not retried.
func (s *TranscriptionServiceImpl) Transcribe(ctx context.Context, audio provider.Audio) (*dto.TranscriptionResponse, error) {
	text, err := s.provider.Transcribe(ctx, audio, s.language)
	if err != nil {
		s.logger.Error("Transcription error",
			zap.String("provider", s.provider.Name()),
			zap.String("filename", audio.Filename),
			zap.Int("size", len(audio.Data)),
			zap.Error(err),
		)
		return nil, errors.NewProviderError(err.Error(), provider.ErrorCode(err))
	}

	return &dto.TranscriptionResponse{Text: text}, nil
}

func checkCredential(p provider.Provider) error {
	if !p.Configured() {
		return errors.NewConfigurationError(provider.ErrMissingCredential.Error())
	}
	return nil
}

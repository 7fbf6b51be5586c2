package services

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"
	"talkscript/internal/api/errors"
	"talkscript/internal/app/api/provider"
	"talkscript/internal/app/script"
)

// ScriptServiceImpl implements ScriptService
type ScriptServiceImpl struct {
	provider     provider.Provider
	systemPrompt string
	logger       *zap.Logger
}

// NewScriptService creates a new script generation service
func NewScriptService(p provider.Provider, systemPrompt string, logger *zap.Logger) *ScriptServiceImpl {
	return &ScriptServiceImpl{
		provider:     p,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

// Ready implements ScriptService.
func (s *ScriptServiceImpl) Ready() error {
	return checkCredential(s.provider)
}

// GenerateScript asks the provider for JSON and validates it into a Document.
func (s *ScriptServiceImpl) GenerateScript(ctx context.Context, text string) (*script.Document, error) {
	content, err := s.provider.GenerateJSON(ctx, s.systemPrompt, text)
	if err != nil {
		s.logger.Error("Script generation error",
			zap.String("provider", s.provider.Name()),
			zap.Error(err),
		)
		return nil, errors.NewProviderError(err.Error(), provider.ErrorCode(err))
	}

	doc, err := script.Parse(content)
	if err != nil {
		s.logger.Error("Script generation returned unusable content",
			zap.String("provider", s.provider.Name()),
			zap.Int("content_length", len(content)),
			zap.Error(err),
		)
		return nil, errors.NewProviderError(err.Error(), parseErrorCode(err))
	}

	return doc, nil
}

func parseErrorCode(err error) string {
	switch {
	case stderrors.Is(err, script.ErrEmptyResponse):
		return "empty_response"
	case stderrors.Is(err, script.ErrMalformed):
		return "malformed_json"
	case stderrors.Is(err, script.ErrInvalidShape):
		return "invalid_shape"
	default:
		return "unknown"
	}
}

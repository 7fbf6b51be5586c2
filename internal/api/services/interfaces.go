package services

import (
	"context"

	"talkscript/internal/api/dto"
	"talkscript/internal/app/api/provider"
	"talkscript/internal/app/script"
)

// TranscriptionService turns uploaded audio into text.
type TranscriptionService interface {
	// Ready fails with a configuration error when no credential is set.
	Ready() error
	Transcribe(ctx context.Context, audio provider.Audio) (*dto.TranscriptionResponse, error)
}

// ScriptService turns transcription text into a talk script.
type ScriptService interface {
	// Ready fails with a configuration error when no credential is set.
	Ready() error
	GenerateScript(ctx context.Context, text string) (*script.Document, error)
}

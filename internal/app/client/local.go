package client

import (
	"context"

	"talkscript/internal/api/services"
	"talkscript/internal/app/api/provider"
	"talkscript/internal/app/script"
)

// LocalBackend calls the API services directly, without a server.
type LocalBackend struct {
	transcription services.TranscriptionService
	script        services.ScriptService
}

// NewLocalBackend creates an in-process backend.
func NewLocalBackend(transcription services.TranscriptionService, script services.ScriptService) *LocalBackend {
	return &LocalBackend{transcription: transcription, script: script}
}

func (b *LocalBackend) Transcribe(ctx context.Context, audio provider.Audio) (string, error) {
	if err := b.transcription.Ready(); err != nil {
		return "", err
	}
	resp, err := b.transcription.Transcribe(ctx, audio)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (b *LocalBackend) GenerateScript(ctx context.Context, text string) (*script.Document, error) {
	if err := b.script.Ready(); err != nil {
		return nil, err
	}
	return b.script.GenerateScript(ctx, text)
}

package openai

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/sashabaranov/go-openai"
	"talkscript/internal/app/api/provider"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, model string) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, model: model}
}

// Transcribe sends the raw audio bytes to the transcription endpoint with a
// fixed language and returns the plain text.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, audio provider.Audio, language string) (string, error) {
	if len(audio.Data) == 0 {
		return "", provider.NewError(ProviderName, "invalid_input", "audio file is empty", false, nil)
	}

	filename := filepath.Base(audio.Filename)
	if filename == "." || filename == string(filepath.Separator) {
		filename = "audio"
	}

	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: filename,
		Reader:   bytes.NewReader(audio.Data),
		Language: language,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", handleAPIError(err)
	}

	return resp.Text, nil
}

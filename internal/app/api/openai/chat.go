package openai

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// JSONChat requests chat completions constrained to a JSON object.
type JSONChat struct {
	client *openai.Client
	model  string
}

// NewJSONChat creates a chat completer for the given model.
func NewJSONChat(client *openai.Client, model string) *JSONChat {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &JSONChat{client: client, model: model}
}

// GenerateJSON sends the system instruction and the user text and returns
// the content of the first choice. An empty string means no content.
func (c *JSONChat) GenerateJSON(ctx context.Context, systemPrompt, userText string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userText,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", handleAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

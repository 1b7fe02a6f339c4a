package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITextClient is the alternate completion provider behind the same seam.
type OpenAITextClient struct {
	client *openai.Client
	model  string
	cfg    DecodingConfig
}

func NewOpenAITextClient(apiKey, model string, cfg DecodingConfig) TextClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITextClient{
		client: openai.NewClient(apiKey),
		model:  model,
		cfg:    cfg,
	}
}

func (c *OpenAITextClient) CompleteItinerary(ctx context.Context, prompt string) (string, error) {
	// TopK is not exposed by the chat completions API.
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.cfg.Temperature,
		TopP:        c.cfg.TopP,
		MaxTokens:   int(c.cfg.MaxOutputTokens),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", ErrCompletionFailed, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: no content generated", ErrCompletionFailed)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAITextClient) Close() error {
	return nil
}

package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiTextClient implements TextClientInterface over Google's Gemini models.
type GeminiTextClient struct {
	client *genai.Client
	model  string
	cfg    DecodingConfig
}

func NewGeminiTextClient(apiKey, model string, cfg DecodingConfig) (TextClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextClient{
		client: client,
		model:  model,
		cfg:    cfg,
	}, nil
}

func (c *GeminiTextClient) CompleteItinerary(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(c.cfg.Temperature)
	m.SetTopP(c.cfg.TopP)
	m.SetTopK(c.cfg.TopK)
	m.SetMaxOutputTokens(c.cfg.MaxOutputTokens)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrCompletionFailed, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content generated", ErrCompletionFailed)
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiTextClient) Close() error {
	return c.client.Close()
}

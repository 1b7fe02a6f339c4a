package utils

import (
	"context"
	"fmt"
	"strings"
)

// TextClientInterface is the single seam to the hosted completion endpoint.
// Implementations convert every transport or HTTP failure into an error
// return; retries belong to the caller.
type TextClientInterface interface {
	CompleteItinerary(ctx context.Context, prompt string) (string, error)
	Close() error
}

// DecodingConfig carries the decoding parameters. They are read once at
// process start and never renegotiated per call.
type DecodingConfig struct {
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}

// NewTextClient builds the configured provider client.
func NewTextClient(provider, apiKey, model string, cfg DecodingConfig) (TextClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextClient(apiKey, model, cfg), nil
	case "gemini":
		return NewGeminiTextClient(apiKey, model, cfg)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

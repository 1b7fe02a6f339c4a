package ai_fx

import (
	"log"
	"os"
	"strconv"
	"strings"

	"safar/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	ProvideTextClient)

// ProvideTextClient builds the completion client from environment variables.
// Provider, model and decoding parameters are read once here and fixed for
// the process lifetime.
func ProvideTextClient() (utils.TextClientInterface, error) {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	cfg := utils.DecodingConfig{
		Temperature:     envFloat32("AI_TEMPERATURE", 0.8),
		TopP:            envFloat32("AI_TOP_P", 0.95),
		TopK:            envInt32("AI_TOP_K", 40),
		MaxOutputTokens: envInt32("AI_MAX_OUTPUT_TOKENS", 8192),
	}

	log.Printf("Initializing %s text client with model: %s", provider, model)
	return utils.NewTextClient(provider, apiKey, model, cfg)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(f)
		}
	}
	return defaultValue
}

func envInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(n)
		}
	}
	return defaultValue
}

package llm

import (
	"os"
	"strconv"
)

type Config struct {
	// Sampling settings for insight generation. The chat model itself is
	// configured on the Cohere provider.
	Temperature float64
	MaxTokens   int
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	temperature := 0.7
	if v := os.Getenv("COHERE_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			temperature = f
		}
	}

	maxTokens := 200
	if v := os.Getenv("COHERE_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxTokens = n
		}
	}

	return Config{
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}

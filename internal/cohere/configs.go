package cohere

import (
	"os"
	"strconv"
)

// COHERE_BASE_URL must point to the root of the Cohere REST API (no /v1
// path appended). The client appends endpoint paths automatically, so
// callers only need to supply the host base URL.

type Config struct {
	// Auth and endpoint
	APIKey  string // Cohere API key; empty leaves the provider unconfigured
	BaseURL string // Base URL of the Cohere API (default https://api.cohere.com)

	// Model identifiers
	ChatModel      string // chat/generation model (default command-r-08-2024)
	EmbeddingModel string // embedding model (default embed-english-v3.0)

	HTTPTimeoutS int // HTTP timeout seconds (default 30)
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	timeout := 30
	if v := os.Getenv("COHERE_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	baseURL := os.Getenv("COHERE_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.cohere.com"
	}

	chatModel := os.Getenv("COHERE_MODEL")
	if chatModel == "" {
		chatModel = "command-r-08-2024"
	}

	embeddingModel := os.Getenv("COHERE_EMBEDDING_MODEL")
	if embeddingModel == "" {
		embeddingModel = "embed-english-v3.0"
	}

	return Config{
		APIKey:         os.Getenv("COHERE_API_KEY"),
		BaseURL:        baseURL,
		ChatModel:      chatModel,
		EmbeddingModel: embeddingModel,
		HTTPTimeoutS:   timeout,
	}
}

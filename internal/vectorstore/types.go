package vectorstore

import "context"

// Match is one similarity search result with its corpus payload.
type Match struct {
	Text     string
	Zodiac   string
	Category string
	Score    float32
}

// Embedder produces embedding vectors for texts. Satisfied by the
// Cohere provider client.
type Embedder interface {
	Embed(ctx context.Context, texts []string, inputType string) ([][]float32, error)
	Configured() bool
}

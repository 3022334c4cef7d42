package cohere

import (
	"context"
	"fmt"
)

// Input types the embedding endpoint distinguishes between. Corpus entries
// are embedded as documents, search queries as queries; mixing them up
// degrades retrieval quality silently.
const (
	InputSearchDocument = "search_document"
	InputSearchQuery    = "search_query"
)

// Embed computes embeddings for the given texts via the /v1/embed endpoint.
// The result preserves input order, one vector per text.
func (c *Client) Embed(ctx context.Context, texts []string, inputType string) ([][]float32, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("cohere: no texts provided")
	}
	if inputType == "" {
		inputType = InputSearchDocument
	}

	reqBody := map[string]any{
		"model":      c.cfg.EmbeddingModel,
		"texts":      texts,
		"input_type": inputType,
	}

	url := fmt.Sprintf("%s/v1/embed", c.baseURL)

	var parsed struct {
		Embeddings [][]float32 `json:"embeddings"`
	}

	if err := c.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Embeddings) != len(texts) {
		return nil, fmt.Errorf("%w: got %d embeddings for %d texts", ErrRequestFailed, len(parsed.Embeddings), len(texts))
	}

	return parsed.Embeddings, nil
}

package cohere

import (
	"context"
	"fmt"
	"strings"
)

// ChatRequest carries the per-call parameters for a chat completion.
// Model selection comes from Config; callers only vary the message,
// preamble and sampling parameters.
type ChatRequest struct {
	Message     string
	Preamble    string
	Temperature float64
	MaxTokens   int
}

// Chat executes a single chat completion against the /v1/chat endpoint
// and returns the generated text with surrounding whitespace trimmed.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	if req.Message == "" {
		return "", fmt.Errorf("cohere: chat message is required")
	}

	reqBody := map[string]any{
		"model":       c.cfg.ChatModel,
		"message":     req.Message,
		"temperature": req.Temperature,
		"max_tokens":  req.MaxTokens,
	}
	if req.Preamble != "" {
		reqBody["preamble"] = req.Preamble
	}

	url := fmt.Sprintf("%s/v1/chat", c.baseURL)

	var parsed struct {
		Text string `json:"text"`
	}

	if err := c.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return "", err
	}

	text := strings.TrimSpace(parsed.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty chat response", ErrRequestFailed)
	}

	return text, nil
}

package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// postJSON sends an HTTP POST request to the Cohere API.
// It marshals the given body as JSON, attaches required headers,
// handles HTTP error codes, and decodes the response JSON into `out`.
func (c *Client) postJSON(ctx context.Context, url string, body any, out any) error {

	// Convert request payload into JSON bytes.
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	// Construct the HTTP POST request with context (supports cancellation & timeout).
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	// Execute the HTTP request. Client timeout is configured in NewClient.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	// Treat any non-2xx status code as an error, carrying a truncated body
	// for diagnostics.
	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: http %d for %s: %s", ErrRequestFailed, resp.StatusCode, url, snippet)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", ErrRequestFailed, err)
		}
	}

	return nil
}

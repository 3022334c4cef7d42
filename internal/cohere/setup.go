package cohere

import (
	"net/http"
	"strings"
	"time"
)

// Client is the single entrypoint to the Cohere REST API. It hides the
// HTTP details from the generation, translation and vector-store layers,
// which only see Chat and Embed.
//
// A Client built without an API key is valid but unconfigured: every call
// returns ErrNotConfigured without network I/O, which the callers turn
// into their degraded fallbacks.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Client from Config.
func NewClient(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cfg:        cfg,
		baseURL:    base,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// ChatModel returns the configured generation model identifier.
func (c *Client) ChatModel() string {
	return c.cfg.ChatModel
}

// EmbeddingModel returns the configured embedding model identifier.
func (c *Client) EmbeddingModel() string {
	return c.cfg.EmbeddingModel
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

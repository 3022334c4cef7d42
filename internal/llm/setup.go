package llm

import (
	"github.com/razzzeeev/astro/internal/logger"
)

// Client turns a request's context into a daily insight, preferring the
// chat model and degrading to the template tables.
type Client struct {
	cfg     Config
	chatter Chatter
	log     *logger.Logger
}

func NewClient(cfg Config, chatter Chatter, log *logger.Logger) *Client {
	return &Client{
		cfg:     cfg,
		chatter: chatter,
		log:     log,
	}
}

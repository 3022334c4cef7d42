package llm

import (
	"context"

	"github.com/razzzeeev/astro/internal/cache"
	"github.com/razzzeeev/astro/internal/cohere"
	"github.com/razzzeeev/astro/internal/vectorstore"
	"github.com/razzzeeev/astro/internal/zodiac"
)

const (
	// SourceModel marks text produced by the chat model, SourceTemplate
	// text assembled from the per-sign fallback tables.
	SourceModel    = "model"
	SourceTemplate = "template"
)

// GenerateInput carries everything generation can personalize on. Context
// and Profile are optional.
type GenerateInput struct {
	Name    string
	Sign    zodiac.Sign
	Context []vectorstore.Match
	Profile *cache.Profile
}

// Generation is a produced insight with its provenance.
type Generation struct {
	Text   string
	Source string
}

// Chatter is the chat surface generation needs. Satisfied by the Cohere
// provider client.
type Chatter interface {
	Chat(ctx context.Context, req cohere.ChatRequest) (string, error)
}

package insight

import (
	"context"

	"github.com/razzzeeev/astro/internal/llm"
	"github.com/razzzeeev/astro/internal/translate"
	"github.com/razzzeeev/astro/internal/vectorstore"
	"github.com/razzzeeev/astro/internal/zodiac"
)

// Request carries the birth details an insight is produced from. UserID
// is optional; without it no profile is read or written.
type Request struct {
	Name       string
	BirthDate  string
	BirthTime  string
	BirthPlace string
	Latitude   *float64
	Longitude  *float64
	UserID     string
}

// Result is a produced insight with its request metadata. Language is
// the requested language; on translation degradation Insight still holds
// the original text. UserScore is nil when no UserID was given.
type Result struct {
	Zodiac    zodiac.Sign
	Insight   string
	Language  string
	CacheHit  bool
	UserScore *float64
	UserID    string
	Source    string
}

// Searcher retrieves similar corpus entries for a query.
// Satisfied by the vector store.
type Searcher interface {
	Search(ctx context.Context, query string, sign zodiac.Sign, topK int) ([]vectorstore.Match, error)
}

// Generator produces the insight text. Satisfied by the LLM client.
type Generator interface {
	Generate(ctx context.Context, in llm.GenerateInput) llm.Generation
}

// Translator renders text in a target language. Satisfied by the
// translation client.
type Translator interface {
	Translate(ctx context.Context, text, lang string) (translate.Translation, error)
}

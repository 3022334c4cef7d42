package vectorstore

import (
	"sync/atomic"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/razzzeeev/astro/internal/corpus"
	"github.com/razzzeeev/astro/internal/logger"
)

// Store wraps the Qdrant Go client with the similarity operations the
// insight pipeline needs. A Store always constructs; connectivity and
// seeding problems only leave it unavailable, never break startup.
type Store struct {
	cfg      Config
	log      *logger.Logger
	embedder Embedder
	corpus   *corpus.Corpus
	api      *qdrant.Client

	// available flips once when bootstrap finishes. Search may race the
	// flip and sees either "not yet seeded" (empty results) or the final
	// state, both of which are valid.
	available atomic.Bool
}

// NewStore builds the store and dials Qdrant when similarity search is
// enabled and embeddings are obtainable. The gRPC connection is lazy,
// so a down Qdrant surfaces at bootstrap, not here.
func NewStore(cfg Config, embedder Embedder, c *corpus.Corpus, log *logger.Logger) *Store {
	s := &Store{
		cfg:      cfg,
		log:      log,
		embedder: embedder,
		corpus:   c,
	}

	if !cfg.Enabled {
		log.Info("vector store disabled by configuration", nil, nil)
		return s
	}
	if !embedder.Configured() {
		log.Warn("vector store disabled, embedding provider not configured", nil, nil)
		return s
	}

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Host,
		Port:                   cfg.Port,
		APIKey:                 cfg.APIKey,
		UseTLS:                 cfg.UseTLS,
		SkipCompatibilityCheck: true,
	})
	if err != nil {
		log.Warn("vector store disabled, qdrant client init failed", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return s
	}
	s.api = api

	return s
}

// Available reports whether searches can currently hit the backend.
func (s *Store) Available() bool {
	return s.available.Load()
}

// Close releases the underlying gRPC connection.
func (s *Store) Close() error {
	s.available.Store(false)
	if s.api == nil {
		return nil
	}
	return s.api.Close()
}

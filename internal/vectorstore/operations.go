package vectorstore

import (
	"context"
	"fmt"
	"slices"

	qdrant "github.com/qdrant/go-client/qdrant"
	"golang.org/x/sync/errgroup"

	"github.com/razzzeeev/astro/internal/cohere"
	"github.com/razzzeeev/astro/internal/zodiac"
)

const (
	embedBatchSize  = 96 // Cohere embed API accepts at most 96 texts per call
	upsertBatchSize = 200
	seedConcurrency = 4
)

// Bootstrap ensures the collection exists and seeds it with the corpus.
// Failures leave the store unavailable and are logged, never returned;
// the service keeps serving template insights without a vector backend.
func (s *Store) Bootstrap(ctx context.Context) {
	if s.api == nil {
		return
	}

	if err := s.ensureCollection(ctx); err != nil {
		s.log.Warn("vector store unavailable, collection setup failed", err, map[string]interface{}{
			"collection": s.cfg.Collection,
		})
		return
	}

	if err := s.seedCorpus(ctx); err != nil {
		s.log.Warn("vector store unavailable, corpus seeding failed", err, map[string]interface{}{
			"collection": s.cfg.Collection,
		})
		return
	}

	s.available.Store(true)
	s.log.Info("vector store ready", nil, map[string]interface{}{
		"collection": s.cfg.Collection,
		"entries":    s.corpus.Len(),
	})
}

// ensureCollection creates the collection if it does not exist yet.
// Safe to call repeatedly.
func (s *Store) ensureCollection(ctx context.Context) error {
	collections, err := s.api.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("listing collections: %w", err)
	}

	if slices.Contains(collections, s.cfg.Collection) {
		return nil
	}

	req := &qdrant.CreateCollection{
		CollectionName: s.cfg.Collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(s.cfg.VectorSize),
			Distance: qdrant.Distance_Cosine,
		}),
	}
	if err := s.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("creating collection %q: %w", s.cfg.Collection, err)
	}
	return nil
}

// seedCorpus upserts every corpus entry. Entries shipping a precomputed
// embedding of the right size go in directly; the rest are embedded in
// bounded-parallel batches first. Point IDs are corpus slice indexes, so
// reseeding the same corpus is an idempotent overwrite.
func (s *Store) seedCorpus(ctx context.Context) error {
	entries := s.corpus.Entries()
	if len(entries) == 0 {
		return nil
	}

	vectors := make([][]float32, len(entries))
	var pending []int
	for i, e := range entries {
		if len(e.Embedding) == s.cfg.VectorSize {
			vectors[i] = e.Embedding
			continue
		}
		pending = append(pending, i)
	}

	if len(pending) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(seedConcurrency)
		for start := 0; start < len(pending); start += embedBatchSize {
			batch := pending[start:min(start+embedBatchSize, len(pending))]
			g.Go(func() error {
				texts := make([]string, len(batch))
				for j, idx := range batch {
					texts[j] = entries[idx].Text
				}
				embedded, err := s.embedder.Embed(gctx, texts, cohere.InputSearchDocument)
				if err != nil {
					return fmt.Errorf("embedding %d corpus texts: %w", len(texts), err)
				}
				if len(embedded) != len(batch) {
					return fmt.Errorf("embedding count mismatch: sent %d, got %d", len(batch), len(embedded))
				}
				for j, idx := range batch {
					vectors[idx] = embedded[j]
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	points := make([]*qdrant.PointStruct, len(entries))
	for i, e := range entries {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(uint64(i)),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				"text":     e.Text,
				"zodiac":   e.Zodiac,
				"category": e.Category,
			}),
		}
	}

	wait := true
	for start := 0; start < len(points); start += upsertBatchSize {
		end := min(start+upsertBatchSize, len(points))
		req := &qdrant.UpsertPoints{
			CollectionName: s.cfg.Collection,
			Points:         points[start:end],
			Wait:           &wait,
		}
		if _, err := s.api.Upsert(ctx, req); err != nil {
			return fmt.Errorf("upserting batch [%d:%d]: %w", start, end, err)
		}
	}

	return nil
}

// Search embeds the query and returns up to topK similar corpus entries.
// A sign scopes the query to that sign's entries via a payload filter.
// An unavailable store returns no matches and no error, an availability
// loss mid-search returns ErrUnavailable.
func (s *Store) Search(ctx context.Context, query string, sign zodiac.Sign, topK int) ([]Match, error) {
	if !s.available.Load() {
		return nil, nil
	}
	if topK <= 0 {
		topK = s.cfg.TopK
	}

	embedded, err := s.embedder.Embed(ctx, []string{query}, cohere.InputSearchQuery)
	if err != nil || len(embedded) == 0 {
		return nil, fmt.Errorf("%w: embedding query: %v", ErrUnavailable, err)
	}

	limit := uint64(topK)
	req := &qdrant.QueryPoints{
		CollectionName: s.cfg.Collection,
		Query:          qdrant.NewQuery(embedded[0]...),
		Filter:         signFilter(sign),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	}
	resp, err := s.api.Query(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: querying %q: %v", ErrUnavailable, s.cfg.Collection, err)
	}

	return matchesFromPoints(resp), nil
}

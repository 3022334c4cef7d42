package insight

import (
	"go.uber.org/fx"

	"github.com/razzzeeev/astro/internal/cache"
	"github.com/razzzeeev/astro/internal/corpus"
	"github.com/razzzeeev/astro/internal/logger"
	"github.com/razzzeeev/astro/internal/metrics"
	"github.com/razzzeeev/astro/internal/tracer"
)

// Service orchestrates one insight request end to end: sign resolution,
// cache, retrieval, generation, translation, profile update. Provider
// failures degrade inside the pipeline; only client input can fail it.
type Service struct {
	cache      *cache.Cache
	corpus     *corpus.Corpus
	searcher   Searcher
	generator  Generator
	translator Translator
	metrics    metrics.Collector
	tracer     *tracer.Tracer
	log        *logger.Logger
}

// ServiceParams bundles the orchestrator's dependencies.
type ServiceParams struct {
	fx.In

	Cache      *cache.Cache
	Corpus     *corpus.Corpus
	Searcher   Searcher
	Generator  Generator
	Translator Translator
	Metrics    metrics.Collector
	Tracer     *tracer.Tracer
	Logger     *logger.Logger
}

func NewService(p ServiceParams) *Service {
	return &Service{
		cache:      p.Cache,
		corpus:     p.Corpus,
		searcher:   p.Searcher,
		generator:  p.Generator,
		translator: p.Translator,
		metrics:    p.Metrics,
		tracer:     p.Tracer,
		log:        p.Logger,
	}
}

package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/razzzeeev/astro/internal/cache"
	"github.com/razzzeeev/astro/internal/cohere"
	"github.com/razzzeeev/astro/internal/corpus"
	"github.com/razzzeeev/astro/internal/httpapi"
	"github.com/razzzeeev/astro/internal/insight"
	"github.com/razzzeeev/astro/internal/llm"
	"github.com/razzzeeev/astro/internal/logger"
	"github.com/razzzeeev/astro/internal/metrics"
	"github.com/razzzeeev/astro/internal/tracer"
	"github.com/razzzeeev/astro/internal/translate"
	"github.com/razzzeeev/astro/internal/vectorstore"
)

func main() {
	godotenv.Load()

	fx.New(
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		cohere.FXModule,
		cache.FXModule,
		corpus.FXModule,
		vectorstore.FXModule,
		llm.FXModule,
		translate.FXModule,
		insight.FXModule,
		httpapi.FXModule,
	).Run()
}

package vectorstore

import (
	"context"

	"go.uber.org/fx"

	"github.com/razzzeeev/astro/internal/cohere"
	"github.com/razzzeeev/astro/internal/logger"
)

var FXModule = fx.Module(
	"vectorstore",
	fx.Provide(
		NewConfig,
		func(c *cohere.Client) Embedder { return c },
		NewStore,
	),
	fx.Invoke(RegisterStoreLifecycle),
)

func RegisterStoreLifecycle(lc fx.Lifecycle, s *Store, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Seeding embeds the corpus over the network; run it off the
			// start path so a slow provider cannot stall or fail boot.
			go s.Bootstrap(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down vector store...", nil, nil)
			return s.Close()
		},
	})
}

package cache

import (
	"context"

	"go.uber.org/fx"

	"github.com/razzzeeev/astro/internal/logger"
)

var FXModule = fx.Module(
	"cache",
	fx.Provide(
		NewCache,
	),
	fx.Invoke(RegisterCacheLifecycle),
)

func RegisterCacheLifecycle(lc fx.Lifecycle, c *Cache, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("in-memory cache ready", nil, nil)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stats := c.Stats()
			log.Info("cache shutting down", nil, map[string]interface{}{
				"insight_entries": stats.InsightEntries,
				"profile_entries": stats.ProfileEntries,
				"hits":            stats.Hits,
				"misses":          stats.Misses,
			})
			return nil
		},
	})
}

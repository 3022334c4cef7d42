package httpapi

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/razzzeeev/astro/internal/logger"
)

// FXModule wires the API server into an Fx application.
//
// It provides:
//   - Config          (NewConfig)
//   - *Server         (NewServer)
//   - Lifecycle hook  (RegisterServerLifecycle)
var FXModule = fx.Module("httpapi",
	fx.Provide(
		NewConfig,
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts the API server in the background on
// application start and shuts it down gracefully on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting API server", nil, map[string]interface{}{
					"address": s.http.Addr,
				})

				if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("Error starting API server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down API server", nil, nil)
			return s.http.Shutdown(ctx)
		},
	})
}

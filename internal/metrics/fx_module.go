package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/razzzeeev/astro/internal/logger"
)

// FXModule wires the metrics server into an Fx application.
//
// It provides:
//   - Config             (NewConfig)
//   - *Metrics           (NewMetrics)
//   - Collector          (the *Metrics instance behind the interface)
//   - Lifecycle hook     (RegisterMetricsLifecycle)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewConfig,
		NewMetrics,
		func(m *Metrics) Collector { return m },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the Prometheus HTTP server in the
// background on application start and shuts it down gracefully on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting Prometheus metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})

				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("Error starting Prometheus metrics server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Prometheus metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}

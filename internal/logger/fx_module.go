package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the logger into an Fx application.
//
// It provides:
//   - Config   (NewConfig)
//   - *Logger  (NewLoggerClient)
//   - Lifecycle hook flushing buffered entries on shutdown
var FXModule = fx.Module("logger",
	fx.Provide(
		NewConfig,
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes any buffered log entries when the
// application stops, so nothing is lost on shutdown.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync()
		},
	})
}

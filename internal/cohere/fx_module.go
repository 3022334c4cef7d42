package cohere

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the Cohere provider into Fx.
//
// It provides:
//   - Config          (NewConfig)
//   - *Client         (NewClient)
//   - Lifecycle hook  (RegisterCohereLifecycle)
var FXModule = fx.Module(
	"cohere",

	fx.Provide(
		NewConfig,
		NewClient,
	),

	fx.Invoke(RegisterCohereLifecycle),
)

// RegisterCohereLifecycle releases the provider's idle connections on
// application shutdown.
func RegisterCohereLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}

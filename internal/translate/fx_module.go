package translate

import (
	"go.uber.org/fx"

	"github.com/razzzeeev/astro/internal/cohere"
)

var FXModule = fx.Module(
	"translate",
	fx.Provide(
		NewConfig,
		func(c *cohere.Client) Chatter { return c },
		NewClient,
	),
)

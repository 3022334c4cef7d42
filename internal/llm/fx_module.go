package llm

import (
	"go.uber.org/fx"

	"github.com/razzzeeev/astro/internal/cohere"
)

var FXModule = fx.Module(
	"llm",
	fx.Provide(
		NewConfig,
		func(c *cohere.Client) Chatter { return c },
		NewClient,
	),
)

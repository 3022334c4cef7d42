package insight

import (
	"go.uber.org/fx"

	"github.com/razzzeeev/astro/internal/llm"
	"github.com/razzzeeev/astro/internal/translate"
	"github.com/razzzeeev/astro/internal/vectorstore"
)

var FXModule = fx.Module(
	"insight",
	fx.Provide(
		func(s *vectorstore.Store) Searcher { return s },
		func(c *llm.Client) Generator { return c },
		func(c *translate.Client) Translator { return c },
		NewService,
	),
)

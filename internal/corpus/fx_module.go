package corpus

import (
	"go.uber.org/fx"
)

var FXModule = fx.Module(
	"corpus",
	fx.Provide(
		NewConfig,
		NewCorpus,
	),
)

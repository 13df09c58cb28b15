package event

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/bluemonkey003/lunchroom/internal/config"
)

// Module wires the domain event bus into the fx graph.
var Module = fx.Options(
	fx.Provide(newBus),
	fx.Provide(func(b *Bus) Publisher { return b }),
)

type busParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newBus(p busParams) *Bus {
	return NewBus(p.Config.EventBuffer, p.Logger)
}

package realtime

import "go.uber.org/fx"

// Module provides the realtime hub to the fx container.
var Module = fx.Provide(NewHub)

package appstate

import (
	"context"

	"go.uber.org/fx"
)

func registerHooks(lc fx.Lifecycle, state *State) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return state.Load(ctx)
		},
	})
}

// Module provides the process-wide state cache, loaded on startup.
var Module = fx.Module("appstate",
	fx.Provide(New),
	fx.Invoke(registerHooks),
)

package config

import "go.uber.org/fx"

// Module wires application configuration and the shop profile.
var Module = fx.Module("config",
	fx.Provide(
		Load,
		LoadShopProfile,
	),
)

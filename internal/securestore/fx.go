package securestore

import (
	"github.com/smallbiznis/reparo/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("securestore",
	fx.Provide(NewFromConfig),
	// Constructed eagerly so a missing passphrase fails at startup, not on
	// first credential access.
	fx.Invoke(func(*Store) {}),
)

func NewFromConfig(cfg config.Config) (*Store, error) {
	return New(cfg.SecureStorePath, cfg.SecureStoreKey)
}

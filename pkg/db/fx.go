package db

import (
	"context"

	"github.com/smallbiznis/reparo/internal/config"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func NewFromConfig(cfg config.Config) (*gorm.DB, error) {
	return Open(Config{Path: cfg.DBPath})
}

func registerHooks(lc fx.Lifecycle, conn *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}

// Module provides the single process-wide store handle.
var Module = fx.Module("db",
	fx.Provide(NewFromConfig),
	fx.Invoke(registerHooks),
)

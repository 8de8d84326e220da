package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/reparo/internal/appstate"
	"github.com/smallbiznis/reparo/internal/clock"
	"github.com/smallbiznis/reparo/internal/config"
	"github.com/smallbiznis/reparo/internal/customer"
	"github.com/smallbiznis/reparo/internal/inventory"
	"github.com/smallbiznis/reparo/internal/ledger"
	"github.com/smallbiznis/reparo/internal/logger"
	"github.com/smallbiznis/reparo/internal/messagelog"
	"github.com/smallbiznis/reparo/internal/migration"
	"github.com/smallbiznis/reparo/internal/providers"
	"github.com/smallbiznis/reparo/internal/repairjob"
	"github.com/smallbiznis/reparo/internal/securestore"
	"github.com/smallbiznis/reparo/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		clock.Module,

		// Platform collaborators
		providers.Module,
		securestore.Module,

		// Entity services
		ledger.Module,
		repairjob.Module,
		inventory.Module,
		customer.Module,
		messagelog.Module,

		// Process-wide state cache, loaded on start
		appstate.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

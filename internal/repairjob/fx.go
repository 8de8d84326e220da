package repairjob

import (
	"github.com/smallbiznis/reparo/internal/repairjob/repository"
	"github.com/smallbiznis/reparo/internal/repairjob/service"
	"go.uber.org/fx"
)

var Module = fx.Module("repairjob.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

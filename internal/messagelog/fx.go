package messagelog

import (
	"github.com/smallbiznis/reparo/internal/messagelog/repository"
	"github.com/smallbiznis/reparo/internal/messagelog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("messagelog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

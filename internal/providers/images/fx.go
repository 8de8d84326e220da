package images

import (
	"github.com/smallbiznis/reparo/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("providers.images",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg config.Config) *Importer {
	return NewImporter(cfg.ImagesDir)
}

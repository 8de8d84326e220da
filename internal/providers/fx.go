package providers

import (
	"go.uber.org/fx"

	"github.com/smallbiznis/reparo/internal/providers/images"
	"github.com/smallbiznis/reparo/internal/providers/pdf"
	"github.com/smallbiznis/reparo/internal/providers/sms"
)

var Module = fx.Module("providers",
	images.Module,
	pdf.Module,
	sms.Module,
)

package sms

import (
	"time"

	"github.com/smallbiznis/reparo/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("providers.sms",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg config.Config) Provider {
	if cfg.SMS.GatewayURL == "" {
		return &NoOpProvider{}
	}
	return NewGateway(Config{
		GatewayURL: cfg.SMS.GatewayURL,
		AuthToken:  cfg.SMS.AuthToken,
		Sender:     cfg.SMS.Sender,
		Timeout:    time.Duration(cfg.SMS.TimeoutSec) * time.Second,
	})
}

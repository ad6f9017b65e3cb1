package components

import (
	"log/slog"

	"ortomat-backend/internal/device"
	"ortomat-backend/internal/pkg/clock"
	"ortomat-backend/internal/pkg/config"
	"ortomat-backend/internal/usecase/queries"
	"ortomat-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

var DeviceModule = fx.Module("device",
	fx.Provide(
		NewTokenVerifier,
		fx.Annotate(
			device.NewRegistry,
			fx.As(fx.Self()),
			fx.As(new(shared.DevicePresence)),
			fx.As(new(queries.Presence)),
			fx.As(new(queries.SessionLister)),
		),
		fx.Annotate(
			device.NewDispatcher,
			fx.As(new(shared.Unlocker)),
		),
		NewGateway,
	),
)

func NewTokenVerifier(cfg config.Config) device.TokenVerifier {
	return device.NewHashAllowList(cfg.Device.TokenHashes)
}

func NewGateway(registry *device.Registry, cfg config.Config, clk clock.Clock, logger *slog.Logger) *device.Gateway {
	return device.NewGateway(registry, cfg.Device, clk, logger)
}

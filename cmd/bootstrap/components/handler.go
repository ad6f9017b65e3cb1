package components

import (
	"ortomat-backend/internal/handler"
	"ortomat-backend/internal/handler/api"
	"ortomat-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPaymentHandler,
		api.NewLockerHandler,
		api.NewCellHandler,
		api.NewDeviceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

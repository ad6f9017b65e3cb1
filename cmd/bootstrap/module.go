package bootstrap

import (
	"ortomat-backend/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.DeviceModule,
	components.IntegrationModule,
	components.UseCaseModule,
	components.HandlerModule,
)

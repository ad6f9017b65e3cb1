package components

import (
	"context"

	"ortomat-backend/internal/pkg/clock"
	"ortomat-backend/internal/pkg/config"
	"ortomat-backend/internal/usecase"
	"ortomat-backend/internal/usecase/commands"
	"ortomat-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewReferralSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLockerUseCase,
		commands.NewCellUseCase,
		fx.Annotate(
			commands.NewPaymentUseCase,
			fx.As(fx.Self()),
			fx.As(new(commands.PaymentCommands)),
		),
	),
	fx.Invoke(drainNotifications),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLockerQueries,
		queries.NewDeviceQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewReferralSettings(cfg config.Config) (commands.ReferralSettings, error) {
	return commands.NewReferralSettings(cfg.Referral)
}

// drainNotifications lets in-flight referrer messages finish before the pool closes.
func drainNotifications(lc fx.Lifecycle, uc *commands.PaymentUseCase) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			done := make(chan struct{})
			go func() {
				uc.Wait()
				close(done)
			}()
			select {
			case <-done:
			case <-ctx.Done():
			}
			return nil
		},
	})
}

package components

import (
	"log/slog"

	"ortomat-backend/internal/infra/notifier"
	"ortomat-backend/internal/infra/payment"
	"ortomat-backend/internal/pkg/config"
	"ortomat-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewPaymentProviders,
		NewReferrerNotifier,
	),
)

func NewPaymentProviders(cfg config.Config, logger *slog.Logger) (shared.PaymentProviders, error) {
	acquirer, err := payment.NewAcquirer(cfg.Payment, logger)
	if err != nil {
		return nil, err
	}
	return payment.NewRegistry(acquirer, payment.NewInternal(cfg.Payment)), nil
}

func NewReferrerNotifier(cfg config.Config, logger *slog.Logger) shared.ReferrerNotifier {
	return notifier.New(cfg.Notifier, logger)
}

package bootstrap

import (
	"log/slog"

	infrapayment "hotel-booking/internal/infra/payment"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) commands.PaymentGateway {
	if cfg.Payment.Provider == config.PaymentProviderStripe {
		logger.Info("payment provider: stripe")
		return infrapayment.NewStripeGateway(cfg.Payment.StripeKey, logger)
	}
	logger.Info("payment provider: sandbox")
	return infrapayment.NewSandboxGateway()
}

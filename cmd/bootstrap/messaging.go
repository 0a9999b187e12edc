package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/messaging"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewNotifier,
	),
	fx.Invoke(
		StartPaymentEventConsumer,
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) commands.Notifier {
	if !cfg.RabbitMQ.Enabled() {
		logger.Info("AMQP_URL not set, notifications are logged only")
		return messaging.NewLogNotifier(logger)
	}

	n := messaging.NewRabbitNotifier(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, clk, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return n.Close()
		},
	})
	return n
}

func StartPaymentEventConsumer(lc fx.Lifecycle, cfg config.Config, events commands.PaymentEvents, logger *slog.Logger) {
	if !cfg.Kafka.Enabled() {
		return
	}

	consumer := messaging.NewPaymentEventConsumer(cfg.Kafka.Brokers, cfg.Kafka.PaymentTopic, cfg.Kafka.GroupID, events, logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := consumer.Run(ctx); err != nil {
					logger.Error("payment event consumer stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return consumer.Close()
		},
	})
}

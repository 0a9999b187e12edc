package components

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

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
	fx.Annotate(
		booking.NewNightlyRateCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	func(cfg config.Config) commands.BookingSettings {
		return commands.BookingSettings{
			IdempotencyTTL: cfg.Booking.IdempotencyTTL,
			NotifyTimeout:  cfg.Booking.NotifyTimeout,
		}
	},
	func(cfg config.Config) commands.RoomTypeSettings {
		return commands.RoomTypeSettings{DefaultCurrency: cfg.Payment.Currency}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewRoomTypeUseCase,
		// webhooks and the Kafka consumer only see the payment event subset
		func(c commands.BookingCommands) commands.PaymentEvents { return c },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewRoomTypeQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

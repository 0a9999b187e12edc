package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewRoomTypeHandler,
		api.NewAdminHandler,
		func(events commands.PaymentEvents, cfg config.Config) *api.WebhookHandler {
			return api.NewWebhookHandler(events, cfg.Payment.WebhookSecret)
		},
		func(b *api.BookingHandler, r *api.RoomTypeHandler, a *api.AdminHandler, w *api.WebhookHandler) handler.Handlers {
			return handler.Handlers{Booking: b, RoomType: r, Admin: a, Webhook: w}
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

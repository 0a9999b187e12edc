package bootstrap

import (
	"hotel-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	PaymentModule,
	components.PersistenceModule,
	components.UseCaseModule,
	MessagingModule,
	components.HandlerModule,
)

package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		fx.Annotate(
			NewListingCache,
			fx.As(new(queries.RoomTypeCache)),
			fx.As(new(commands.ListingCache)),
		),
	),
)

// NewListingCache falls back to a no-op cache when Redis is disabled or unreachable;
// listings are then always read from the database.
func NewListingCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) cache.ListingStore {
	if !cfg.Cache.Enabled {
		logger.Info("room type cache disabled")
		return cache.NoopRoomTypeCache{}
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Cache)
	if err != nil {
		logger.Warn("redis unavailable, room type cache disabled", "addr", cfg.Cache.Addr, "error", err)
		return cache.NoopRoomTypeCache{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("room type cache enabled", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.TTL)
	return cache.NewRoomTypeCache(client, cfg.Cache.TTL, cfg.Cache.Prefix)
}

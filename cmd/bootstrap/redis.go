package bootstrap

import (
	"context"

	"github.com/CamiloCortesM/nex-stay/internal/infra/cache"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/config"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewRoomTypeCache,
			fx.As(new(queries.RoomTypeCache)),
		),
	),
)

// NewRedisClient returns nil when no Redis address is configured. The cache
// layer treats a nil client as a permanent miss, so the service runs without
// Redis in development.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewRoomTypeCache(client *redis.Client, cfg config.Config) *cache.RoomTypeCache {
	return cache.NewRoomTypeCache(client, cfg.Redis.RoomTypeTTL)
}

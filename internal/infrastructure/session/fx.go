package session

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/muhammadrizo00/Kinamax-Pro/config"
)

var Module = fx.Module(
	"session",
	fx.Provide(provideStore),
)

func provideStore(lc fx.Lifecycle, cfg *config.RedisConfig, log zerolog.Logger) Store {
	if cfg.Addr == "" {
		log.Info().Msg("redis not configured, using in-memory session store")
		return NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("closing redis connection...")
			return client.Close()
		},
	})

	log.Info().Str("addr", cfg.Addr).Msg("using redis session store")
	return NewRedisStore(client)
}

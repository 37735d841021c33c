package bootstrap

import (
	"context"
	"log/slog"

	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/infra/cache"
	"vehicle-rental/internal/pkg/config"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewIdempotencyStore,
	),
)

// NewIdempotencyStore yields a nil store when Redis is disabled, which turns
// the Idempotency-Key middleware off.
func NewIdempotencyStore(lc fx.Lifecycle, cfg config.Config, nrApp *newrelic.Application) (middleware.IdempotencyStore, error) {
	if !cfg.Redis.Enabled {
		slog.Info("Redis disabled, Idempotency-Key headers are ignored")
		return nil, nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis, nrApp)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewIdempotencyStore(client), nil
}

package bootstrap

import (
	"context"
	"log/slog"

	"vehicle-rental/internal/infra/messaging"
	"vehicle-rental/internal/infra/outbox"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var OutboxModule = fx.Module("outbox",
	fx.Invoke(StartOutboxRelay),
)

// StartOutboxRelay publishes queued booking events to Kafka. With Kafka
// disabled the jobs stay queued until a relay with a broker picks them up.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, queries *sqlc.Queries, clk clock.Clock) {
	if !cfg.Kafka.Enabled {
		slog.Info("Kafka disabled, outbox relay not started")
		return
	}

	producer := messaging.NewKafkaProducer(messaging.NewKafkaWriter(cfg.Kafka))
	relay := outbox.NewRelay(pool, queries, producer, clk, cfg.Outbox)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			slog.Info("outbox relay started",
				"brokers", cfg.Kafka.Brokers,
				"poll_interval", cfg.Outbox.PollInterval)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return producer.Close()
		},
	})
}

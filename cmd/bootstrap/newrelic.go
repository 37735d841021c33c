package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"vehicle-rental/internal/pkg/config"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/fx"
)

const newRelicShutdownTimeout = 5 * time.Second

var NewRelicModule = fx.Module("newrelic",
	fx.Provide(
		NewNewRelicApp,
	),
)

// NewNewRelicApp returns nil when no licence key is configured; every consumer
// treats a nil application as "APM off".
func NewNewRelicApp(lc fx.Lifecycle, cfg config.Config) (*newrelic.Application, error) {
	if !cfg.NewRelic.Enabled() {
		slog.Info("New Relic disabled")
		return nil, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelic.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			app.Shutdown(newRelicShutdownTimeout)
			return nil
		},
	})
	return app, nil
}

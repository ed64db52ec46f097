package observability

import (
	"context"

	"go.uber.org/fx"

	"breakout_api/internal/modules/config"
	"breakout_api/pkg/logger"
	"breakout_api/pkg/tracing"
)

const serviceName = "breakout-api"

func SetupLogger(lc fx.Lifecycle, cfg *config.Config) error {
	logger.SetServiceName(serviceName)
	if err := logger.Init(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	}); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Sync()
			return nil
		},
	})
	return nil
}

// SetupTracing: без tracing.enabled остаётся глобальный noop-трейсер.
func SetupTracing(lc fx.Lifecycle, cfg *config.Config) error {
	if !cfg.Tracing.Enabled {
		return nil
	}

	tracing.SetServiceName(serviceName)
	_, closer, err := tracing.InitTracer(tracing.Config{
		Host: cfg.Tracing.Host,
		Port: cfg.Tracing.Port,
	})
	if err != nil {
		return err
	}
	logger.Info("tracing to %s:%d", cfg.Tracing.Host, cfg.Tracing.Port)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			closer()
			return nil
		},
	})
	return nil
}

// Module должен идти раньше модулей, которые пишут в лог на старте.
func Module() fx.Option {
	return fx.Module("observability",
		fx.Invoke(
			SetupLogger,
			SetupTracing,
		),
	)
}

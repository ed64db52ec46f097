package main

import (
	"breakout_api/internal/modules/config"
	"breakout_api/internal/modules/health"
	"breakout_api/internal/modules/observability"
	"breakout_api/internal/modules/signal"

	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module(),
		observability.Module(),
		health.Module(),
		signal.Module(),
	)
	app.Run()
}

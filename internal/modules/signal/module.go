package signal

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"breakout_api/internal/modules/config"
	healthsvc "breakout_api/internal/modules/health/service"
	"breakout_api/internal/modules/signal/service"
	"breakout_api/pkg/logger"
)

type ServerConfig struct {
	Addr string
}

func NewServerConfig(cfg *config.Config) ServerConfig {
	return ServerConfig{Addr: fmt.Sprintf("%s:%d", cfg.Service.Host, cfg.Service.PublicPort)}
}

// RunHTTP вешает публичный сервер на жизненный цикл fx.
// Готовность поднимается только после того, как порт занят.
func RunHTTP(lc fx.Lifecycle, cfg ServerConfig, engine *gin.Engine, state *healthsvc.State) {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return err
			}
			logger.Info("signal API listening on %s", ln.Addr())
			go func() {
				if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
					logger.Error("signal API stopped: %v", err)
					state.SetReady(false)
				}
			}()
			state.SetReady(true)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			state.SetReady(false)
			return srv.Shutdown(ctx)
		},
	})
}

func Module() fx.Option {
	return fx.Module("signal",
		fx.Provide(
			NewServerConfig,
			service.NewHandler, // *service.Handler
			service.NewRouter,  // *gin.Engine
		),
		fx.Invoke(RunHTTP),
	)
}

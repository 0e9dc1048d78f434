package main

import (
	"context"
	"log"

	"go.uber.org/fx"

	"screener_service/internal/modules/api"
	"screener_service/internal/modules/config"
	"screener_service/internal/modules/history"
	"screener_service/internal/modules/screener"
	"screener_service/internal/modules/tickers"
	"screener_service/pkg/logger"
	"screener_service/pkg/tracing"
)

func main() {
	if err := logger.Init("screener"); err != nil {
		log.Fatal(err)
	}

	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
		),
		config.Module(),
		screener.Module(),
		tickers.Module(),
		history.Module(),
		api.Module(),
		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config) error {
			_, closeTracer, err := tracing.InitTracer(tracing.Config{
				ServiceName: "screener",
				Host:        cfg.Jaeger.Host,
				Port:        cfg.Jaeger.Port,
			})
			if err != nil {
				return err
			}
			lc.Append(fx.Hook{
				OnStop: func(ctx context.Context) error {
					closeTracer()
					return nil
				},
			})
			return nil
		}),
	)
	app.Run()
}

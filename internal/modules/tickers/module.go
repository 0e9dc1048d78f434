package tickers

import (
	"go.uber.org/fx"

	"screener_service/internal/modules/tickers/service"
)

func Module() fx.Option {
	return fx.Module("tickers",
		fx.Provide(
			service.NewIndex,
		),
	)
}

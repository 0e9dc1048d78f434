package screener

import (
	"go.uber.org/fx"

	"screener_service/internal/modules/screener/service"
)

func Module() fx.Option {
	return fx.Module("screener",
		fx.Provide(
			service.NewClient,
			service.NewScreener,
		),
	)
}

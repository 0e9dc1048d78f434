package history

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"screener_service/internal/models"
	"screener_service/internal/modules/config"
	"screener_service/internal/modules/history/service/pg"
	screenersvc "screener_service/internal/modules/screener/service"
	"screener_service/pkg/db"
	"screener_service/pkg/logger"
)

// noopRecorder stands in when no history DSN is configured.
type noopRecorder struct{}

func (noopRecorder) Record(context.Context, models.ScanAudit) error { return nil }

func Module() fx.Option {
	return fx.Module("history",
		fx.Provide(
			func(ctx context.Context, cfg *config.Config) (screenersvc.ScanRecorder, error) {
				if cfg.History.DSN == "" {
					logger.Info("scan history disabled, no DSN configured")
					return noopRecorder{}, nil
				}

				pool, err := db.NewPool(ctx, db.PoolConfig{
					DSN: cfg.History.DSN,
				})
				if err != nil {
					return nil, fmt.Errorf("failed to create history pool: %w", err)
				}

				if err = pool.Ping(ctx); err != nil {
					return nil, err
				}

				return pg.NewScanHistory(db.NewPgTxManager(pool)), nil
			},
		),
	)
}

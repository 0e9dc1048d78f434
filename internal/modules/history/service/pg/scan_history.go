package pg

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"screener_service/internal/models"
	"screener_service/pkg/db"
)

const insertScanSQL = `
INSERT INTO scan_history (markets, filter_count, row_count, total_count, duration_ms, executed_at)
VALUES ($1, $2, $3, $4, $5, $6)`

// ScanHistory persists one row per completed scan.
type ScanHistory struct {
	db *db.PgTxManager
}

func NewScanHistory(manager *db.PgTxManager) *ScanHistory {
	return &ScanHistory{db: manager}
}

func (s *ScanHistory) Record(ctx context.Context, audit models.ScanAudit) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("pg.RecordScan: %w", err)
		}
	}()
	err = s.db.RunMaster(ctx,
		func(ctxTx context.Context, tx pgx.Tx) error {
			_, err := tx.Exec(ctxTx, insertScanSQL,
				strings.Join(audit.Markets, ","),
				audit.FilterCount,
				audit.RowCount,
				audit.TotalCount,
				audit.DurationMs,
				audit.ExecutedAt,
			)
			return err
		})
	return err
}

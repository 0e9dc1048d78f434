package service

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"screener_service/internal/models"
	"screener_service/pkg/logger"
)

// ScanRecorder receives a record of every completed scan. Implementations
// must tolerate being called concurrently.
type ScanRecorder interface {
	Record(ctx context.Context, audit models.ScanAudit) error
}

type Screener struct {
	client   *Client
	recorder ScanRecorder
}

func NewScreener(client *Client, recorder ScanRecorder) *Screener {
	return &Screener{
		client:   client,
		recorder: recorder,
	}
}

// Scan translates the request, executes it against the scanner and wraps the
// result with timing metadata. Translation failures keep their FilterError
// type for the HTTP layer; executor failures come back wrapped and generic.
func (s *Screener) Scan(ctx context.Context, req *models.ScanRequest) (*models.ScanResponse, error) {
	start := time.Now()

	span, ctx := opentracing.StartSpanFromContext(ctx, "screener.scan")
	defer span.Finish()

	payload, err := BuildScanPayload(req)
	if err != nil {
		return nil, err
	}

	total, rows, err := s.client.Scan(ctx, req.Markets, payload)
	if err != nil {
		return nil, errors.Wrap(err, "execute scanner query")
	}

	resp := models.NewScanResponse(rows, total, time.Since(start))

	audit := models.ScanAudit{
		Markets:     req.Markets,
		FilterCount: len(req.Filters),
		RowCount:    len(rows),
		TotalCount:  total,
		DurationMs:  resp.DurationMs,
		ExecutedAt:  start.UTC(),
	}
	// Fire-and-forget: history must never delay or fail a scan.
	go func() {
		if err := s.recorder.Record(context.WithoutCancel(ctx), audit); err != nil {
			logger.Error("record scan history: %v", err)
		}
	}()

	return resp, nil
}

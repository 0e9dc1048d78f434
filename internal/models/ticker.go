package models

import "time"

// TickerRecord is one row of the ticker snapshot. Immutable after load.
type TickerRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Exchange    string `json:"exchange"`
	Type        string `json:"type"`
}

// TickerSnapshot is the on-disk format written by cmd/fetchtickers and read
// by the search index.
type TickerSnapshot struct {
	UpdatedAt string         `json:"updatedAt"`
	Count     int            `json:"count"`
	Tickers   []TickerRecord `json:"tickers"`
}

func NewTickerSnapshot(tickers []TickerRecord) *TickerSnapshot {
	return &TickerSnapshot{
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Count:     len(tickers),
		Tickers:   tickers,
	}
}

// ScanAudit is one row of the optional scan history trail.
type ScanAudit struct {
	Markets     []string
	FilterCount int
	RowCount    int
	TotalCount  int
	DurationMs  int64
	ExecutedAt  time.Time
}

package service

import (
	"os"
	"strings"
	"sync"

	"github.com/bytedance/sonic"

	"screener_service/internal/models"
	"screener_service/internal/modules/config"
	"screener_service/pkg/logger"
)

// Index is the in-memory ticker autocomplete list. The snapshot file is read
// once on first use and never refreshed within the process; cmd/fetchtickers
// rewrites it out of band. A missing or unreadable snapshot leaves the index
// empty, searches then return nothing.
type Index struct {
	path string

	once    sync.Once
	records []models.TickerRecord
}

func NewIndex(cfg *config.Config) *Index {
	return &Index{path: cfg.Tickers.File}
}

func NewIndexAt(path string) *Index {
	return &Index{path: path}
}

func (ix *Index) load() {
	data, err := os.ReadFile(ix.path)
	if err != nil {
		logger.Warn("ticker snapshot %s unavailable: %v", ix.path, err)
		return
	}

	var snapshot models.TickerSnapshot
	if err := sonic.Unmarshal(data, &snapshot); err != nil {
		logger.Error("ticker snapshot %s malformed: %v", ix.path, err)
		return
	}

	ix.records = snapshot.Tickers
	logger.Info("loaded %d tickers from snapshot of %s", len(ix.records), snapshot.UpdatedAt)
}

// Search returns up to limit records for the query, name-prefix matches
// first in list order, then name/description substring matches. Names are
// matched case-insensitively and never repeat across the two passes.
func (ix *Index) Search(query string, limit int) []models.TickerRecord {
	ix.once.Do(ix.load)

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.TickerRecord, 0, limit)
	if q == "" || limit <= 0 {
		return out
	}

	taken := make(map[string]struct{}, limit)

	for _, r := range ix.records {
		if len(out) >= limit {
			break
		}
		name := strings.ToLower(r.Name)
		if !strings.HasPrefix(name, q) {
			continue
		}
		if _, dup := taken[name]; dup {
			continue
		}
		taken[name] = struct{}{}
		out = append(out, r)
	}

	if len(out) < limit {
		for _, r := range ix.records {
			if len(out) >= limit {
				break
			}
			name := strings.ToLower(r.Name)
			if _, dup := taken[name]; dup {
				continue
			}
			if !strings.Contains(name, q) && !strings.Contains(strings.ToLower(r.Description), q) {
				continue
			}
			taken[name] = struct{}{}
			out = append(out, r)
		}
	}

	return out
}

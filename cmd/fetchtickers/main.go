// Refreshes the ticker snapshot consumed by the search index. Run from cron;
// the service itself never refetches within its lifetime.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"screener_service/internal/models"
	"screener_service/internal/modules/screener/service"
)

var snapshotColumns = []string{"name", "description", "exchange", "type"}

func fetchTickers(client *service.Client, limit int) ([]map[string]any, int, error) {
	payload := &service.ScanPayload{
		Columns: snapshotColumns,
		Range:   [2]int{0, limit},
	}
	total, rows, err := client.Scan(context.Background(), nil, payload)
	if err != nil {
		return nil, 0, errors.Wrap(err, "fetch tickers")
	}
	return rows, total, nil
}

func toRecords(rows []map[string]any, excluded map[string]struct{}) []models.TickerRecord {
	records := make([]models.TickerRecord, 0, len(rows))
	for _, row := range rows {
		r := models.TickerRecord{
			Name:        stringField(row, "name"),
			Description: stringField(row, "description"),
			Exchange:    stringField(row, "exchange"),
			Type:        stringField(row, "type"),
		}
		if r.Name == "" {
			continue
		}
		if _, skip := excluded[r.Exchange]; skip {
			continue
		}
		records = append(records, r)
	}
	return records
}

func stringField(row map[string]any, key string) string {
	s, _ := row[key].(string)
	return s
}

func saveSnapshot(path string, snapshot *models.TickerSnapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create data dir")
	}

	content, err := sonic.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal snapshot")
	}

	// Write-then-rename keeps a concurrent reader off a half-written file.
	temp := path + ".tmp"
	if err = os.WriteFile(temp, content, 0o644); err != nil {
		return errors.Wrap(err, "write temp snapshot")
	}
	if err = os.Rename(temp, path); err != nil {
		_ = os.Remove(temp)
		return errors.Wrap(err, "replace snapshot")
	}
	return nil
}

func main() {
	viper.SetConfigName(".fetchtickers")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetDefault("scanner.url", "https://scanner.tradingview.com")
	viper.SetDefault("output.file", "data/tickers.json")
	viper.SetDefault("fetch.limit", 25000)
	viper.SetDefault("fetch.exclude_exchanges", []string{"OTC"})
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	excluded := make(map[string]struct{})
	for _, e := range viper.GetStringSlice("fetch.exclude_exchanges") {
		excluded[e] = struct{}{}
	}

	start := time.Now()
	client := service.NewClientAt(viper.GetString("scanner.url"), 2*time.Minute)

	rows, total, err := fetchTickers(client, viper.GetInt("fetch.limit"))
	if err != nil {
		panic(fmt.Errorf("can't fetch tickers: %w", err))
	}
	fmt.Printf("total available: %d, fetched: %d\n", total, len(rows))

	records := toRecords(rows, excluded)
	fmt.Printf("after exchange exclusions: %d tickers\n", len(records))

	snapshot := models.NewTickerSnapshot(records)
	outFile := viper.GetString("output.file")
	if err := saveSnapshot(outFile, snapshot); err != nil {
		panic(fmt.Errorf("can't save snapshot: %w", err))
	}

	fmt.Printf("saved %d tickers to %s in %s\n", snapshot.Count, outFile, time.Since(start).Round(time.Second))
	fmt.Println("done")
}

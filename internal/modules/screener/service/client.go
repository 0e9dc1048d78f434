package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"screener_service/internal/modules/config"
)

// Client talks to the scanner HTTP endpoint. It is the only network
// collaborator of the service.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return NewClientAt(cfg.Scanner.BaseURL, cfg.Scanner.Timeout)
}

func NewClientAt(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type scanEnvelope struct {
	TotalCount int `json:"totalCount"`
	Data       []struct {
		S string `json:"s"`
		D []any  `json:"d"`
	} `json:"data"`
}

// requestMarket picks the URL segment: a single market scans its own
// endpoint, several go through global with the list in the payload.
func requestMarket(markets []string) string {
	switch len(markets) {
	case 0:
		return "america"
	case 1:
		return markets[0]
	default:
		return "global"
	}
}

// Scan posts the payload and zips each returned value row with the selected
// columns into a record, keeping the exchange-qualified symbol under
// "ticker". Returns the total match count reported by the scanner, which may
// exceed the number of rows in the page.
func (c *Client) Scan(ctx context.Context, markets []string, payload *ScanPayload) (int, []map[string]any, error) {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("Scan marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/scan", c.baseURL, requestMarket(markets))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("Scan new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("Scan do: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return 0, nil, fmt.Errorf("Scan http %d: %s", resp.StatusCode, string(data))
	}

	var envelope scanEnvelope
	if err := sonic.Unmarshal(data, &envelope); err != nil {
		return 0, nil, fmt.Errorf("Scan decode response: %w", err)
	}

	rows := make([]map[string]any, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		row := make(map[string]any, len(payload.Columns)+1)
		row["ticker"] = item.S
		for i, col := range payload.Columns {
			if i >= len(item.D) {
				break
			}
			row[col] = item.D[i]
		}
		rows = append(rows, row)
	}

	return envelope.TotalCount, rows, nil
}

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientScanZipsRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/america/scan", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"totalCount": 5000,
			"data": [
				{"s": "NASDAQ:AAPL", "d": ["AAPL", 189.5]},
				{"s": "NASDAQ:MSFT", "d": ["MSFT", 410.2]}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClientAt(srv.URL, time.Second)
	payload := &ScanPayload{Columns: []string{"name", "close"}, Range: [2]int{0, 2}}

	total, rows, err := client.Scan(context.Background(), []string{"america"}, payload)
	require.NoError(t, err)
	assert.Equal(t, 5000, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "NASDAQ:AAPL", rows[0]["ticker"])
	assert.Equal(t, "AAPL", rows[0]["name"])
	assert.Equal(t, 189.5, rows[0]["close"])
	assert.Equal(t, "MSFT", rows[1]["name"])
}

func TestClientScanMarketRouting(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"totalCount":0,"data":[]}`))
	}))
	defer srv.Close()

	client := NewClientAt(srv.URL, time.Second)
	payload := &ScanPayload{Columns: []string{"name"}, Range: [2]int{0, 1}}

	_, _, err := client.Scan(context.Background(), nil, payload)
	require.NoError(t, err)
	assert.Equal(t, "/america/scan", gotPath, "no markets defaults to america")

	_, _, err = client.Scan(context.Background(), []string{"germany"}, payload)
	require.NoError(t, err)
	assert.Equal(t, "/germany/scan", gotPath)

	_, _, err = client.Scan(context.Background(), []string{"america", "germany"}, payload)
	require.NoError(t, err)
	assert.Equal(t, "/global/scan", gotPath)
}

func TestClientScanShortValueRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalCount":1,"data":[{"s":"NYSE:GE","d":["GE"]}]}`))
	}))
	defer srv.Close()

	client := NewClientAt(srv.URL, time.Second)
	payload := &ScanPayload{Columns: []string{"name", "close"}, Range: [2]int{0, 1}}

	_, rows, err := client.Scan(context.Background(), nil, payload)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "GE", rows[0]["name"])
	_, hasClose := rows[0]["close"]
	assert.False(t, hasClose, "missing values stay absent instead of panicking")
}

func TestClientScanErrors(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream broke", http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClientAt(srv.URL, time.Second)
		_, _, err := client.Scan(context.Background(), nil, &ScanPayload{Columns: []string{"name"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := NewClientAt(srv.URL, time.Second)
		_, _, err := client.Scan(context.Background(), nil, &ScanPayload{Columns: []string{"name"}})
		require.Error(t, err)
	})

	t.Run("unreachable host", func(t *testing.T) {
		client := NewClientAt("http://127.0.0.1:1", 200*time.Millisecond)
		_, _, err := client.Scan(context.Background(), nil, &ScanPayload{Columns: []string{"name"}})
		require.Error(t, err)
	})
}

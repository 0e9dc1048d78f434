package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screener_service/internal/models"
)

func writeSnapshot(t *testing.T, records []models.TickerRecord) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickers.json")
	snapshot := models.NewTickerSnapshot(records)

	data, err := sonic.Marshal(snapshot)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func testRecords() []models.TickerRecord {
	return []models.TickerRecord{
		{Name: "GAAP", Description: "Generic Accounting ETF", Exchange: "AMEX", Type: "fund"},
		{Name: "AAPL", Description: "Apple Inc.", Exchange: "NASDAQ", Type: "stock"},
		{Name: "MSFT", Description: "Microsoft Corporation", Exchange: "NASDAQ", Type: "stock"},
		{Name: "AA", Description: "Alcoa Corporation", Exchange: "NYSE", Type: "stock"},
		{Name: "T", Description: "AT&T Inc.", Exchange: "NYSE", Type: "stock"},
	}
}

func TestSearchPrefixBeforeSubstring(t *testing.T) {
	ix := NewIndexAt(writeSnapshot(t, testRecords()))

	got := ix.Search("aa", 10)
	require.Len(t, got, 3)
	// Prefix matches first in list order, then substring matches.
	assert.Equal(t, "AAPL", got[0].Name)
	assert.Equal(t, "AA", got[1].Name)
	assert.Equal(t, "GAAP", got[2].Name)
}

func TestSearchDescriptionSubstring(t *testing.T) {
	ix := NewIndexAt(writeSnapshot(t, testRecords()))

	got := ix.Search("apple", 10)
	require.Len(t, got, 1)
	assert.Equal(t, "AAPL", got[0].Name)
}

func TestSearchCaseInsensitive(t *testing.T) {
	ix := NewIndexAt(writeSnapshot(t, testRecords()))

	assert.Len(t, ix.Search("msft", 10), 1)
	assert.Len(t, ix.Search("MsFt", 10), 1)
	assert.Len(t, ix.Search("microsoft", 10), 1)
}

func TestSearchLimit(t *testing.T) {
	ix := NewIndexAt(writeSnapshot(t, testRecords()))

	got := ix.Search("a", 2)
	require.Len(t, got, 2)
	assert.Equal(t, "AAPL", got[0].Name)
	assert.Equal(t, "AA", got[1].Name)
}

func TestSearchNoDuplicateNames(t *testing.T) {
	records := append(testRecords(), models.TickerRecord{
		Name: "AAPL", Description: "Apple Inc. (dup)", Exchange: "NEO", Type: "dr",
	})
	ix := NewIndexAt(writeSnapshot(t, records))

	got := ix.Search("aapl", 10)
	require.Len(t, got, 1)
	assert.Equal(t, "NASDAQ", got[0].Exchange, "first occurrence wins")
}

func TestSearchEmptyQuery(t *testing.T) {
	ix := NewIndexAt(writeSnapshot(t, testRecords()))

	assert.Empty(t, ix.Search("", 10))
	assert.Empty(t, ix.Search("   ", 10))
	assert.Empty(t, ix.Search("aapl", 0))
}

func TestSearchMissingSnapshot(t *testing.T) {
	ix := NewIndexAt(filepath.Join(t.TempDir(), "missing.json"))

	got := ix.Search("aapl", 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"updatedAt":"","count":0,"tickers":[]}`), 0o644))
	ix := NewIndexAt(path)

	assert.Empty(t, ix.Search("aapl", 10))
}

func TestSearchMalformedSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickers.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))
	ix := NewIndexAt(path)

	assert.Empty(t, ix.Search("aapl", 10))
}

func TestSearchLoadsOnce(t *testing.T) {
	path := writeSnapshot(t, testRecords())
	ix := NewIndexAt(path)

	require.Len(t, ix.Search("aapl", 10), 1)

	// Rewriting the file must not change results within the process.
	require.NoError(t, os.WriteFile(path, []byte(`{"tickers":[]}`), 0o644))
	assert.Len(t, ix.Search("aapl", 10), 1)
}

package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"screener_service/internal/models"
	screener "screener_service/internal/modules/screener/service"
	"screener_service/pkg/logger"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

type Scanner interface {
	Scan(ctx context.Context, req *models.ScanRequest) (*models.ScanResponse, error)
}

type TickerSearcher interface {
	Search(query string, limit int) []models.TickerRecord
}

type Handler struct {
	scanner Scanner
	tickers TickerSearcher
}

func NewHandler(scanner Scanner, tickers TickerSearcher) *Handler {
	return &Handler{
		scanner: scanner,
		tickers: tickers,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) Fields(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"fields":     screener.Fields(),
		"categories": screener.Categories(),
	})
}

func (h *Handler) SearchTickers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusUnprocessableEntity, "q is required")
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSearchLimit {
			writeError(w, http.StatusUnprocessableEntity, "limit must be an integer between 1 and 50")
			return
		}
		limit = n
	}

	results := h.tickers.Search(query, limit)
	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "cannot read request body")
		return
	}

	var req models.ScanRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "malformed request body")
		return
	}

	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp, err := h.scanner.Scan(r.Context(), &req)
	if err != nil {
		var filterErr *models.FilterError
		if errors.As(err, &filterErr) {
			writeError(w, http.StatusBadRequest, filterErr.Error())
			return
		}
		logger.Error("scan failed: %v", err)
		writeError(w, http.StatusInternalServerError, "screener query failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

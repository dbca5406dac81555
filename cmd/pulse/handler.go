package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/djcade32/stock-pulse/internal/analyze"
	"github.com/djcade32/stock-pulse/internal/cache"
	"github.com/djcade32/stock-pulse/internal/ensure"
	"github.com/djcade32/stock-pulse/internal/marketdata"
	"github.com/djcade32/stock-pulse/internal/store"
)

// ensureRequest is the body of POST /v1/ensure.
type ensureRequest struct {
	AccountID string   `json:"accountId"`
	Tickers   []string `json:"tickers"`
}

// newHandler wires the HTTP surface: health, the ensure endpoint, and the
// cached market-data pass-throughs.
func newHandler(
	pool *pgxpool.Pool,
	md *marketdata.Service,
	st *store.Store,
	orchestrator *ensure.Orchestrator,
	analyzer *analyze.Service,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status     string         `json:"status"`
			Components map[string]any `json:"components"`
		}{
			Status:     "healthy",
			Components: make(map[string]any),
		}

		if err := pool.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			health.Components["postgres"] = map[string]string{
				"status": "disconnected",
				"error":  err.Error(),
			}
		} else {
			health.Components["postgres"] = "connected"
		}

		w.Header().Set("Content-Type", "application/json")
		if health.Status == "unhealthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(health)
	})

	mux.HandleFunc("POST /v1/ensure", func(w http.ResponseWriter, r *http.Request) {
		var req ensureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.AccountID == "" {
			http.Error(w, "accountId is required", http.StatusBadRequest)
			return
		}

		// Per-ticker failures and deadline cuts are data in the report,
		// never an error status.
		report := orchestrator.Run(r.Context(), req.Tickers)

		if err := st.TouchEnsured(r.Context(), req.AccountID); err != nil {
			logger.Warn("failed to stamp ensure run",
				"account_id", req.AccountID,
				"err", err,
			)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})

	mux.HandleFunc("POST /v1/calendar/refresh", func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")

		written, deduped, err := analyzer.RefreshCalendar(r.Context(), from, to)
		if err != nil {
			logger.Warn("calendar refresh failed", "err", err)
			http.Error(w, "vendor unavailable", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int{
			"written": written,
			"deduped": deduped,
		})
	})

	mux.HandleFunc("GET /v1/quote", func(w http.ResponseWriter, r *http.Request) {
		symbol := r.URL.Query().Get("symbol")
		if symbol == "" {
			http.Error(w, "symbol is required", http.StatusBadRequest)
			return
		}

		quote, err := md.GetQuote(r.Context(), symbol)
		if err != nil {
			logger.Warn("quote fetch failed", "symbol", symbol, "err", err)
			http.Error(w, "vendor unavailable", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"symbol":        quote.Symbol,
			"current":       quote.Current,
			"change":        quote.Change,
			"percentChange": quote.PercentChange,
			"high":          quote.High,
			"low":           quote.Low,
			"open":          quote.Open,
			"prevClose":     quote.PrevClose,
		})
	})

	mux.HandleFunc("GET /v1/logo", func(w http.ResponseWriter, r *http.Request) {
		symbol := r.URL.Query().Get("symbol")
		if symbol == "" {
			http.Error(w, "symbol is required", http.StatusBadRequest)
			return
		}

		logo, err := md.GetLogo(r.Context(), symbol)
		if err != nil {
			logger.Warn("logo fetch failed", "symbol", symbol, "err", err)
			http.Error(w, "vendor unavailable", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", cache.LogoCacheControlMaxAge))
		json.NewEncoder(w).Encode(map[string]string{
			"symbol": logo.Symbol,
			"url":    logo.URL,
		})
	})

	mux.HandleFunc("GET /v1/symbols", func(w http.ResponseWriter, r *http.Request) {
		exchange := r.URL.Query().Get("exchange")
		if exchange == "" {
			exchange = "US"
		}

		list, err := md.GetSymbols(r.Context(), exchange)
		if err != nil {
			logger.Warn("symbols fetch failed", "exchange", exchange, "err", err)
			http.Error(w, "vendor unavailable", http.StatusBadGateway)
			return
		}

		out := make([]map[string]string, 0, len(list))
		for _, sym := range list {
			out = append(out, map[string]string{
				"symbol":      sym.Symbol,
				"description": sym.Description,
				"type":        sym.Type,
				"currency":    sym.Currency,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"exchange": exchange,
			"count":    len(out),
			"symbols":  out,
		})
	})

	return mux
}

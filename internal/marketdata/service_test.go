package marketdata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/djcade32/stock-pulse/internal/api"
)

func newQuoteServer(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Path {
		case "/quote":
			json.NewEncoder(w).Encode(map[string]any{"c": 100.5, "pc": 99.0})
		case "/stock/profile":
			json.NewEncoder(w).Encode(map[string]string{"logo": "https://cdn.example.com/logo.png"})
		case "/stock/symbol":
			json.NewEncoder(w).Encode([]map[string]string{{"symbol": "AAPL"}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
}

func TestGetQuote_CachesWithinTTL(t *testing.T) {
	var calls atomic.Int32
	server := newQuoteServer(t, &calls)
	defer server.Close()

	svc := New(Config{}, api.NewClient(server.URL, ""), nil)

	ctx := context.Background()
	first, err := svc.GetQuote(ctx, "AAPL")
	if err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}
	second, err := svc.GetQuote(ctx, "AAPL")
	if err != nil {
		t.Fatalf("GetQuote (cached) failed: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("vendor calls = %d, want 1", got)
	}
	if first.Current != 100.5 || second.Current != 100.5 {
		t.Errorf("quotes = %v / %v, want Current 100.5", first, second)
	}
}

func TestGetQuote_RefetchesAfterExpiry(t *testing.T) {
	var calls atomic.Int32
	server := newQuoteServer(t, &calls)
	defer server.Close()

	svc := New(Config{QuoteTTL: 10 * time.Millisecond}, api.NewClient(server.URL, ""), nil)

	ctx := context.Background()
	if _, err := svc.GetQuote(ctx, "AAPL"); err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := svc.GetQuote(ctx, "AAPL"); err != nil {
		t.Fatalf("GetQuote after expiry failed: %v", err)
	}

	if got := calls.Load(); got != 2 {
		t.Errorf("vendor calls = %d, want 2", got)
	}
}

func TestGetQuote_DistinctSymbolsAreDistinctKeys(t *testing.T) {
	var calls atomic.Int32
	server := newQuoteServer(t, &calls)
	defer server.Close()

	svc := New(Config{}, api.NewClient(server.URL, ""), nil)

	ctx := context.Background()
	svc.GetQuote(ctx, "AAPL")
	svc.GetQuote(ctx, "MSFT")

	if got := calls.Load(); got != 2 {
		t.Errorf("vendor calls = %d, want 2", got)
	}
}

func TestGetLogo_Caches(t *testing.T) {
	var calls atomic.Int32
	server := newQuoteServer(t, &calls)
	defer server.Close()

	svc := New(Config{}, api.NewClient(server.URL, ""), nil)

	ctx := context.Background()
	logo, err := svc.GetLogo(ctx, "AAPL")
	if err != nil {
		t.Fatalf("GetLogo failed: %v", err)
	}
	if logo.URL != "https://cdn.example.com/logo.png" {
		t.Errorf("URL = %s", logo.URL)
	}

	svc.GetLogo(ctx, "AAPL")
	if got := calls.Load(); got != 1 {
		t.Errorf("vendor calls = %d, want 1", got)
	}
}

func TestGetSymbols_Caches(t *testing.T) {
	var calls atomic.Int32
	server := newQuoteServer(t, &calls)
	defer server.Close()

	svc := New(Config{}, api.NewClient(server.URL, ""), nil)

	ctx := context.Background()
	list, err := svc.GetSymbols(ctx, "US")
	if err != nil {
		t.Fatalf("GetSymbols failed: %v", err)
	}
	if len(list) != 1 || list[0].Symbol != "AAPL" {
		t.Errorf("list = %+v", list)
	}

	svc.GetSymbols(ctx, "US")
	if got := calls.Load(); got != 1 {
		t.Errorf("vendor calls = %d, want 1", got)
	}
}

func TestGetQuote_ErrorNotCached(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	svc := New(Config{}, api.NewClient(server.URL, ""), nil)

	ctx := context.Background()
	if _, err := svc.GetQuote(ctx, "AAPL"); err == nil {
		t.Fatal("GetQuote succeeded, want error")
	}
	if _, err := svc.GetQuote(ctx, "AAPL"); err == nil {
		t.Fatal("GetQuote (second) succeeded, want error")
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("vendor calls = %d, want 2 (errors are not cached)", got)
	}
}

func TestWarmQuotes(t *testing.T) {
	var calls atomic.Int32
	server := newQuoteServer(t, &calls)
	defer server.Close()

	svc := New(Config{WarmConcurrency: 2}, api.NewClient(server.URL, ""), nil)

	symbols := []string{"AAPL", "MSFT", "GOOG"}
	if err := svc.WarmQuotes(context.Background(), symbols); err != nil {
		t.Fatalf("WarmQuotes failed: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("vendor calls = %d, want 3", got)
	}

	// All quotes should now be served from cache.
	for _, symbol := range symbols {
		if _, err := svc.GetQuote(context.Background(), symbol); err != nil {
			t.Errorf("GetQuote(%s) after warm-up failed: %v", symbol, err)
		}
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("vendor calls = %d after cached reads, want 3", got)
	}
}

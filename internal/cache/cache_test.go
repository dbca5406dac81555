package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for expiry tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)}
}

func TestCache_SetGet(t *testing.T) {
	clk := newFakeClock()
	c := newWithClock[string](clk.Now)

	c.Set("q:AAPL", "190.25", 10*time.Second)

	got, ok := c.Get("q:AAPL")
	if !ok {
		t.Fatal("Get returned absent immediately after Set")
	}
	if got != "190.25" {
		t.Errorf("Get = %q, want %q", got, "190.25")
	}
}

func TestCache_GetMissing(t *testing.T) {
	c := New[string]()

	if _, ok := c.Get("q:MSFT"); ok {
		t.Error("Get returned a value for a key that was never set")
	}
}

func TestCache_Expiry(t *testing.T) {
	clk := newFakeClock()
	c := newWithClock[int](clk.Now)

	c.Set("symbols:US", 42, time.Minute)

	clk.Advance(59 * time.Second)
	if _, ok := c.Get("symbols:US"); !ok {
		t.Error("entry expired before its TTL elapsed")
	}

	clk.Advance(2 * time.Second)
	if _, ok := c.Get("symbols:US"); ok {
		t.Error("entry returned after its TTL elapsed")
	}
}

func TestCache_ExpiryAtExactDeadline(t *testing.T) {
	clk := newFakeClock()
	c := newWithClock[int](clk.Now)

	c.Set("k", 1, time.Second)
	clk.Advance(time.Second)

	// now == expiresAt is expired: Get requires now < expiresAt.
	if _, ok := c.Get("k"); ok {
		t.Error("entry returned at exact expiry instant")
	}
}

func TestCache_OverwriteResetsTTL(t *testing.T) {
	clk := newFakeClock()
	c := newWithClock[string](clk.Now)

	c.Set("logo:MSFT", "v1", 10*time.Second)
	clk.Advance(8 * time.Second)

	// Overwrite two seconds before expiry with a fresh window.
	c.Set("logo:MSFT", "v2", 10*time.Second)
	clk.Advance(8 * time.Second)

	got, ok := c.Get("logo:MSFT")
	if !ok {
		t.Fatal("overwritten entry expired on the original window")
	}
	if got != "v2" {
		t.Errorf("Get = %q, want %q", got, "v2")
	}
}

func TestCache_SweepRemovesOnlyExpired(t *testing.T) {
	clk := newFakeClock()
	c := newWithClock[int](clk.Now)

	c.Set("short", 1, time.Second)
	c.Set("long", 2, time.Hour)

	clk.Advance(2 * time.Second)

	if removed := c.Sweep(); removed != 1 {
		t.Errorf("Sweep removed %d entries, want 1", removed)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d after sweep, want 1", c.Len())
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("sweep removed a live entry")
	}
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int]()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("q:SYM%d", j%10)
				c.Set(key, n*1000+j, time.Minute)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() != 10 {
		t.Errorf("Len = %d, want 10", c.Len())
	}
}

func TestKeyHelpers(t *testing.T) {
	if got := QuoteKey("AAPL"); got != "q:AAPL" {
		t.Errorf("QuoteKey = %q, want q:AAPL", got)
	}
	if got := LogoKey("MSFT"); got != "logo:MSFT" {
		t.Errorf("LogoKey = %q, want logo:MSFT", got)
	}
	if got := SymbolsKey("US"); got != "symbols:US" {
		t.Errorf("SymbolsKey = %q, want symbols:US", got)
	}
}

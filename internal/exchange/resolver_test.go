package exchange

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// quoteServer serves a fixed rate table and counts requests.
func quoteServer(t *testing.T, rates string, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprintf(w, `{"base": "USD", "rates": %s}`, rates)
	}))
}

func failingServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
}

func TestResolveSameCurrencySkipsNetwork(t *testing.T) {
	var calls atomic.Int64
	srv := quoteServer(t, `{"EUR": 0.9}`, &calls)
	defer srv.Close()

	r := NewResolver(NewClient(srv.URL))
	for _, code := range []string{"USD", "EUR", "KRW"} {
		rate := r.Resolve(context.Background(), code, code)
		if rate.Value != 1.0 {
			t.Fatalf("Resolve(%s, %s).Value = %v, want 1.0", code, code, rate.Value)
		}
		if rate.Source != SourceSame {
			t.Fatalf("Resolve(%s, %s).Source = %v, want SourceSame", code, code, rate.Source)
		}
	}
	if calls.Load() != 0 {
		t.Fatalf("network calls = %d, want 0", calls.Load())
	}
}

func TestResolveLive(t *testing.T) {
	var calls atomic.Int64
	srv := quoteServer(t, `{"EUR": 0.92, "GBP": 0.79}`, &calls)
	defer srv.Close()

	r := NewResolver(NewClient(srv.URL))
	rate := r.Resolve(context.Background(), "USD", "EUR")
	if rate.Source != SourceLive {
		t.Fatalf("Source = %v, want SourceLive", rate.Source)
	}
	if rate.Value != 0.92 {
		t.Fatalf("Value = %v, want 0.92", rate.Value)
	}
}

func TestResolveFallsBackOnTransportFailure(t *testing.T) {
	srv := failingServer(t)
	defer srv.Close()

	r := NewResolver(NewClient(srv.URL))
	for pair, want := range fallbackRates {
		rate := r.Resolve(context.Background(), pair.From, pair.To)
		if rate.Source != SourceFallback {
			t.Fatalf("%s/%s Source = %v, want SourceFallback", pair.From, pair.To, rate.Source)
		}
		if rate.Value != want {
			t.Fatalf("%s/%s Value = %v, want %v", pair.From, pair.To, rate.Value, want)
		}
	}
}

func TestResolveIdentityForUnknownPair(t *testing.T) {
	srv := failingServer(t)
	defer srv.Close()

	// KRW/CHF is in neither the live response nor the static table.
	r := NewResolver(NewClient(srv.URL))
	rate := r.Resolve(context.Background(), "KRW", "CHF")
	if rate.Source != SourceIdentity {
		t.Fatalf("Source = %v, want SourceIdentity", rate.Source)
	}
	if rate.Value != 1.0 {
		t.Fatalf("Value = %v, want 1.0", rate.Value)
	}
}

func TestResolveFallsBackWhenTargetMissing(t *testing.T) {
	var calls atomic.Int64
	srv := quoteServer(t, `{"EUR": 0.92}`, &calls)
	defer srv.Close()

	r := NewResolver(NewClient(srv.URL))
	rate := r.Resolve(context.Background(), "USD", "JPY")
	if rate.Source != SourceFallback {
		t.Fatalf("Source = %v, want SourceFallback", rate.Source)
	}
	if rate.Value != 150 {
		t.Fatalf("Value = %v, want 150", rate.Value)
	}
}

func TestResolveCachesWithinWindow(t *testing.T) {
	var calls atomic.Int64
	srv := quoteServer(t, `{"EUR": 0.92}`, &calls)
	defer srv.Close()

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	r := NewResolver(NewClient(srv.URL), WithNow(now))

	first := r.Resolve(context.Background(), "USD", "EUR")
	clock = clock.Add(29 * time.Minute)
	second := r.Resolve(context.Background(), "USD", "EUR")

	if calls.Load() != 1 {
		t.Fatalf("network calls = %d, want 1 within freshness window", calls.Load())
	}
	if first != second {
		t.Fatalf("cached rate %+v != first rate %+v", second, first)
	}

	clock = clock.Add(2 * time.Minute) // 31 minutes since fetch
	third := r.Resolve(context.Background(), "USD", "EUR")
	if calls.Load() != 2 {
		t.Fatalf("network calls = %d, want 2 after window expiry", calls.Load())
	}
	if third.FetchedAt != clock {
		t.Fatalf("re-resolved FetchedAt = %v, want %v", third.FetchedAt, clock)
	}
}

func TestResolveCustomTTL(t *testing.T) {
	var calls atomic.Int64
	srv := quoteServer(t, `{"EUR": 0.92}`, &calls)
	defer srv.Close()

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	r := NewResolver(NewClient(srv.URL), WithNow(now), WithTTL(time.Minute))
	r.Resolve(context.Background(), "USD", "EUR")
	clock = clock.Add(61 * time.Second)
	r.Resolve(context.Background(), "USD", "EUR")

	if calls.Load() != 2 {
		t.Fatalf("network calls = %d, want 2 with 1m TTL", calls.Load())
	}
}

func TestFallbackOverrides(t *testing.T) {
	srv := failingServer(t)
	defer srv.Close()

	r := NewResolver(NewClient(srv.URL), WithFallbackOverrides(map[Pair]float64{
		{"USD", "EUR"}: 0.95,
		{"KRW", "CHF"}: 0.00075,
		{"USD", "GBP"}: -1, // ignored
	}))

	rate := r.Resolve(context.Background(), "USD", "EUR")
	if rate.Value != 0.95 || rate.Source != SourceFallback {
		t.Fatalf("overridden pair = %+v, want 0.95 fallback", rate)
	}

	rate = r.Resolve(context.Background(), "KRW", "CHF")
	if rate.Value != 0.00075 || rate.Source != SourceFallback {
		t.Fatalf("added pair = %+v, want 0.00075 fallback", rate)
	}

	rate = r.Resolve(context.Background(), "USD", "GBP")
	if rate.Value != 0.75 {
		t.Fatalf("non-positive override applied: Value = %v, want 0.75", rate.Value)
	}
}

func TestCachedAndExpire(t *testing.T) {
	var calls atomic.Int64
	srv := quoteServer(t, `{"EUR": 0.92}`, &calls)
	defer srv.Close()

	r := NewResolver(NewClient(srv.URL))

	if _, fresh := r.Cached("USD", "EUR"); fresh {
		t.Fatal("Cached reported fresh entry before any resolution")
	}

	r.Resolve(context.Background(), "USD", "EUR")
	cached, fresh := r.Cached("USD", "EUR")
	if !fresh {
		t.Fatal("Cached reported stale entry right after resolution")
	}
	if cached.Value != 0.92 {
		t.Fatalf("cached Value = %v, want 0.92", cached.Value)
	}

	r.Expire("USD", "EUR")
	if _, ok := r.Cached("USD", "EUR"); ok {
		t.Fatal("Cached returned entry after Expire")
	}

	r.Resolve(context.Background(), "USD", "EUR")
	if calls.Load() != 2 {
		t.Fatalf("network calls = %d, want 2 after Expire", calls.Load())
	}
}

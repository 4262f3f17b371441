package exchange

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQuotesParsesRateTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v4/latest/USD" {
			t.Errorf("request path = %q, want /v4/latest/USD", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"base": "USD", "rates": {"EUR": 0.92, "JPY": 147.3}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	rates, err := c.Quotes(context.Background(), "USD")
	if err != nil {
		t.Fatalf("Quotes returned error: %v", err)
	}
	if rates["EUR"] != 0.92 {
		t.Fatalf("rates[EUR] = %v, want 0.92", rates["EUR"])
	}
	if rates["JPY"] != 147.3 {
		t.Fatalf("rates[JPY] = %v, want 147.3", rates["JPY"])
	}
}

func TestQuotesRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Quotes(context.Background(), "USD"); err == nil {
		t.Fatal("Quotes returned nil error for 429 response")
	}
}

func TestQuotesRejectsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Quotes(context.Background(), "USD"); err == nil {
		t.Fatal("Quotes returned nil error for malformed body")
	}
}

func TestQuoteMissingTarget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates": {"EUR": 0.92}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Quote(context.Background(), "USD", "KRW")
	if !errors.Is(err, ErrMissingTarget) {
		t.Fatalf("Quote error = %v, want ErrMissingTarget", err)
	}
}

func TestQuoteRejectsNonPositiveRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates": {"EUR": 0}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Quote(context.Background(), "USD", "EUR"); err == nil {
		t.Fatal("Quote returned nil error for zero rate")
	}
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	c := NewClient("  ")
	if c.baseURL != defaultBaseURL {
		t.Fatalf("baseURL = %q, want %q", c.baseURL, defaultBaseURL)
	}
	c = NewClient("http://example.com/")
	if c.baseURL != "http://example.com" {
		t.Fatalf("baseURL = %q, want trailing slash trimmed", c.baseURL)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/exchange"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.General.State != "California" {
		t.Fatalf("default state = %q, want California", cfg.General.State)
	}
	if cfg.General.DurationMonths != 12 {
		t.Fatalf("default duration = %d, want 12", cfg.General.DurationMonths)
	}
	if cfg.Rates.TTLMinutes != 30 {
		t.Fatalf("default TTL = %d, want 30", cfg.Rates.TTLMinutes)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.State = "Texas"
	cfg.General.HomeCurrency = "INR"
	cfg.General.DurationMonths = 24
	cfg.Rates.Fallback = map[string]float64{"USD/INR": 84.5}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.General.State != "Texas" {
		t.Fatalf("state = %q, want Texas", loaded.General.State)
	}
	if loaded.General.HomeCurrency != "INR" {
		t.Fatalf("home currency = %q, want INR", loaded.General.HomeCurrency)
	}
	if loaded.Rates.Fallback["USD/INR"] != 84.5 {
		t.Fatalf("fallback override = %v, want 84.5", loaded.Rates.Fallback["USD/INR"])
	}
}

func TestLoadNormalizesInvalidValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	raw := `[general]
state = "Narnia"
home_currency = "ZZZ"
study_currency = "EUR"
duration_months = 100

[rates]
ttl_minutes = -5
`
	cfgDir := filepath.Join(dir, "studentbudget")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.General.State != "California" {
		t.Fatalf("state = %q, want normalized default", cfg.General.State)
	}
	if cfg.General.HomeCurrency != "USD" {
		t.Fatalf("home currency = %q, want normalized default", cfg.General.HomeCurrency)
	}
	if cfg.General.StudyCurrency != "EUR" {
		t.Fatalf("study currency = %q, want EUR kept", cfg.General.StudyCurrency)
	}
	if cfg.General.DurationMonths != 60 {
		t.Fatalf("duration = %d, want clamped 60", cfg.General.DurationMonths)
	}
	if cfg.RateTTL() != 30*time.Minute {
		t.Fatalf("TTL = %v, want 30m", cfg.RateTTL())
	}
}

func TestFallbackOverridesFiltersBadEntries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rates.Fallback = map[string]float64{
		"usd/eur": 0.95,  // lowercased keys accepted
		"USDEUR":  0.9,   // no separator
		"USD/ZZZ": 1.5,   // unknown currency
		"USD/JPY": -10,   // non-positive
		"KRW/CHF": 0.0008,
	}

	got := cfg.FallbackOverrides()
	if len(got) != 2 {
		t.Fatalf("overrides len = %d, want 2: %v", len(got), got)
	}
	if got[exchange.Pair{From: "USD", To: "EUR"}] != 0.95 {
		t.Fatalf("USD/EUR override missing: %v", got)
	}
	if got[exchange.Pair{From: "KRW", To: "CHF"}] != 0.0008 {
		t.Fatalf("KRW/CHF override missing: %v", got)
	}
}

// Package config loads and saves the planner's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/budget"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/exchange"
	"github.com/Lakshyaaaaaaaaaaa/student-budget-planner3/internal/reference"

	"github.com/BurntSushi/toml"
)

// Config holds all studentbudget configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Rates      RatesConfig      `toml:"rates"`
}

// GeneralConfig holds session defaults.
type GeneralConfig struct {
	State          string `toml:"state"`
	HomeCurrency   string `toml:"home_currency"`
	StudyCurrency  string `toml:"study_currency"`
	DurationMonths int    `toml:"duration_months"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// RatesConfig holds exchange-rate resolution settings.
type RatesConfig struct {
	BaseURL    string `toml:"base_url,omitempty"`
	TTLMinutes int    `toml:"ttl_minutes"`
	// Fallback overrides static pair rates, keyed "FROM/TO", e.g. "USD/EUR".
	Fallback map[string]float64 `toml:"fallback,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			State:          "California",
			HomeCurrency:   "USD",
			StudyCurrency:  "USD",
			DurationMonths: budget.DefaultMonths,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Rates: RatesConfig{
			TTLMinutes: 30,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "studentbudget")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "studentbudget")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Out-of-range values are normalized so the rest of the program never sees
// an unknown state, currency, or duration.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	def := DefaultConfig()
	if _, ok := reference.Lookup(c.General.State); !ok {
		c.General.State = def.General.State
	}
	if !reference.IsCurrency(c.General.HomeCurrency) {
		c.General.HomeCurrency = def.General.HomeCurrency
	}
	if !reference.IsCurrency(c.General.StudyCurrency) {
		c.General.StudyCurrency = def.General.StudyCurrency
	}
	c.General.DurationMonths = budget.ClampMonths(c.General.DurationMonths)
	if c.Rates.TTLMinutes <= 0 {
		c.Rates.TTLMinutes = def.Rates.TTLMinutes
	}
}

// FallbackOverrides converts the configured "FROM/TO" keyed overrides into
// exchange pairs, skipping malformed keys, unknown currencies, and
// non-positive rates.
func (c Config) FallbackOverrides() map[exchange.Pair]float64 {
	if len(c.Rates.Fallback) == 0 {
		return nil
	}
	overrides := make(map[exchange.Pair]float64, len(c.Rates.Fallback))
	for key, rate := range c.Rates.Fallback {
		from, to, ok := strings.Cut(strings.ToUpper(key), "/")
		if !ok || rate <= 0 {
			continue
		}
		if !reference.IsCurrency(from) || !reference.IsCurrency(to) {
			continue
		}
		overrides[exchange.Pair{From: from, To: to}] = rate
	}
	return overrides
}

// RateTTL returns the configured freshness window.
func (c Config) RateTTL() time.Duration {
	return time.Duration(c.Rates.TTLMinutes) * time.Minute
}

// NewResolver builds a rate resolver from the configured live source,
// freshness window, and fallback overrides.
func (c Config) NewResolver() *exchange.Resolver {
	return exchange.NewResolver(
		exchange.NewClient(c.Rates.BaseURL),
		exchange.WithTTL(c.RateTTL()),
		exchange.WithFallbackOverrides(c.FallbackOverrides()),
	)
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

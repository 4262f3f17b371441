package exchange

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is the freshness window during which a resolved rate is reused
// without hitting the live source again.
const DefaultTTL = 30 * time.Minute

// Source records which stage of the resolution pipeline produced a rate.
type Source int

const (
	// SourceSame means from and to were the same currency.
	SourceSame Source = iota
	// SourceLive means the rate came from the live quote API.
	SourceLive
	// SourceFallback means the live source failed and a static approximate
	// rate was used.
	SourceFallback
	// SourceIdentity means the pair was absent even from the static table and
	// 1.0 was returned as a last resort. The value is an approximation, not a
	// real rate; callers that need to know must check this source rather than
	// compare the value against 1.0 (SourceSame also yields 1.0).
	SourceIdentity
)

// String returns a short label for the source stage.
func (s Source) String() string {
	switch s {
	case SourceSame:
		return "same"
	case SourceLive:
		return "live"
	case SourceFallback:
		return "fallback"
	case SourceIdentity:
		return "identity"
	default:
		return "unknown"
	}
}

// Rate is a resolved conversion rate: 1 unit of From = Value units of To.
type Rate struct {
	From      string
	To        string
	Value     float64
	Source    Source
	FetchedAt time.Time
}

// Resolver resolves currency pairs through a live → static → identity
// pipeline and caches results per pair for a freshness window. The cache is
// owned by the resolver, never shared across sessions.
type Resolver struct {
	client    *Client
	ttl       time.Duration
	now       func() time.Time
	overrides map[Pair]float64

	mu    sync.Mutex
	cache map[Pair]Rate
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTTL overrides the freshness window.
func WithTTL(ttl time.Duration) Option {
	return func(r *Resolver) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithNow injects the clock used for freshness checks.
func WithNow(now func() time.Time) Option {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// WithFallbackOverrides adds or replaces static fallback rates for specific
// pairs. Non-positive values are ignored.
func WithFallbackOverrides(overrides map[Pair]float64) Option {
	return func(r *Resolver) {
		for pair, rate := range overrides {
			if rate > 0 {
				r.overrides[pair] = rate
			}
		}
	}
}

// NewResolver creates a resolver backed by the given quote client.
func NewResolver(client *Client, opts ...Option) *Resolver {
	r := &Resolver{
		client:    client,
		ttl:       DefaultTTL,
		now:       time.Now,
		overrides: make(map[Pair]float64),
		cache:     make(map[Pair]Rate),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the conversion rate for a pair. It never fails: live
// lookup errors demote the result to the static table, and unknown pairs
// degrade to an identity rate. Within the freshness window the cached value
// is returned without a network call.
func (r *Resolver) Resolve(ctx context.Context, from, to string) Rate {
	if from == to {
		return Rate{From: from, To: to, Value: 1.0, Source: SourceSame, FetchedAt: r.now()}
	}

	pair := Pair{From: from, To: to}

	r.mu.Lock()
	cached, ok := r.cache[pair]
	r.mu.Unlock()
	if ok && r.now().Sub(cached.FetchedAt) < r.ttl {
		return cached
	}

	rate := r.resolve(ctx, from, to)

	r.mu.Lock()
	r.cache[pair] = rate
	r.mu.Unlock()

	return rate
}

// resolve runs the live → static → identity pipeline without consulting the
// cache.
func (r *Resolver) resolve(ctx context.Context, from, to string) Rate {
	if r.client != nil {
		if value, err := r.client.Quote(ctx, from, to); err == nil {
			return Rate{From: from, To: to, Value: value, Source: SourceLive, FetchedAt: r.now()}
		}
	}

	if value, ok := r.staticRate(from, to); ok {
		return Rate{From: from, To: to, Value: value, Source: SourceFallback, FetchedAt: r.now()}
	}

	return Rate{From: from, To: to, Value: 1.0, Source: SourceIdentity, FetchedAt: r.now()}
}

func (r *Resolver) staticRate(from, to string) (float64, bool) {
	if rate, ok := r.overrides[Pair{From: from, To: to}]; ok {
		return rate, true
	}
	return FallbackRate(from, to)
}

// TTL returns the freshness window used by this resolver.
func (r *Resolver) TTL() time.Duration {
	return r.ttl
}

// Cached returns the cached rate for a pair and whether it is still within
// the freshness window. It never triggers a resolution.
func (r *Resolver) Cached(from, to string) (Rate, bool) {
	r.mu.Lock()
	cached, ok := r.cache[Pair{From: from, To: to}]
	r.mu.Unlock()
	if !ok {
		return Rate{}, false
	}
	return cached, r.now().Sub(cached.FetchedAt) < r.ttl
}

// Expire drops the cached entry for a pair so the next Resolve re-runs the
// full pipeline.
func (r *Resolver) Expire(from, to string) {
	r.mu.Lock()
	delete(r.cache, Pair{From: from, To: to})
	r.mu.Unlock()
}

// Package ratelimit provides a per-key token bucket limiter. Each key,
// typically a client IP, gets its own independent bucket.
package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// PerKey manages one token bucket per key.
type PerKey struct {
	mu      sync.RWMutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// New creates a per-key limiter allowing rps requests per second with the
// given burst per key.
func New(rps float64, burst int) *PerKey {
	return &PerKey{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(rps),
		burst:   burst,
	}
}

// Allow reports whether a request for the given key may proceed now.
func (p *PerKey) Allow(key string) bool {
	return p.bucket(key).Allow()
}

// bucket returns the limiter for a key, creating one if needed.
func (p *PerKey) bucket(key string) *rate.Limiter {
	p.mu.RLock()
	limiter, exists := p.buckets[key]
	p.mu.RUnlock()
	if exists {
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock.
	if limiter, exists = p.buckets[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(p.limit, p.burst)
	p.buckets[key] = limiter
	return limiter
}

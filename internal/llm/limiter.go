package llm

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// RequestLimiter implements per-endpoint rate limiting so batch audits
// drafting against the same API endpoint do not stampede it
type RequestLimiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewRequestLimiter creates a limiter with a default per-endpoint rate
func NewRequestLimiter(requestsPerSecond float64, burst int) *RequestLimiter {
	if burst <= 0 {
		burst = 1
	}

	return &RequestLimiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Wait blocks until the endpoint's limiter clears or the context is done
func (l *RequestLimiter) Wait(ctx context.Context, endpoint string) error {
	return l.getLimiter(endpoint).Wait(ctx)
}

// Allow checks clearance without waiting
func (l *RequestLimiter) Allow(endpoint string) bool {
	return l.getLimiter(endpoint).Allow()
}

// getLimiter returns the limiter for an endpoint, creating it on first use
func (l *RequestLimiter) getLimiter(endpoint string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[endpoint]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring the write lock
	if limiter, exists := l.limiters[endpoint]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[endpoint] = limiter

	return limiter
}

// SetEndpointRate overrides the rate for one endpoint
func (l *RequestLimiter) SetEndpointRate(endpoint string, requestsPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}
	l.limiters[endpoint] = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

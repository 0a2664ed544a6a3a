package middleware

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/time/rate"

	"github.com/mmynk/tippool/internal/metrics"
)

const limiterTTL = 10 * time.Minute

// RateLimiter hands out a token bucket per client address.
type RateLimiter struct {
	mu          sync.Mutex
	limiters    map[string]*limiterEntry
	rate        rate.Limit
	burst       int
	lastCleanup time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows rps requests per second per client with bursts of burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters:    make(map[string]*limiterEntry),
		rate:        rate.Limit(rps),
		burst:       burst,
		lastCleanup: time.Now(),
	}
}

// Allow reports whether the client at key may make a request now.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastCleanup) > limiterTTL {
		for k, entry := range rl.limiters {
			if now.Sub(entry.lastSeen) > limiterTTL {
				delete(rl.limiters, k)
			}
		}
		rl.lastCleanup = now
	}

	entry, ok := rl.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// Interceptor rejects RPCs over the limit with CodeResourceExhausted.
func (rl *RateLimiter) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if !rl.Allow(clientKey(req.Peer().Addr)) {
				metrics.RateLimited.Inc()
				return nil, connect.NewError(connect.CodeResourceExhausted, errors.New("rate limit exceeded, try again later"))
			}
			return next(ctx, req)
		}
	}
}

// clientKey strips the port so every connection from a host shares a bucket.
func clientKey(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

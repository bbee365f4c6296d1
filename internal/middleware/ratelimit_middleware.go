package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiterConfig holds the per-client rate limit settings.
type RateLimiterConfig struct {
	Rate            rate.Limit    // sustained requests per second per client
	Burst           int           // burst size per client
	CleanupInterval time.Duration // how often idle limiters are evicted
	IdleTimeout     time.Duration // how long a client may be idle before eviction
}

// DefaultRateLimiterConfig allows 120 requests per minute per client IP,
// which is generous for a human-driven admin dashboard.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		Rate:            rate.Limit(120.0 / 60.0),
		Burst:           30,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     10 * time.Minute,
	}
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter enforces a token-bucket limit per client IP. Idle entries are
// evicted by a background goroutine so the map does not grow unbounded.
type RateLimiter struct {
	config RateLimiterConfig

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewRateLimiter creates a RateLimiter and starts its cleanup loop.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		config:   config,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Allow reports whether the client identified by key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	entry, ok := rl.limiters[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.config.Rate, rl.config.Burst)}
		rl.limiters[key] = entry
	}
	entry.lastAccess = time.Now()
	rl.mu.Unlock()
	return entry.limiter.Allow()
}

// Middleware returns the gin handler enforcing the limit, keyed by client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: "Too many requests"})
			return
		}
		c.Next()
	}
}

// Stop terminates the cleanup loop.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

func (rl *RateLimiter) cleanupLoop() {
	if rl.config.CleanupInterval <= 0 {
		return
	}
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-rl.config.IdleTimeout)
			rl.mu.Lock()
			for key, entry := range rl.limiters {
				if entry.lastAccess.Before(cutoff) {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

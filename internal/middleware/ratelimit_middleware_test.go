package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{
		Rate:  rate.Limit(1),
		Burst: 3,
	})
	defer rl.Stop()

	allowed := 0
	for i := 0; i < 10; i++ {
		if rl.Allow("client-a") {
			allowed++
		}
	}
	assert.Equal(t, 3, allowed, "only the burst should pass immediately")

	// A different client has its own bucket.
	assert.True(t, rl.Allow("client-b"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(RateLimiterConfig{
		Rate:  rate.Limit(1),
		Burst: 2,
	})
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429, 429}, codes)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{
		Rate:            rate.Limit(1),
		Burst:           1,
		CleanupInterval: 10 * time.Millisecond,
		IdleTimeout:     10 * time.Millisecond,
	})
	defer rl.Stop()

	rl.Allow("client-a")
	assert.Eventually(t, func() bool {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		return len(rl.limiters) == 0
	}, time.Second, 10*time.Millisecond, "idle limiter entries should be evicted")
}

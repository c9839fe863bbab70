package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// rateLimitPeriod is the window the per-zone limits are expressed over.
const rateLimitPeriod = time.Minute

// RateLimiter tracks one token bucket per client IP.
type RateLimiter struct {
	ips   map[string]*rate.Limiter
	mu    *sync.Mutex
	rate  rate.Limit
	burst int
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	return &RateLimiter{
		ips:   make(map[string]*rate.Limiter),
		mu:    &sync.Mutex{},
		rate:  r,
		burst: b,
	}
}

func (rl *RateLimiter) GetLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.ips[ip]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.ips[ip] = limiter
	return limiter
}

// RateLimit throttles each client IP to limitPerMinute requests. The
// storefront, admin panel and public API mount this with distinct limits.
// Violations get a 429 with a Retry-After header.
func RateLimit(limitPerMinute int) gin.HandlerFunc {
	rl := NewRateLimiter(rate.Every(rateLimitPeriod/time.Duration(limitPerMinute)), limitPerMinute)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.GetLimiter(ip).Allow() {
			c.Header("Retry-After", strconv.Itoa(int(rateLimitPeriod.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please retry later",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/campaign/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// ErrCodeRateLimitExceeded is returned when a client exceeds its request budget
const ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"

// RateLimiter keeps one token bucket per client key. Idle buckets expire
// after the configured TTL and are swept by go-cache's janitor.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *gocache.Cache
	limit    rate.Limit
	burst    int
	ttl      time.Duration
}

// NewRateLimiter creates a limiter allowing rps requests per second per key
// with bursts of up to burst requests
func NewRateLimiter(rps float64, burst int, ttl time.Duration) *RateLimiter {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RateLimiter{
		limiters: gocache.New(ttl, 2*ttl),
		limit:    rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
	}
}

// getLimiter returns the bucket for key, creating it if needed, and
// refreshes its expiry
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.limiters.Get(key); ok {
		limiter := v.(*rate.Limiter)
		rl.limiters.Set(key, limiter, rl.ttl)
		return limiter
	}
	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters.Set(key, limiter, rl.ttl)
	return limiter
}

// Allow reports whether a request from key may proceed now
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// Remaining returns the whole tokens left for key
func (rl *RateLimiter) Remaining(key string) int {
	tokens := rl.getLimiter(key).Tokens()
	if tokens < 0 {
		return 0
	}
	return int(math.Floor(tokens))
}

// Burst returns the bucket size
func (rl *RateLimiter) Burst() int {
	return rl.burst
}

// RateLimit returns a rate limiting middleware keyed by client IP
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return RateLimitByKey(limiter, func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitByKey returns a rate limiting middleware with custom key extractor
func RateLimitByKey(limiter *RateLimiter, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFunc(c)

		if !limiter.Allow(key) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponseWithRequestID(
				ErrCodeRateLimitExceeded,
				"Too many requests. Please try again later.",
				c.GetString(RequestIDKey),
			))
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Burst()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))

		c.Next()
	}
}

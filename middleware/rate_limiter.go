package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// TokenBucket is a simple token bucket limiter
type TokenBucket struct {
	rate       float64 // tokens added per second
	capacity   int
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket limiter
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow tries to take one token
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

var (
	ipLimiters   = make(map[string]*TokenBucket)
	ipLimitersMu sync.RWMutex
)

// RateLimiterConfig configures the rate limiter middleware
type RateLimiterConfig struct {
	Rate       float64 // requests allowed per second
	Burst      int
	ExpiryTime time.Duration // idle limiters are dropped after this
}

// DefaultRateLimiterConfig allows 50 req/s per client IP with a burst of 100
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       50,
	Burst:      100,
	ExpiryTime: 1 * time.Hour,
}

func getIPLimiter(ip string, cfg RateLimiterConfig) *TokenBucket {
	ipLimitersMu.RLock()
	limiter, exists := ipLimiters[ip]
	ipLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		ipLimitersMu.Lock()
		ipLimiters[ip] = limiter
		ipLimitersMu.Unlock()

		if cfg.ExpiryTime > 0 {
			go func() {
				time.Sleep(cfg.ExpiryTime)
				ipLimitersMu.Lock()
				delete(ipLimiters, ip)
				ipLimitersMu.Unlock()
			}()
		}
	}

	return limiter
}

// RateLimiter creates a per-IP rate limiting middleware
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	var cfg RateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultRateLimiterConfig
	}

	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}

	return func(c *gin.Context) {
		limiter := getIPLimiter(c.ClientIP(), cfg)

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}

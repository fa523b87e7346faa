package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
)

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    rate.Limit
	burst    int
}

func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	burst := perMinute / 6
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}
}

func (l *RateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.every, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.get(ip).Allow() {
			zap.L().Warn("rate limit exceeded", zap.String("ip", ip))
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Too many requests, try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}

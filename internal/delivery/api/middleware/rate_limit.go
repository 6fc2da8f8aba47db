package middleware

import (
	"sync"
	"time"

	"zeneasy/config"
	"zeneasy/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const defaultVisitorTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket keyed by the real client IP.
type RateLimiter struct {
	rule     config.RateLimitRule
	mu       sync.Mutex
	visitors map[string]*visitor
	lastGC   time.Time
	now      func() time.Time
}

// NewRateLimiter builds a limiter for rule. A zero RPS lets every request through.
func NewRateLimiter(rule config.RateLimitRule) *RateLimiter {
	if rule.Burst <= 0 {
		rule.Burst = 1
	}
	if rule.TTL <= 0 {
		rule.TTL = defaultVisitorTTL
	}

	return &RateLimiter{
		rule:     rule,
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

// Handle rejects requests above the configured rate with 429.
func (l *RateLimiter) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if l.rule.RPS <= 0 {
			return next(c)
		}

		if !l.allow(c.RealIP()) {
			return response.TooManyRequests(c, "RATE_LIMITED", "Too many requests, please slow down")
		}

		return next(c)
	}
}

func (l *RateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if now.Sub(l.lastGC) > l.rule.TTL {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.rule.TTL {
				delete(l.visitors, k)
			}
		}
		l.lastGC = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(l.rule.RPS), l.rule.Burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

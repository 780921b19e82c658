package middleware

import (
	"path"
	"sync"
	"time"

	"portal/config"
	"portal/internal/delivery/http/response"
	"portal/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultWebhookRate  = 5
	defaultWebhookBurst = 10
	visitorIdleTTL      = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles webhook callers with one token bucket per client IP.
type RateLimitMiddleware struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

// NewRateLimitMiddleware reads webhook.ratePerSecond and webhook.burst.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	perSecond := cfg.Webhook.RatePerSecond
	if perSecond <= 0 {
		perSecond = defaultWebhookRate
	}
	burst := cfg.Webhook.Burst
	if burst <= 0 {
		burst = defaultWebhookBurst
	}

	return &RateLimitMiddleware{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

// Limit rejects requests over the bucket with 429.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.allow(c.RealIP()) {
			metrics.RecordWebhook(path.Base(c.Path()), "throttled")
			return response.TooManyRequests(c, "RATE_LIMITED", "Terlalu banyak permintaan")
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) > visitorIdleTTL {
		for key, v := range m.visitors {
			if now.Sub(v.lastSeen) > visitorIdleTTL {
				delete(m.visitors, key)
			}
		}
		m.lastSweep = now
	}

	v, ok := m.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

package auth

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// LoginLimiter throttles credential issuance per client IP.
type LoginLimiter struct {
	limit   rate.Limit
	burst   int
	window  time.Duration
	mu      sync.Mutex
	clients map[string]*clientLimiter
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginLimiter creates a limiter for the given requests-per-minute budget.
// A non-positive budget disables throttling.
func NewLoginLimiter(requestsPerMinute int) *LoginLimiter {
	if requestsPerMinute <= 0 {
		return nil
	}
	burst := requestsPerMinute / 10
	if burst < 1 {
		burst = 1
	}
	return &LoginLimiter{
		limit:   rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:   burst,
		window:  5 * time.Minute,
		clients: make(map[string]*clientLimiter),
	}
}

// Handle rejects requests over budget with 429.
func (l *LoginLimiter) Handle(c *fiber.Ctx) error {
	if l == nil {
		return c.Next()
	}
	if !l.get(c.IP()).Allow() {
		return apperrors.NewTooManyRequests("too many requests, slow down")
	}
	return c.Next()
}

func (l *LoginLimiter) get(key string) *rate.Limiter {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.clients[key]; ok {
		entry.lastSeen = now
		return entry.limiter
	}

	limiter := rate.NewLimiter(l.limit, l.burst)
	l.clients[key] = &clientLimiter{limiter: limiter, lastSeen: now}
	for k, entry := range l.clients {
		if now.Sub(entry.lastSeen) > l.window {
			delete(l.clients, k)
		}
	}
	return limiter
}

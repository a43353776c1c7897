package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/futig/sitegen-backend/internal/config"
	"github.com/futig/sitegen-backend/internal/pkg/response"
	gocache "github.com/patrickmn/go-cache"
)

// RateLimiter applies a per-client token bucket. Generation requests are
// expensive upstream, so the limiter sits in front of every route.
type RateLimiter struct {
	cfg     config.RateLimitConfig
	buckets *gocache.Cache
	mu      sync.Mutex
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		cfg:     cfg,
		buckets: gocache.New(10*time.Minute, 15*time.Minute),
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			response.Error(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allow refills the client's bucket at the configured per-minute rate, up to
// the burst capacity, and spends one token.
func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	b := &bucket{tokens: float64(rl.cfg.Burst), lastSeen: now}
	if cached, ok := rl.buckets.Get(ip); ok {
		b = cached.(*bucket)
	}

	refill := now.Sub(b.lastSeen).Minutes() * float64(rl.cfg.RequestsPerMinute)
	b.tokens += refill
	if b.tokens > float64(rl.cfg.Burst) {
		b.tokens = float64(rl.cfg.Burst)
	}
	b.lastSeen = now

	if b.tokens < 1 {
		rl.buckets.SetDefault(ip, b)
		return false
	}

	b.tokens--
	rl.buckets.SetDefault(ip, b)
	return true
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.Index(fwd, ","); idx > 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

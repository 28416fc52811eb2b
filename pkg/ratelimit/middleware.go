package ratelimit

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/render"
)

// Config holds per-client rate limiting settings
type Config struct {
	Capacity   int     // max burst per client
	RefillRate float64 // requests per second per client
	BucketTTL  time.Duration
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP
	TrustProxy bool
	// Now overrides the clock, mainly for tests
	Now func() time.Time
}

// DefaultConfig allows 5 mail-sending requests per client per minute
func DefaultConfig() Config {
	return Config{
		Capacity:   5,
		RefillRate: 5.0 / 60.0,
		BucketTTL:  time.Hour,
	}
}

// Middleware rejects clients that exceed their budget with 429
type Middleware struct {
	config  Config
	limiter *RateLimiter
}

func NewMiddleware(config Config) *Middleware {
	return &Middleware{
		config:  config,
		limiter: NewRateLimiter(config.Capacity, config.RefillRate, config.BucketTTL, config.Now),
	}
}

type limitedResponse struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}

// Handler returns the rate limiting middleware handler
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := m.clientIP(r)
		if !m.limiter.Allow(ip) {
			slog.Warn("Rate limit exceeded", "ip", ip, "path", r.URL.Path, "method", r.Method)

			retryAfter := 60
			if m.config.RefillRate > 0 {
				retryAfter = int(math.Ceil(1 / m.config.RefillRate))
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			render.Status(r, http.StatusTooManyRequests)
			render.JSON(w, r, limitedResponse{Sent: false, Message: "Too many requests. Please try again later."})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) clientIP(r *http.Request) string {
	if m.config.TrustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

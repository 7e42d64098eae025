package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultRateLimitWindow = time.Minute
	DefaultAPIRateLimit    = 60
	DefaultWebhookLimit    = 120
)

type KeyFunc func(r *http.Request) string

type RateLimiterOption func(l *RateLimiter)

func WithKeyFunc(keyFunc KeyFunc) RateLimiterOption {
	return func(l *RateLimiter) {
		l.keyFunc = keyFunc
	}
}

func WithRateLimitClock(now func() time.Time) RateLimiterOption {
	return func(l *RateLimiter) {
		l.now = now
	}
}

// RateLimiter rejects a key once it exceeds max hits inside a fixed window.
type RateLimiter struct {
	store   WindowStore
	name    string
	window  time.Duration
	max     int64
	keyFunc KeyFunc
	now     func() time.Time
}

func NewRateLimiter(store WindowStore, name string, window time.Duration, max int64, opts ...RateLimiterOption) *RateLimiter {
	l := &RateLimiter{
		store:   store,
		name:    name,
		window:  window,
		max:     max,
		keyFunc: ClientIP,
		now:     time.Now,
	}
	if l.window <= 0 {
		l.window = DefaultRateLimitWindow
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := l.name + ":" + l.keyFunc(r)
		count, resetAt, err := l.store.Hit(r.Context(), key, l.window)
		if err != nil {
			// Fail open when the store is unavailable.
			logrus.Warnf("rate limit store failed for %s: %v", key, err)
			next.ServeHTTP(w, r)
			return
		}

		remaining := l.max - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(l.max, 10))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if count > l.max {
			retryAfter := int64(math.Ceil(resetAt.Sub(l.now()).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
			logrus.Debugf("rate limit exceeded for %s (%d/%d)", key, count, l.max)
			writeError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP keys requests by the network peer. X-Forwarded-For is client supplied and ignored here.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// ForwardedClientIP keys requests by the first X-Forwarded-For entry, but only when the
// peer is one of trustedProxies. Any other peer is keyed by ClientIP.
func ForwardedClientIP(trustedProxies ...string) KeyFunc {
	trusted := make(map[string]struct{}, len(trustedProxies))
	for _, proxy := range trustedProxies {
		if proxy = strings.TrimSpace(proxy); proxy != "" {
			trusted[proxy] = struct{}{}
		}
	}
	return func(r *http.Request) string {
		peer := ClientIP(r)
		if _, ok := trusted[peer]; !ok {
			return peer
		}
		first, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
		return peer
	}
}

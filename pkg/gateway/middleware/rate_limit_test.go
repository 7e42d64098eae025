package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/openebl/sicoob-gateway/pkg/gateway/middleware"
	"github.com/openebl/sicoob-gateway/pkg/util"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RateLimiterTestSuite struct {
	suite.Suite
	current time.Time
	limiter *middleware.RateLimiter
}

func TestRateLimiterTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimiterTestSuite))
}

func (s *RateLimiterTestSuite) SetupTest() {
	s.current = now
	clock := func() time.Time { return s.current }
	store := middleware.NewMemoryWindowStore(middleware.WithWindowClock(clock))
	s.limiter = middleware.NewRateLimiter(store, "api", time.Minute, 2, middleware.WithRateLimitClock(clock))
}

func (s *RateLimiterTestSuite) hit(remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, "/api/sicoob/health", nil)
	request.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		request.Header.Set("X-Forwarded-For", forwardedFor)
	}
	response := httptest.NewRecorder()
	s.limiter.Limit(OkHandler).ServeHTTP(response, request)
	return response
}

func (s *RateLimiterTestSuite) TestFixedWindow() {
	response := s.hit("10.0.0.1:5000", "")
	s.Equal(http.StatusOK, response.Code)
	s.Equal("2", response.Header().Get("X-RateLimit-Limit"))
	s.Equal("1", response.Header().Get("X-RateLimit-Remaining"))

	response = s.hit("10.0.0.1:5001", "")
	s.Equal(http.StatusOK, response.Code)
	s.Equal("0", response.Header().Get("X-RateLimit-Remaining"))

	response = s.hit("10.0.0.1:5002", "")
	s.Equal(http.StatusTooManyRequests, response.Code)
	s.Equal("60", response.Header().Get("Retry-After"))
	s.JSONEq(`{"error":"Too many requests"}`, response.Body.String())

	s.current = now.Add(30500 * time.Millisecond)
	response = s.hit("10.0.0.1:5003", "")
	s.Equal(http.StatusTooManyRequests, response.Code)
	s.Equal("30", response.Header().Get("Retry-After"))

	s.current = now.Add(time.Minute)
	response = s.hit("10.0.0.1:5004", "")
	s.Equal(http.StatusOK, response.Code)
	s.Equal("1", response.Header().Get("X-RateLimit-Remaining"))
}

func (s *RateLimiterTestSuite) TestKeysAreIndependent() {
	s.Equal(http.StatusOK, s.hit("10.0.0.1:5000", "").Code)
	s.Equal(http.StatusOK, s.hit("10.0.0.1:5000", "").Code)
	s.Equal(http.StatusTooManyRequests, s.hit("10.0.0.1:5000", "").Code)
	s.Equal(http.StatusOK, s.hit("10.0.0.2:5000", "").Code)
}

func (s *RateLimiterTestSuite) TestRotatingForwardedForDoesNotResetLimit() {
	s.Equal(http.StatusOK, s.hit("203.0.113.9:5000", "10.0.0.0").Code)
	s.Equal(http.StatusOK, s.hit("203.0.113.9:5000", "10.0.0.1").Code)
	s.Equal(http.StatusTooManyRequests, s.hit("203.0.113.9:5000", "10.0.0.2").Code)
	s.Equal(http.StatusTooManyRequests, s.hit("203.0.113.9:5000", "10.0.0.3").Code)
}

func (s *RateLimiterTestSuite) TestTrustedProxyForwardsClientAddress() {
	clock := func() time.Time { return s.current }
	store := middleware.NewMemoryWindowStore(middleware.WithWindowClock(clock))
	s.limiter = middleware.NewRateLimiter(store, "api", time.Minute, 2,
		middleware.WithRateLimitClock(clock),
		middleware.WithKeyFunc(middleware.ForwardedClientIP("10.0.0.1")),
	)

	// Behind the trusted proxy each forwarded client has its own window.
	s.Equal(http.StatusOK, s.hit("10.0.0.1:5000", "203.0.113.7, 10.0.0.1").Code)
	s.Equal(http.StatusOK, s.hit("10.0.0.1:5000", "203.0.113.7").Code)
	s.Equal(http.StatusTooManyRequests, s.hit("10.0.0.1:5000", "203.0.113.7").Code)
	s.Equal(http.StatusOK, s.hit("10.0.0.1:5000", "203.0.113.8").Code)

	// Untrusted peers cannot pick their key.
	s.Equal(http.StatusOK, s.hit("198.51.100.4:5000", "203.0.113.20").Code)
	s.Equal(http.StatusOK, s.hit("198.51.100.4:5000", "203.0.113.21").Code)
	s.Equal(http.StatusTooManyRequests, s.hit("198.51.100.4:5000", "203.0.113.22").Code)
}

type failingStore struct{}

func (failingStore) Hit(context.Context, string, time.Duration) (int64, time.Time, error) {
	return 0, time.Time{}, errors.New("connection refused")
}

func (s *RateLimiterTestSuite) TestStoreFailureLetsRequestThrough() {
	limiter := middleware.NewRateLimiter(failingStore{}, "api", time.Minute, 1)
	request := httptest.NewRequest(http.MethodGet, "/api/sicoob/health", nil)
	response := httptest.NewRecorder()
	limiter.Limit(OkHandler).ServeHTTP(response, request)
	s.Equal(http.StatusOK, response.Code)
}

func TestClientIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.1:1234"
	if got := middleware.ClientIP(request); got != "192.0.2.1" {
		t.Fatalf("expected remote host, got %q", got)
	}
	request.Header.Set("X-Forwarded-For", " 198.51.100.2 , 192.0.2.1")
	if got := middleware.ClientIP(request); got != "192.0.2.1" {
		t.Fatalf("expected forwarded header to be ignored, got %q", got)
	}
	if got := middleware.ForwardedClientIP("192.0.2.1")(request); got != "198.51.100.2" {
		t.Fatalf("expected first forwarded address from a trusted proxy, got %q", got)
	}
}

func TestRedisWindowStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR is not set")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	prefix := "test:" + util.NewUUID()
	store := middleware.NewRedisWindowStore(rdb, middleware.WithWindowPrefix(prefix))
	defer rdb.Del(ctx, prefix+":client")

	count, resetAt, err := store.Hit(ctx, "client", time.Minute)
	if err != nil {
		t.Fatalf("first hit: %v", err)
	}
	if count != 1 || time.Until(resetAt) > time.Minute {
		t.Fatalf("unexpected first window: %d %v", count, resetAt)
	}
	count, _, err = store.Hit(ctx, "client", time.Minute)
	if err != nil || count != 2 {
		t.Fatalf("unexpected second hit: %d %v", count, err)
	}
	ttl, err := rdb.PTTL(ctx, prefix+":client").Result()
	if err != nil || ttl <= 0 || ttl > time.Minute {
		t.Fatalf("window TTL not set: %v %v", ttl, err)
	}
}

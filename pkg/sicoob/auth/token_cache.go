package auth

import (
	"sync"
	"time"
)

// DefaultRefreshThreshold is how long before expiry a token is considered due for refresh.
const DefaultRefreshThreshold = 300 * time.Second

type credential struct {
	token     string
	issuedAt  time.Time
	expiresAt time.Time
}

// TokenCache holds at most one bearer token. The most recent Set wins.
type TokenCache struct {
	mtx  sync.Mutex
	cred *credential
	now  func() time.Time
}

func NewTokenCache() *TokenCache {
	return &TokenCache{now: time.Now}
}

// NewTokenCacheWithClock is NewTokenCache with an injected clock.
func NewTokenCacheWithClock(now func() time.Time) *TokenCache {
	return &TokenCache{now: now}
}

func (c *TokenCache) Set(token string, ttl time.Duration) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	now := c.now()
	c.cred = &credential{
		token:     token,
		issuedAt:  now,
		expiresAt: now.Add(ttl),
	}
}

func (c *TokenCache) Get() (string, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.cred == nil {
		return "", false
	}
	return c.cred.token, true
}

// HasValid reports whether a non-expired token is held. An expired token is evicted.
func (c *TokenCache) HasValid() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.cred == nil {
		return false
	}
	if !c.now().Before(c.cred.expiresAt) {
		c.cred = nil
		return false
	}
	return true
}

// ShouldRefresh reports whether the token is missing or expires within threshold.
func (c *TokenCache) ShouldRefresh(threshold time.Duration) bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.cred == nil {
		return true
	}
	return c.cred.expiresAt.Sub(c.now()) <= threshold
}

// TimeToExpire returns the remaining lifetime of the held token. Zero means none is held.
func (c *TokenCache) TimeToExpire() time.Duration {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.cred == nil {
		return 0
	}
	remaining := c.cred.expiresAt.Sub(c.now())
	if remaining <= 0 {
		c.cred = nil
		return 0
	}
	return remaining
}

func (c *TokenCache) Clear() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.cred = nil
}

package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/sirupsen/logrus"
)

var DefaultScopes = []string{"pix", "boleto", "cobranca"}

const (
	DefaultMaxRetry   = 3
	DefaultRetryDelay = time.Second

	// fallbackTokenTTL is used when the token response carries no expires_in.
	fallbackTokenTTL = time.Hour
)

type Config struct {
	TokenURL     string
	ValidateURL  string // Optional. Derived from TokenURL when empty.
	BaseURL      string // Optional. Derived from TokenURL when empty.
	ClientID     string
	ClientSecret string // Optional with mTLS-only client authentication.
	Scopes       []string
	MaxRetry     int
	RetryDelay   time.Duration
}

// TokenProvider is what the charge clients and the health check need from the auth client.
type TokenProvider interface {
	GetAccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	InvalidateToken()
	ValidateToken(ctx context.Context, token string) bool
}

type ClientOption func(c *Client)

func WithTokenCache(cache *TokenCache) ClientOption {
	return func(c *Client) {
		c.cache = cache
	}
}

func WithRefreshThreshold(threshold time.Duration) ClientOption {
	return func(c *Client) {
		c.refreshThreshold = threshold
	}
}

// Client fetches client-credentials tokens over the mTLS transport.
// Concurrent callers racing past an expired cache may both request a token. The last one wins.
type Client struct {
	cfg              Config
	endpoints        Endpoints
	httpClient       *http.Client
	cache            *TokenCache
	refreshThreshold time.Duration
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

func NewClient(cfg Config, httpClient *http.Client, opts ...ClientOption) *Client {
	if len(cfg.Scopes) == 0 {
		cfg.Scopes = DefaultScopes
	}
	if cfg.MaxRetry <= 0 {
		cfg.MaxRetry = DefaultMaxRetry
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	c := &Client{
		cfg:              cfg,
		endpoints:        ResolveEndpoints(cfg.TokenURL, cfg.ValidateURL, cfg.BaseURL),
		httpClient:       httpClient,
		cache:            NewTokenCache(),
		refreshThreshold: DefaultRefreshThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// GetAccessToken returns the cached token unless it is missing, expired or due for refresh.
func (c *Client) GetAccessToken(ctx context.Context) (string, error) {
	if c.cache.HasValid() && !c.cache.ShouldRefresh(c.refreshThreshold) {
		if token, ok := c.cache.Get(); ok {
			return token, nil
		}
	}
	return c.requestToken(ctx)
}

// RefreshToken drops the cached token and requests a new one.
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	c.cache.Clear()
	return c.requestToken(ctx)
}

func (c *Client) InvalidateToken() {
	c.cache.Clear()
}

func (c *Client) requestToken(ctx context.Context) (string, error) {
	var token tokenResponse
	err := retry.Do(
		func() error {
			resp, err := c.postTokenRequest(ctx)
			if err != nil {
				return err
			}
			token = resp
			return nil
		},
		retry.Attempts(uint(c.cfg.MaxRetry)),
		retry.Delay(c.cfg.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logrus.Warnf("token request attempt %d/%d failed: %v", n+1, c.cfg.MaxRetry, err)
		}),
	)
	if err != nil {
		logrus.Errorf("failed to obtain access token after %d attempts: %v", c.cfg.MaxRetry, err)
		return "", fmt.Errorf("%w: %w", model.ErrTokenRequestFailed, err)
	}

	ttl := time.Duration(token.ExpiresIn) * time.Second
	if ttl <= 0 {
		logrus.Warnf("token response has no expires_in, assuming %s", fallbackTokenTTL)
		ttl = fallbackTokenTTL
	}
	c.cache.Set(token.AccessToken, ttl)
	logrus.Infof("access token obtained (expires in %s)", ttl)
	return token.AccessToken, nil
}

func (c *Client) postTokenRequest(ctx context.Context) (tokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	if c.cfg.ClientSecret != "" {
		form.Set("client_secret", c.cfg.ClientSecret)
	}
	form.Set("scope", strings.Join(c.cfg.Scopes, " "))

	body, status, err := c.postForm(ctx, c.endpoints.Token, form)
	if err != nil {
		return tokenResponse{}, err
	}
	if status/100 != 2 {
		return tokenResponse{}, fmt.Errorf("token endpoint returned %d: %s", status, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return tokenResponse{}, fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return tokenResponse{}, model.ErrEmptyAccessToken
	}
	return token, nil
}

// ValidateToken asks the provider whether token is still active. Without a validation
// endpoint any non-empty token is considered valid.
func (c *Client) ValidateToken(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	if c.endpoints.Validate == "" {
		return true
	}

	form := url.Values{}
	form.Set("token", token)
	form.Set("client_id", c.cfg.ClientID)
	if c.cfg.ClientSecret != "" {
		form.Set("client_secret", c.cfg.ClientSecret)
	}

	_, status, err := c.postForm(ctx, c.endpoints.Validate, form)
	if err != nil {
		logrus.Warnf("token validation failed: %v", err)
		return false
	}
	if status/100 != 2 {
		logrus.Warnf("token validation returned %d", status)
		return false
	}
	return true
}

// ClientInfo returns the provider's description of the authenticated client.
func (c *Client) ClientInfo(ctx context.Context) (map[string]any, error) {
	token, err := c.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	infoURL, err := url.JoinPath(c.endpoints.Base, "client/info")
	if err != nil {
		return nil, fmt.Errorf("%v. %w", err, model.ErrClientInfoFailed)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, infoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%v. %w", err, model.ErrClientInfoFailed)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%v. %w", err, model.ErrClientInfoFailed)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return nil, model.WithDetails(fmt.Errorf("client info returned %d. %w", resp.StatusCode, model.ErrClientInfoFailed), model.RemoteBody(body))
	}

	info := map[string]any{}
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("decode client info: %v. %w", err, model.ErrClientInfoFailed)
	}
	return info, nil
}

func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("send http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

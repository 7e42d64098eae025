package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/sirupsen/logrus"
)

const invalidJWTMessage = "invalid JWT token"

type JWTAuthConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

type JWTAuthOption func(a *JWTAuth)

func WithJWTClock(now func() time.Time) JWTAuthOption {
	return func(a *JWTAuth) {
		a.clock = jwt.ClockFunc(now)
	}
}

// JWTAuth verifies HS256 bearer tokens. Without a secret every request passes through.
type JWTAuth struct {
	secret   []byte
	issuer   string
	audience string
	clock    jwt.Clock
}

func NewJWTAuth(cfg JWTAuthConfig, opts ...JWTAuthOption) *JWTAuth {
	a := &JWTAuth{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		clock:    jwt.ClockFunc(time.Now),
	}
	for _, opt := range opts {
		opt(a)
	}
	if len(a.secret) == 0 {
		logrus.Warn("JWT secret is not configured, API requests are not authenticated")
	}
	return a
}

func (a *JWTAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(a.secret) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		raw := getBearerToken(r)
		if raw == "" {
			writeError(w, http.StatusUnauthorized, invalidJWTMessage)
			return
		}

		options := []jwt.ParseOption{
			jwt.WithKey(jwa.HS256, a.secret),
			jwt.WithValidate(true),
			jwt.WithClock(a.clock),
		}
		if a.issuer != "" {
			options = append(options, jwt.WithIssuer(a.issuer))
		}
		if a.audience != "" {
			options = append(options, jwt.WithAudience(a.audience))
		}
		token, err := jwt.ParseString(raw, options...)
		if err != nil {
			logrus.Debugf("JWT rejected: %v", err)
			writeError(w, http.StatusUnauthorized, invalidJWTMessage)
			return
		}

		ctx := r.Context()
		claims, err := token.AsMap(ctx)
		if err != nil {
			writeError(w, http.StatusUnauthorized, invalidJWTMessage)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, JWT_CLAIMS, claims)))
	})
}

func getBearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	token, found := strings.CutPrefix(h, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

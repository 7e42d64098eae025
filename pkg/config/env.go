package config

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"
)

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays the SICOOB_* environment variables on cfg. Set variables win over the file.
func ApplyEnv(cfg *GatewayConfig, lookup LookupFunc) {
	s := &cfg.Sicoob
	strs := map[string]*string{
		"SICOOB_ENVIRONMENT":       &s.Environment,
		"SICOOB_API_BASE_URL":      &s.APIBaseURL,
		"SICOOB_AUTH_URL":          &s.AuthURL,
		"SICOOB_AUTH_VALIDATE_URL": &s.AuthValidateURL,
		"SICOOB_AUTH_BASE_URL":     &s.AuthBaseURL,
		"SICOOB_BOLETO_BASE_URL":   &s.BoletoBaseURL,
		"SICOOB_CLIENT_ID":         &s.ClientID,
		"SICOOB_CLIENT_SECRET":     &s.ClientSecret,
		"SICOOB_CERT_PATH":         &s.Certificate.CertPath,
		"SICOOB_KEY_PATH":          &s.Certificate.KeyPath,
		"SICOOB_CA_PATH":           &s.Certificate.CAPath,
		"SICOOB_CA_BASE64":         &s.Certificate.CABase64,
		"SICOOB_CERT_PFX_BASE64":   &s.Certificate.PFXBase64,
		"SICOOB_CERT_PFX_PASS":     &s.Certificate.PFXPassword,
		"SICOOB_COOPERATIVA":       &s.Cooperativa,
		"SICOOB_CONTA":             &s.Conta,
		"SICOOB_WEBHOOK_SECRET":    &cfg.Webhook.Secret,
		"SICOOB_JWT_SECRET":        &cfg.JWT.Secret,
	}
	for key, field := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*field = strings.TrimSpace(v)
		}
	}

	if v, ok := lookup("SICOOB_SCOPES"); ok && strings.TrimSpace(v) != "" {
		s.Scopes = strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	}
	if v, ok := lookup("SICOOB_RATE_LIMIT_WINDOW_MS"); ok && v != "" {
		ms, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || ms <= 0 {
			logrus.Warnf("ignoring SICOOB_RATE_LIMIT_WINDOW_MS=%q: not a positive integer", v)
		} else {
			cfg.RateLimit.Window = time.Duration(ms) * time.Millisecond
		}
	}
	if v, ok := lookup("SICOOB_RATE_LIMIT_MAX"); ok && v != "" {
		max, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || max <= 0 {
			logrus.Warnf("ignoring SICOOB_RATE_LIMIT_MAX=%q: not a positive integer", v)
		} else {
			cfg.RateLimit.Max = max
		}
	}
}

package config

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/openebl/sicoob-gateway/pkg/gateway/middleware"
	"github.com/openebl/sicoob-gateway/pkg/gateway/webhook"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/openebl/sicoob-gateway/pkg/util"
)

type CertificateConfig struct {
	PFXBase64   string `yaml:"pfx_base64"`
	PFXPassword string `yaml:"pfx_password"`
	CertPath    string `yaml:"cert_path"`
	KeyPath     string `yaml:"key_path"`
	CABase64    string `yaml:"ca_base64"`
	CAPath      string `yaml:"ca_path"`
}

type SicoobConfig struct {
	Environment     string   `yaml:"environment"` // sandbox or production.
	APIBaseURL      string   `yaml:"api_base_url"`
	AuthURL         string   `yaml:"auth_url"`
	AuthValidateURL string   `yaml:"auth_validate_url"`
	AuthBaseURL     string   `yaml:"auth_base_url"`   // Defaults to auth_url without its /token suffix.
	PixBaseURL      string   `yaml:"pix_base_url"`    // Defaults to api_base_url + /pix/api/v2.
	BoletoBaseURL   string   `yaml:"boleto_base_url"` // Defaults to api_base_url + /cobranca-bancaria/v3.
	ClientID        string   `yaml:"client_id"`
	ClientSecret    string   `yaml:"client_secret"`
	Scopes          []string `yaml:"scopes"`
	Cooperativa     string   `yaml:"cooperativa"`
	Conta           string   `yaml:"conta"`

	Certificate        CertificateConfig `yaml:"certificate"`
	InsecureSkipVerify bool              `yaml:"insecure_skip_verify"`
	Timeout            time.Duration     `yaml:"timeout"`

	GenerateDocumentNumber bool    `yaml:"generate_document_number"`
	BoletoPostsPerSecond   float64 `yaml:"boleto_posts_per_second"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type RateLimitConfig struct {
	Window         time.Duration `yaml:"window"`
	Max            int64         `yaml:"max"`
	WebhookMax     int64         `yaml:"webhook_max"`
	TrustedProxies []string      `yaml:"trusted_proxies"` // Peers whose X-Forwarded-For is used as the limiter key.
}

// GatewayConfig is the configuration of the sicoob_gateway server.
type GatewayConfig struct {
	LocalAddress string                      `yaml:"local_address"`
	OTLPEndpoint string                      `yaml:"otlp_endpoint"`
	Database     util.PostgresDatabaseConfig `yaml:"database"`
	Redis        RedisConfig                 `yaml:"redis"`
	Sicoob       SicoobConfig                `yaml:"sicoob"`
	Webhook      webhook.Config              `yaml:"webhook"`
	JWT          middleware.JWTAuthConfig    `yaml:"jwt"`
	RateLimit    RateLimitConfig             `yaml:"rate_limit"`
}

// SetDefaults fills every optional field left empty.
func (c *GatewayConfig) SetDefaults() {
	if c.LocalAddress == "" {
		c.LocalAddress = ":8080"
	}
	if c.Sicoob.Environment == "" {
		c.Sicoob.Environment = "sandbox"
	}
	base := strings.TrimRight(c.Sicoob.APIBaseURL, "/")
	if c.Sicoob.PixBaseURL == "" && base != "" {
		c.Sicoob.PixBaseURL = base + "/pix/api/v2"
	}
	if c.Sicoob.BoletoBaseURL == "" && base != "" {
		c.Sicoob.BoletoBaseURL = base + "/cobranca-bancaria/v3"
	}
	if c.RateLimit.Window <= 0 {
		c.RateLimit.Window = middleware.DefaultRateLimitWindow
	}
	if c.RateLimit.Max <= 0 {
		c.RateLimit.Max = middleware.DefaultAPIRateLimit
	}
	if c.RateLimit.WebhookMax <= 0 {
		c.RateLimit.WebhookMax = middleware.DefaultWebhookLimit
	}
}

func (c *GatewayConfig) Validate() error {
	s := c.Sicoob
	err := validation.ValidateStruct(&s,
		validation.Field(&s.Environment, validation.In("sandbox", "production")),
		validation.Field(&s.AuthURL, validation.Required, is.URL),
		validation.Field(&s.AuthValidateURL, is.URL),
		validation.Field(&s.AuthBaseURL, is.URL),
		validation.Field(&s.PixBaseURL, validation.Required, is.URL),
		validation.Field(&s.BoletoBaseURL, validation.Required, is.URL),
		validation.Field(&s.ClientID, validation.Required),
		validation.Field(&s.InsecureSkipVerify, validation.When(s.Environment == "production", validation.Empty)),
	)
	if err != nil {
		return fmt.Errorf("sicoob: %s%w", err.Error(), model.ErrValidation)
	}
	return nil
}

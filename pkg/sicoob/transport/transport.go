package transport

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/sirupsen/logrus"
)

const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"

	DefaultAuthTimeout = 10 * time.Second
	DefaultAPITimeout  = 30 * time.Second
)

type ClientOption func(o *clientOptions)

type clientOptions struct {
	name               string
	environment        string
	timeout            time.Duration
	insecureSkipVerify bool
}

func WithName(name string) ClientOption {
	return func(o *clientOptions) {
		o.name = name
	}
}

func WithEnvironment(environment string) ClientOption {
	return func(o *clientOptions) {
		o.environment = strings.ToLower(strings.TrimSpace(environment))
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithInsecureSkipVerify disables server certificate verification. Refused in production.
func WithInsecureSkipVerify(insecure bool) ClientOption {
	return func(o *clientOptions) {
		o.insecureSkipVerify = insecure
	}
}

// NewHTTPClient builds an HTTP client that presents bundle on every TLS handshake.
func NewHTTPClient(bundle CertificateBundle, opts ...ClientOption) (*http.Client, error) {
	options := clientOptions{
		name:        "sicoob",
		environment: EnvironmentSandbox,
		timeout:     DefaultAPITimeout,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.insecureSkipVerify && options.environment == EnvironmentProduction {
		return nil, model.ErrInsecureProduction
	}

	cert, err := bundle.TLSCertificate()
	if err != nil {
		return nil, err
	}

	rootCAs, err := x509.SystemCertPool()
	if err != nil || rootCAs == nil {
		rootCAs = x509.NewCertPool()
	}
	if len(bundle.CAPEM) > 0 && !rootCAs.AppendCertsFromPEM(bundle.CAPEM) {
		return nil, fmt.Errorf("no certificate could be loaded from the CA bundle%w", model.ErrCertificate)
	}

	if options.insecureSkipVerify {
		logrus.Warnf("%s client: server certificate verification is DISABLED (environment %q). Never use this against production endpoints.", options.name, options.environment)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = false
	transport.TLSClientConfig = &tls.Config{
		Certificates:       []tls.Certificate{cert},
		RootCAs:            rootCAs,
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: options.insecureSkipVerify,
	}

	logrus.Debugf("%s client: mTLS transport ready (environment %q, timeout %s)", options.name, options.environment, options.timeout)
	return &http.Client{Timeout: options.timeout, Transport: transport}, nil
}

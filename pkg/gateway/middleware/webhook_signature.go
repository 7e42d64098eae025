package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/openebl/sicoob-gateway/pkg/gateway/webhook"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/sirupsen/logrus"
)

const (
	SignatureHeader = "x-sicoob-signature"
	TimestampHeader = "x-sicoob-timestamp"

	maxWebhookBody = 1 << 20
)

type WebhookSignatureOption func(m *WebhookSignature)

func WithSignatureClock(now func() time.Time) WebhookSignatureOption {
	return func(m *WebhookSignature) {
		m.now = now
	}
}

// WebhookSignature authenticates inbound bank webhooks before their body is parsed.
type WebhookSignature struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

func NewWebhookSignature(secret string, tolerance time.Duration, opts ...WebhookSignatureOption) *WebhookSignature {
	m := &WebhookSignature{
		secret:    []byte(secret),
		tolerance: tolerance,
		now:       time.Now,
	}
	if m.tolerance <= 0 {
		m.tolerance = webhook.DefaultTimestampTolerance
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *WebhookSignature) Verify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature := r.Header.Get(SignatureHeader)
		if signature == "" {
			writeError(w, http.StatusUnauthorized, "missing webhook signature")
			return
		}
		timestamp := r.Header.Get(TimestampHeader)
		if timestamp == "" {
			writeError(w, http.StatusUnauthorized, "missing webhook timestamp")
			return
		}
		ts, err := model.WebhookTimestamp(timestamp).Time()
		if err != nil || !webhook.WithinTolerance(ts, m.now(), m.tolerance) {
			logrus.Warnf("webhook rejected: timestamp %q outside tolerance", timestamp)
			writeError(w, http.StatusUnauthorized, "webhook timestamp outside tolerance")
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable webhook body")
			return
		}
		if !webhook.VerifySignature(m.secret, raw, signature) {
			logrus.Warnf("webhook rejected: signature mismatch")
			writeError(w, http.StatusUnauthorized, "invalid webhook signature")
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(raw))
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), RAW_BODY, raw)))
	})
}

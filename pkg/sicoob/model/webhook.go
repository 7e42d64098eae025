package model

import (
	"bytes"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type WebhookEventType string

const (
	WebhookEventPixReceived       = WebhookEventType("pix.received")
	WebhookEventPixReturned       = WebhookEventType("pix.returned")
	WebhookEventBoletoPaid        = WebhookEventType("boleto.paid")
	WebhookEventBoletoExpired     = WebhookEventType("boleto.expired")
	WebhookEventCobrancaPaid      = WebhookEventType("cobranca.paid")
	WebhookEventCobrancaCancelled = WebhookEventType("cobranca.cancelled")
)

// WebhookPayload is the body the bank posts to the webhook endpoint.
type WebhookPayload struct {
	EventoID   string           `json:"evento_id"`
	Timestamp  WebhookTimestamp `json:"timestamp"`
	TipoEvento WebhookEventType `json:"tipo_evento"`
	Dados      map[string]any   `json:"dados"`
}

// WebhookTimestamp is an RFC3339 string or a number of unix seconds, as the bank sends either.
type WebhookTimestamp string

func (t *WebhookTimestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = WebhookTimestamp(s)
		return nil
	}
	if string(data) == "null" {
		*t = ""
		return nil
	}
	*t = WebhookTimestamp(data)
	return nil
}

// Time parses the timestamp. Unix seconds may carry a fractional part.
func (t WebhookTimestamp) Time() (time.Time, error) {
	s := string(t)
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, int64(seconds*float64(time.Second))), nil
}

// WebhookEvent is a validated payload waiting in the processor queue.
type WebhookEvent struct {
	ID         string           `json:"id"`
	Type       WebhookEventType `json:"type"`
	Timestamp  int64            `json:"timestamp"` // Unix seconds.
	Payload    map[string]any   `json:"payload"`
	Signature  string           `json:"signature,omitempty"`
	ReceivedAt int64            `json:"received_at"`
}

// ChargeStatus is the local reconciliation status written by webhook handlers.
type ChargeStatus string

const (
	ChargeStatusPending   = ChargeStatus("PENDENTE")
	ChargeStatusPaid      = ChargeStatus("PAGO")
	ChargeStatusReturned  = ChargeStatus("DEVOLVIDO")
	ChargeStatusExpired   = ChargeStatus("VENCIDO")
	ChargeStatusCancelled = ChargeStatus("CANCELADO")
)

type NotificationStatus string

const (
	NotificationStatusPending = NotificationStatus("PENDENTE")
)

// Notification is a downstream message enqueued after a charge changes status.
type Notification struct {
	Type      string             `json:"tipo"`
	Reference string             `json:"referencia"`
	Data      map[string]any     `json:"dados"`
	Status    NotificationStatus `json:"status"`
	CreatedAt int64              `json:"created_at"`
}

package webhook

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/goccy/go-json"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/openebl/sicoob-gateway/pkg/util"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultMaxRetry   = 3 // Retries after the first attempt.
	DefaultRetryDelay = time.Second
)

type Config struct {
	Secret             string        `yaml:"secret"`
	TimestampTolerance time.Duration `yaml:"timestamp_tolerance"`
	MaxRetry           int           `yaml:"max_retry"`
	RetryDelay         time.Duration `yaml:"retry_delay"`
}

// Handler reacts to one event. Returning an error makes the processor retry it.
type Handler func(ctx context.Context, event model.WebhookEvent) error

type HandlerID uint64

type registeredHandler struct {
	id HandlerID
	fn Handler
}

type ProcessorOption func(p *Processor)

func WithClock(now func() time.Time) ProcessorOption {
	return func(p *Processor) {
		p.now = now
	}
}

// Processor verifies inbound events, queues them and drains the queue through the registered handlers.
type Processor struct {
	secret     []byte
	tolerance  time.Duration
	maxRetry   uint
	retryDelay time.Duration
	now        func() time.Time

	mu       sync.Mutex
	queue    []model.WebhookEvent
	draining bool
	handlers map[model.WebhookEventType][]registeredHandler
	nextID   HandlerID

	processedCount metric.Int64Counter
	failureCount   metric.Int64Counter
}

func NewProcessorWithConfig(cfg Config, opts ...ProcessorOption) *Processor {
	p := &Processor{
		secret:     []byte(cfg.Secret),
		tolerance:  cfg.TimestampTolerance,
		maxRetry:   uint(cfg.MaxRetry),
		retryDelay: cfg.RetryDelay,
		now:        time.Now,
		handlers:   make(map[model.WebhookEventType][]registeredHandler),

		processedCount: otlp_util.NewInt64Counter("webhook.event.processed.count", metric.WithDescription("The total number of webhook events drained from the queue")),
		failureCount:   otlp_util.NewInt64Counter("webhook.handler.failure.count", metric.WithDescription("The total number of webhook handlers that exhausted their retries")),
	}
	if p.tolerance <= 0 {
		p.tolerance = DefaultTimestampTolerance
	}
	if p.maxRetry == 0 {
		p.maxRetry = DefaultMaxRetry
	}
	if p.retryDelay <= 0 {
		p.retryDelay = DefaultRetryDelay
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ValidateSignature checks signature against the HMAC of the raw payload. It is false without a secret.
func (p *Processor) ValidateSignature(raw []byte, signature string) bool {
	return VerifySignature(p.secret, raw, signature)
}

// ValidateTimestamp accepts RFC3339 or unix seconds within the configured tolerance.
func (p *Processor) ValidateTimestamp(timestamp model.WebhookTimestamp) bool {
	ts, err := timestamp.Time()
	if err != nil {
		return false
	}
	return WithinTolerance(ts, p.now(), p.tolerance)
}

// ProcessWebhook verifies the payload and queues it. The call drains the queue unless another call is already draining it.
func (p *Processor) ProcessWebhook(ctx context.Context, raw []byte, signature string) error {
	if signature != "" && !p.ValidateSignature(raw, signature) {
		logrus.Warnf("webhook rejected: signature mismatch")
		return model.ErrInvalidSignature
	}

	var payload model.WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidWebhookPayload, err)
	}
	if payload.TipoEvento == "" {
		return fmt.Errorf("%w: tipo_evento cannot be blank", model.ErrInvalidWebhookPayload)
	}
	if !p.ValidateTimestamp(payload.Timestamp) {
		logrus.Warnf("webhook %s rejected: timestamp %q outside tolerance", payload.EventoID, payload.Timestamp)
		return model.ErrInvalidTimestamp
	}

	ts, _ := payload.Timestamp.Time()
	event := model.WebhookEvent{
		ID:         payload.EventoID,
		Type:       payload.TipoEvento,
		Timestamp:  ts.Unix(),
		Payload:    payload.Dados,
		Signature:  signature,
		ReceivedAt: p.now().Unix(),
	}
	if event.ID == "" {
		event.ID = util.NewUUID()
	}
	if event.Payload == nil {
		event.Payload = map[string]any{}
	}

	p.mu.Lock()
	p.queue = append(p.queue, event)
	p.mu.Unlock()
	logrus.Debugf("webhook %s (%s) queued", event.ID, event.Type)

	p.drain(context.WithoutCancel(ctx))
	return nil
}

func (p *Processor) drain(ctx context.Context) {
	p.mu.Lock()
	if p.draining {
		p.mu.Unlock()
		return
	}
	p.draining = true
	p.mu.Unlock()

	for {
		p.mu.Lock()
		if len(p.queue) == 0 {
			p.draining = false
			p.mu.Unlock()
			return
		}
		event := p.queue[0]
		p.queue = p.queue[1:]
		handlers := slices.Clone(p.handlers[event.Type])
		p.mu.Unlock()

		p.dispatch(ctx, event, handlers)
	}
}

func (p *Processor) dispatch(ctx context.Context, event model.WebhookEvent, handlers []registeredHandler) {
	ctx, span := otlp_util.Start(ctx, "gateway/webhook/Processor.dispatch",
		trace.WithAttributes(attribute.String("event_id", event.ID), attribute.String("event_type", string(event.Type))),
	)
	defer span.End()

	if len(handlers) == 0 {
		logrus.Debugf("no handler registered for webhook %s (%s)", event.ID, event.Type)
	}
	for _, h := range handlers {
		err := retry.Do(
			func() error { return h.fn(ctx, event) },
			retry.Attempts(p.maxRetry+1),
			retry.DelayType(func(n uint, _ error, _ *retry.Config) time.Duration {
				return p.retryDelay * time.Duration(n+1)
			}),
			retry.LastErrorOnly(true),
			retry.Context(ctx),
			retry.OnRetry(func(n uint, err error) {
				logrus.Warnf("webhook %s handler %d failed on attempt %d: %v", event.ID, h.id, n+1, err)
			}),
		)
		if err != nil {
			p.failureCount.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", string(event.Type))))
			logrus.Errorf("webhook %s handler %d gave up after %d attempts: %v", event.ID, h.id, p.maxRetry+1, err)
		}
	}
	p.processedCount.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", string(event.Type))))
}

// On registers handler for eventType. Handlers run in registration order.
func (p *Processor) On(eventType model.WebhookEventType, handler Handler) HandlerID {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	p.handlers[eventType] = append(p.handlers[eventType], registeredHandler{id: p.nextID, fn: handler})
	return p.nextID
}

// Off removes a handler. Unknown ids are ignored.
func (p *Processor) Off(eventType model.WebhookEventType, id HandlerID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[eventType] = slices.DeleteFunc(p.handlers[eventType], func(h registeredHandler) bool {
		return h.id == id
	})
	if len(p.handlers[eventType]) == 0 {
		delete(p.handlers, eventType)
	}
}

// EventQueue returns a snapshot of the events waiting to be drained.
func (p *Processor) EventQueue() []model.WebhookEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.queue)
}

func (p *Processor) ClearEventQueue() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = nil
}

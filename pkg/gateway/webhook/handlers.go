package webhook

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/openebl/sicoob-gateway/pkg/gateway/storage"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// reconciliation describes how a default handler maps an event onto the stored charge.
type reconciliation struct {
	eventType    model.WebhookEventType
	keyField     string
	status       model.ChargeStatus
	extraFields  []string
	notification string
}

var defaultReconciliations = []reconciliation{
	{model.WebhookEventPixReceived, "txid", model.ChargeStatusPaid, []string{"valor_pago", "data_pagamento"}, "pagamento_recebido"},
	{model.WebhookEventPixReturned, "txid", model.ChargeStatusReturned, []string{"motivo_devolucao", "data_devolucao"}, "pagamento_devolvido"},
	{model.WebhookEventBoletoPaid, "nosso_numero", model.ChargeStatusPaid, nil, "boleto_pago"},
	{model.WebhookEventBoletoExpired, "nosso_numero", model.ChargeStatusExpired, nil, "boleto_vencido"},
	{model.WebhookEventCobrancaPaid, "id", model.ChargeStatusPaid, nil, "cobranca_paga"},
	{model.WebhookEventCobrancaCancelled, "id", model.ChargeStatusCancelled, []string{"motivo"}, "cobranca_cancelada"},
}

// RegisterDefaultHandlers wires the reconciliation handler of every known event type to store.
func RegisterDefaultHandlers(p *Processor, store storage.WebhookEventStorage) map[model.WebhookEventType]HandlerID {
	ids := make(map[model.WebhookEventType]HandlerID, len(defaultReconciliations))
	for _, r := range defaultReconciliations {
		ids[r.eventType] = p.On(r.eventType, r.handler(store, p.now))
	}
	return ids
}

func (r reconciliation) handler(store storage.WebhookEventStorage, now func() time.Time) Handler {
	return func(ctx context.Context, event model.WebhookEvent) error {
		reference := payloadString(event.Payload, r.keyField)
		extra := make(map[string]any, len(r.extraFields))
		for _, field := range r.extraFields {
			if v, ok := event.Payload[field]; ok && v != nil {
				extra[field] = v
			}
		}
		ts := now().Unix()

		tasks := []func(ctx context.Context) error{
			func(ctx context.Context) error {
				return withWriteTx(ctx, store, func(ctx context.Context, tx storage.Tx) error {
					return store.SaveWebhookEvent(ctx, tx, event)
				})
			},
			func(ctx context.Context) error {
				if reference == "" {
					return fmt.Errorf("%s is missing from the event payload%w", r.keyField, model.ErrValidation)
				}
				return withWriteTx(ctx, store, func(ctx context.Context, tx storage.Tx) error {
					return store.UpdateChargeStatus(ctx, tx, storage.ChargeStatusUpdate{
						Identificador: reference,
						Status:        r.status,
						Extra:         extra,
						UpdatedAt:     ts,
					})
				})
			},
			func(ctx context.Context) error {
				if reference == "" {
					return fmt.Errorf("%s is missing from the event payload%w", r.keyField, model.ErrValidation)
				}
				data := map[string]any{"evento_id": event.ID, r.keyField: reference}
				for k, v := range extra {
					data[k] = v
				}
				return withWriteTx(ctx, store, func(ctx context.Context, tx storage.Tx) error {
					return store.EnqueueNotification(ctx, tx, model.Notification{
						Type:      r.notification,
						Reference: reference,
						Data:      data,
						Status:    model.NotificationStatusPending,
						CreatedAt: ts,
					})
				})
			},
		}

		errs := runIndependently(ctx, tasks)
		failed := 0
		for i, err := range errs {
			if err != nil {
				failed++
				logrus.Warnf("webhook %s (%s) task %d failed: %v", event.ID, event.Type, i, err)
			}
		}
		if failed == len(tasks) {
			return errors.Join(errs...)
		}
		return nil
	}
}

// runIndependently runs every task to completion and returns their errors by position.
func runIndependently(ctx context.Context, tasks []func(ctx context.Context) error) []error {
	errs := make([]error, len(tasks))
	var g errgroup.Group
	for i, task := range tasks {
		g.Go(func() error {
			errs[i] = task(ctx)
			return nil
		})
	}
	_ = g.Wait()
	return errs
}

func withWriteTx(ctx context.Context, store storage.TransactionInterface, fn func(ctx context.Context, tx storage.Tx) error) error {
	tx, ctx, err := store.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func payloadString(payload map[string]any, field string) string {
	switch v := payload[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

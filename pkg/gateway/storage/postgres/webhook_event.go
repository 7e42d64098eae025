package postgres

import (
	"context"
	"fmt"

	"github.com/openebl/sicoob-gateway/pkg/gateway/storage"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
)

// SaveWebhookEvent stores the event once. A redelivered event keeps the first copy.
func (s *_Storage) SaveWebhookEvent(ctx context.Context, tx storage.Tx, event model.WebhookEvent) error {
	query := `
INSERT INTO sicoob_webhook_events (id, event_type, event_timestamp, payload, signature, received_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING
`
	_, err := tx.Exec(
		ctx,
		query,
		event.ID,
		event.Type,
		event.Timestamp,
		event.Payload,
		event.Signature,
		event.ReceivedAt,
	)
	return err
}

func (s *_Storage) UpdateChargeStatus(ctx context.Context, tx storage.Tx, update storage.ChargeStatusUpdate) error {
	query := `
UPDATE sicoob_cobrancas SET
	status = $2,
	dados = COALESCE(dados, '{}'::JSONB) || $3::JSONB,
	updated_at = $4
WHERE identificador = $1
`
	extra := update.Extra
	if extra == nil {
		extra = map[string]any{}
	}
	result, err := tx.Exec(ctx, query, update.Identificador, update.Status, extra, update.UpdatedAt)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("cobrança %q não encontrada%w", update.Identificador, model.ErrNotFound)
	}
	return nil
}

func (s *_Storage) EnqueueNotification(ctx context.Context, tx storage.Tx, notification model.Notification) error {
	query := `
INSERT INTO sicoob_notificacoes (tipo, referencia, dados, status, created_at)
VALUES ($1, $2, $3, $4, $5)
`
	if notification.Status == "" {
		notification.Status = model.NotificationStatusPending
	}
	_, err := tx.Exec(
		ctx,
		query,
		notification.Type,
		notification.Reference,
		notification.Data,
		notification.Status,
		notification.CreatedAt,
	)
	return err
}

func (s *_Storage) ListNotifications(ctx context.Context, tx storage.Tx, req storage.ListNotificationsRequest) (storage.ListNotificationsResult, error) {
	query := `
WITH filtered_record AS (
	SELECT rec_id, tipo, referencia, dados, status, created_at
	FROM sicoob_notificacoes
	WHERE ($3 = '' OR status = $3)
),
paged_record AS (
	SELECT * FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2
)
SELECT
	(SELECT COUNT(*) FROM filtered_record) AS total,
	pr.tipo, pr.referencia, pr.dados, pr.status, pr.created_at
FROM (SELECT 1) AS dummy
LEFT JOIN paged_record pr ON TRUE
ORDER BY pr.rec_id ASC
`
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.Status)
	if err != nil {
		return storage.ListNotificationsResult{}, err
	}
	defer rows.Close()

	result := storage.ListNotificationsResult{Records: make([]model.Notification, 0)}
	for rows.Next() {
		var (
			tipo, referencia, status *string
			dados                    map[string]any
			createdAt                *int64
		)
		if err := rows.Scan(&result.Total, &tipo, &referencia, &dados, &status, &createdAt); err != nil {
			return storage.ListNotificationsResult{}, err
		}
		if tipo == nil {
			continue
		}
		result.Records = append(result.Records, model.Notification{
			Type:      *tipo,
			Reference: *referencia,
			Data:      dados,
			Status:    model.NotificationStatus(*status),
			CreatedAt: *createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return storage.ListNotificationsResult{}, err
	}
	return result, nil
}

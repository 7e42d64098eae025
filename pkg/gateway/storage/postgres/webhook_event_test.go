package postgres_test

import (
	"database/sql"
	"testing"

	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/openebl/sicoob-gateway/pkg/gateway/storage"
	"github.com/openebl/sicoob-gateway/pkg/gateway/storage/postgres"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/stretchr/testify/suite"
)

type WebhookEventStorageTestSuite struct {
	BaseTestSuite
	storage storage.WebhookEventStorage
}

func TestWebhookEventStorage(t *testing.T) {
	suite.Run(t, new(WebhookEventStorageTestSuite))
}

func (s *WebhookEventStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)

	db := stdlib.OpenDBFromPool(s.pgPool)
	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory("testdata/webhook"),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())
}

func (s *WebhookEventStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *WebhookEventStorageTestSuite) TestSaveWebhookEvent() {
	event := model.WebhookEvent{
		ID:         "evt-new",
		Type:       model.WebhookEventPixReceived,
		Timestamp:  1715300100,
		Payload:    map[string]any{"txid": "tx-paid-001", "valor": "150.00"},
		Signature:  "abcdef",
		ReceivedAt: 1715300101,
	}

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer tx.Rollback(ctx)
	s.Require().NoError(s.storage.SaveWebhookEvent(ctx, tx, event))
	// Redelivery of the same event is absorbed.
	s.Require().NoError(s.storage.SaveWebhookEvent(ctx, tx, event))
	s.Require().NoError(tx.Commit(ctx))

	var (
		eventType string
		payload   map[string]any
		count     int
	)
	s.Require().NoError(s.pgPool.QueryRow(s.ctx, `SELECT event_type, payload FROM sicoob_webhook_events WHERE id = $1`, "evt-new").Scan(&eventType, &payload))
	s.Equal("pix.received", eventType)
	s.Equal("tx-paid-001", payload["txid"])
	s.Require().NoError(s.pgPool.QueryRow(s.ctx, `SELECT COUNT(*) FROM sicoob_webhook_events`).Scan(&count))
	s.Equal(2, count)
}

func (s *WebhookEventStorageTestSuite) TestUpdateChargeStatus() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	err = s.storage.UpdateChargeStatus(ctx, tx, storage.ChargeStatusUpdate{
		Identificador: "tx-paid-001",
		Status:        model.ChargeStatusPaid,
		Extra:         map[string]any{"valor_pago": "150.00", "data_pagamento": "2024-05-10T10:00:00Z"},
		UpdatedAt:     1715335200,
	})
	s.Require().NoError(err)
	s.Require().NoError(tx.Commit(ctx))

	var (
		status    string
		dados     map[string]any
		updatedAt int64
	)
	s.Require().NoError(s.pgPool.QueryRow(s.ctx, `SELECT status, dados, updated_at FROM sicoob_cobrancas WHERE identificador = $1`, "tx-paid-001").Scan(&status, &dados, &updatedAt))
	s.Equal("PAGO", status)
	s.Equal(int64(1715335200), updatedAt)
	s.Equal(map[string]any{"valor": "150.00", "valor_pago": "150.00", "data_pagamento": "2024-05-10T10:00:00Z"}, dados)
}

func (s *WebhookEventStorageTestSuite) TestUpdateChargeStatusUnknownCharge() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	err = s.storage.UpdateChargeStatus(ctx, tx, storage.ChargeStatusUpdate{
		Identificador: "unknown",
		Status:        model.ChargeStatusExpired,
		UpdatedAt:     1715335200,
	})
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *WebhookEventStorageTestSuite) TestEnqueueAndListNotifications() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	s.Require().NoError(s.storage.EnqueueNotification(ctx, tx, model.Notification{
		Type:      "boleto_vencido",
		Reference: "90000001",
		Data:      map[string]any{"nosso_numero": "90000001"},
		CreatedAt: 1715335200,
	}))
	s.Require().NoError(tx.Commit(ctx))

	tx, ctx, err = s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	result, err := s.storage.ListNotifications(ctx, tx, storage.ListNotificationsRequest{Limit: 10, Status: model.NotificationStatusPending})
	s.Require().NoError(err)
	s.Equal(2, result.Total)
	s.Require().Len(result.Records, 2)
	s.Equal("tx-old-001", result.Records[0].Reference)
	s.Equal("boleto_vencido", result.Records[1].Type)
	s.Equal(model.NotificationStatusPending, result.Records[1].Status)
	s.Equal("90000001", result.Records[1].Data["nosso_numero"])

	result, err = s.storage.ListNotifications(ctx, tx, storage.ListNotificationsRequest{Offset: 1, Limit: 1})
	s.Require().NoError(err)
	s.Equal(3, result.Total)
	s.Require().Len(result.Records, 1)
	s.Equal("80000001", result.Records[0].Reference)

	result, err = s.storage.ListNotifications(ctx, tx, storage.ListNotificationsRequest{Offset: 10, Limit: 1})
	s.Require().NoError(err)
	s.Equal(3, result.Total)
	s.Empty(result.Records)
}

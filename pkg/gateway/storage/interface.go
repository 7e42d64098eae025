package storage

import (
	"context"
	"database/sql"

	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
)

type StorageContextKey string

const (
	TRANSACTION StorageContextKey = "transaction"
)

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	// RowsAffected returns the number of rows affected by an
	// update, insert, or delete.
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

type TransactionInterface interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
}

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

const (
	ChargeTypePixImmediate = "PIX_IMEDIATA"
	ChargeTypePixDueDate   = "PIX_VENCIMENTO"
	ChargeTypeBoleto       = "BOLETO"
)

// ChargeRecord is the local copy of a charge created through the gateway.
type ChargeRecord struct {
	Identificador string             `json:"identificador"` // txid or nosso_numero.
	Tipo          string             `json:"tipo"`          // One of the ChargeType* constants.
	Status        model.ChargeStatus `json:"status"`
	Dados         map[string]any     `json:"dados"`
	CreatedAt     int64              `json:"created_at"`
}

// ChargeStatusUpdate is the reconciliation written to sicoob_cobrancas when a webhook event arrives.
type ChargeStatusUpdate struct {
	Identificador string             `json:"identificador"` // txid, nosso_numero or the gateway charge id.
	Status        model.ChargeStatus `json:"status"`
	Extra         map[string]any     `json:"extra"` // Merged into the stored charge data.
	UpdatedAt     int64              `json:"updated_at"`
}

// ListNotificationsRequest is the request to list enqueued notifications.
type ListNotificationsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	Status model.NotificationStatus `json:"status"`
}

type ListNotificationsResult struct {
	Total   int                  `json:"total"`
	Records []model.Notification `json:"records"`
}

type ChargeStorage interface {
	TransactionInterface
	AddCharge(ctx context.Context, tx Tx, record ChargeRecord) error
}

type WebhookEventStorage interface {
	TransactionInterface
	SaveWebhookEvent(ctx context.Context, tx Tx, event model.WebhookEvent) error
	UpdateChargeStatus(ctx context.Context, tx Tx, update ChargeStatusUpdate) error
	EnqueueNotification(ctx context.Context, tx Tx, notification model.Notification) error
	ListNotifications(ctx context.Context, tx Tx, req ListNotificationsRequest) (ListNotificationsResult, error)
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/openebl/sicoob-gateway/pkg/gateway/storage"
	"github.com/sirupsen/logrus"
)

func (tx *_TxWrapper) Commit(ctx context.Context) error {
	return tx.tx.Commit(ctx)
}

func (tx *_TxWrapper) Rollback(ctx context.Context) error {
	return tx.tx.Rollback(ctx)
}

func (tx *_TxWrapper) Exec(ctx context.Context, query string, args ...any) (storage.Result, error) {
	result, err := tx.tx.Exec(ctx, query, args...)
	if err != nil {
		logStatementError("exec", query, err)
		return nil, err
	}
	return &_ResultWrapper{result}, nil
}

func (tx *_TxWrapper) Query(ctx context.Context, query string, args ...any) (storage.Rows, error) {
	rows, err := tx.tx.Query(ctx, query, args...)
	if err != nil {
		logStatementError("query", query, err)
		return nil, err
	}
	return &_RowsWrapper{rows}, nil
}

// logStatementError logs the first line of the failed statement along with the postgres error code.
func logStatementError(op, query string, err error) {
	statement, _, _ := strings.Cut(strings.TrimSpace(query), "\n")
	fields := logrus.Fields{"op": op, "statement": statement}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields["sqlstate"] = pgErr.Code
	}
	logrus.WithFields(fields).Errorf("postgres statement failed: %v", err)
}

func (tx *_TxWrapper) QueryRow(ctx context.Context, sql string, args ...any) storage.Row {
	return &_RowWrapper{tx.tx.QueryRow(ctx, sql, args...)}
}

func (r *_ResultWrapper) RowsAffected() (int64, error) {
	return r.result.RowsAffected(), nil
}

func (r *_RowsWrapper) Close() {
	r.rows.Close()
}

func (r *_RowsWrapper) Err() error {
	return r.rows.Err()
}

func (r *_RowsWrapper) Next() bool {
	return r.rows.Next()
}

func (r *_RowsWrapper) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *_RowWrapper) Scan(dest ...any) error {
	return r.row.Scan(dest...)
}

func (tx *_JoinedTx) Commit(context.Context) error {
	return nil
}

func (tx *_JoinedTx) Rollback(context.Context) error {
	return nil
}

// CreateTx begins a transaction. A ctx already carrying one joins it: the outer owner commits or rolls back.
func (s *_Storage) CreateTx(ctx context.Context, options ...storage.CreateTxOption) (storage.Tx, context.Context, error) {
	if outer, ok := ctx.Value(storage.TRANSACTION).(*_TxWrapper); ok {
		return &_JoinedTx{outer}, ctx, nil
	}

	sqlTxOption := sql.TxOptions{}
	for _, opt := range options {
		opt(&sqlTxOption)
	}

	txOption := pgx.TxOptions{AccessMode: pgx.ReadWrite}
	if sqlTxOption.ReadOnly {
		txOption.AccessMode = pgx.ReadOnly
	}
	switch sqlTxOption.Isolation {
	case sql.LevelReadUncommitted:
		txOption.IsoLevel = pgx.ReadUncommitted
	case sql.LevelRepeatableRead, sql.LevelSnapshot:
		txOption.IsoLevel = pgx.RepeatableRead
	case sql.LevelSerializable, sql.LevelLinearizable:
		txOption.IsoLevel = pgx.Serializable
	default:
		txOption.IsoLevel = pgx.ReadCommitted
	}

	tx, err := s.dbPool.BeginTx(ctx, txOption)
	if err != nil {
		logrus.Errorf("failed to begin transaction: %v", err)
		return nil, ctx, err
	}
	wrapper := &_TxWrapper{tx}
	return wrapper, context.WithValue(ctx, storage.TRANSACTION, wrapper), nil
}

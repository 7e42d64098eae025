package postgres

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openebl/sicoob-gateway/pkg/util"
)

type _Storage struct {
	dbPool *pgxpool.Pool
}

type _TxWrapper struct {
	tx pgx.Tx
}

// _JoinedTx runs statements on an outer transaction it does not own.
type _JoinedTx struct {
	*_TxWrapper
}

type _RowsWrapper struct {
	rows pgx.Rows
}

type _RowWrapper struct {
	row pgx.Row
}

type _ResultWrapper struct {
	result pgconn.CommandTag
}

func NewStorageWithPool(dbPool *pgxpool.Pool) *_Storage {
	return &_Storage{dbPool: dbPool}
}

func NewStorageWithConfig(config util.PostgresDatabaseConfig) (*_Storage, error) {
	dbPool, err := util.NewPostgresDBPool(config)
	if err != nil {
		return nil, err
	}
	return &_Storage{dbPool: dbPool}, nil
}

func (s *_Storage) Close() {
	s.dbPool.Close()
}

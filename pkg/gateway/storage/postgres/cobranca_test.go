package postgres_test

import (
	"testing"

	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/openebl/sicoob-gateway/pkg/gateway/storage"
	"github.com/openebl/sicoob-gateway/pkg/gateway/storage/postgres"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/stretchr/testify/suite"
)

type ChargeStorageTestSuite struct {
	BaseTestSuite
	storage storage.ChargeStorage
}

func TestChargeStorage(t *testing.T) {
	suite.Run(t, new(ChargeStorageTestSuite))
}

func (s *ChargeStorageTestSuite) SetupTest() {
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

func (s *ChargeStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *ChargeStorageTestSuite) TestAddCharge() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	s.Require().NoError(s.storage.AddCharge(ctx, tx, storage.ChargeRecord{
		Identificador: "tx-new-001",
		Tipo:          storage.ChargeTypePixImmediate,
		Status:        model.ChargeStatusPending,
		Dados:         map[string]any{"valor": "42.00"},
		CreatedAt:     1715335200,
	}))
	// Re-creating the same charge replaces the stored copy.
	s.Require().NoError(s.storage.AddCharge(ctx, tx, storage.ChargeRecord{
		Identificador: "90000001",
		Tipo:          storage.ChargeTypeBoleto,
		Status:        model.ChargeStatusPending,
		CreatedAt:     1715335300,
	}))
	s.Require().NoError(tx.Commit(ctx))

	var (
		tipo, status string
		dados        map[string]any
		createdAt    int64
		updatedAt    int64
	)
	s.Require().NoError(s.pgPool.QueryRow(s.ctx, `SELECT tipo, status, dados FROM sicoob_cobrancas WHERE identificador = $1`, "tx-new-001").Scan(&tipo, &status, &dados))
	s.Equal("PIX_IMEDIATA", tipo)
	s.Equal("PENDENTE", status)
	s.Equal("42.00", dados["valor"])

	s.Require().NoError(s.pgPool.QueryRow(s.ctx, `SELECT status, created_at, updated_at FROM sicoob_cobrancas WHERE identificador = $1`, "90000001").Scan(&status, &createdAt, &updatedAt))
	s.Equal("PENDENTE", status)
	s.Equal(int64(1715300000), createdAt)
	s.Equal(int64(1715335300), updatedAt)
}

func (s *ChargeStorageTestSuite) TestNestedTxJoinsOuter() {
	outer, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)

	inner, innerCtx, err := s.storage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	s.Require().NoError(s.storage.AddCharge(innerCtx, inner, storage.ChargeRecord{
		Identificador: "tx-joined-001",
		Tipo:          storage.ChargeTypePixImmediate,
		Status:        model.ChargeStatusPending,
		CreatedAt:     1715335200,
	}))
	s.Require().NoError(inner.Commit(innerCtx))
	s.Require().NoError(outer.Rollback(ctx))

	var count int
	s.Require().NoError(s.pgPool.QueryRow(s.ctx, `SELECT count(*) FROM sicoob_cobrancas WHERE identificador = $1`, "tx-joined-001").Scan(&count))
	s.Zero(count)
}

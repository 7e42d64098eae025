package postgres_test

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openebl/sicoob-gateway/pkg/util"
	"github.com/stretchr/testify/suite"
)

var gatewayTables = []string{
	"sicoob_webhook_events",
	"sicoob_cobrancas",
	"sicoob_notificacoes",
}

type BaseTestSuite struct {
	suite.Suite
	ctx    context.Context
	pgPool *pgxpool.Pool
}

// testDatabaseConfig reads the DATABASE_* variables. ok is false when no database is available.
func testDatabaseConfig() (cfg util.PostgresDatabaseConfig, ok bool) {
	cfg.Host = os.Getenv("DATABASE_HOST")
	if cfg.Host == "" {
		return cfg, false
	}
	cfg.Port = 5432
	if port, err := strconv.Atoi(os.Getenv("DATABASE_PORT")); err == nil {
		cfg.Port = port
	}
	cfg.Database = os.Getenv("DATABASE_NAME")
	cfg.User = os.Getenv("DATABASE_USER")
	cfg.Password = os.Getenv("DATABASE_PASSWORD")
	cfg.SSLMode = "disable"
	cfg.PoolSize = 5
	return cfg, true
}

func (s *BaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	cfg, ok := testDatabaseConfig()
	if !ok {
		s.T().Skip("DATABASE_HOST is not set")
	}

	pool, err := util.NewPostgresDBPool(cfg)
	s.Require().NoError(err)
	s.pgPool = pool

	_, err = pool.Exec(s.ctx, `TRUNCATE `+strings.Join(gatewayTables, ", "))
	s.Require().NoError(err)
}

func (s *BaseTestSuite) TearDownTest() {
	if s.pgPool != nil {
		s.pgPool.Close()
	}
}

package postgres

import (
	"context"

	"github.com/openebl/sicoob-gateway/pkg/gateway/storage"
)

func (s *_Storage) AddCharge(ctx context.Context, tx storage.Tx, record storage.ChargeRecord) error {
	query := `
INSERT INTO sicoob_cobrancas (identificador, tipo, status, dados, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (identificador) DO UPDATE SET
	tipo = excluded.tipo,
	status = excluded.status,
	dados = excluded.dados,
	updated_at = excluded.updated_at
`
	dados := record.Dados
	if dados == nil {
		dados = map[string]any{}
	}
	_, err := tx.Exec(
		ctx,
		query,
		record.Identificador,
		record.Tipo,
		record.Status,
		dados,
		record.CreatedAt,
	)
	return err
}

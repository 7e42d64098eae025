package boleto

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPayload(t *testing.T) {
	payload := map[string]any{
		"a": "",
		"b": nil,
		"c": map[string]any{"d": nil},
		"e": []any{1, ""},
	}
	assert.Equal(t, map[string]any{"e": []any{1}}, CleanPayload(payload))
}

func TestCleanPayloadKeepsZeroAndFalse(t *testing.T) {
	payload := map[string]any{
		"zero":   0,
		"false":  false,
		"blank":  "   ",
		"nested": map[string]any{"list": []any{map[string]any{"x": ""}}, "y": "ok"},
	}
	assert.Equal(t, map[string]any{
		"zero":   0,
		"false":  false,
		"nested": map[string]any{"y": "ok"},
	}, CleanPayload(payload))
}

func TestToPayloadKeepsDecimalPrecision(t *testing.T) {
	valor, err := model.NewDecimalFromString("1234567.89")
	require.NoError(t, err)

	payload, err := toPayload(model.BoletoV3{
		NumeroContrato: 1,
		ValorNominal:   valor,
		Pagador:        &model.PagadorV3{Nome: "Fulano", Endereco: ""},
	})
	require.NoError(t, err)

	cleaned := CleanPayload(payload)
	raw, err := json.Marshal(cleaned)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"valorNominal":1234567.89`)
	assert.Equal(t, map[string]any{"nome": "Fulano"}, cleaned["pagador"])
}

func TestWithoutFields(t *testing.T) {
	payload := map[string]any{"modalidade": 1, "numeroContrato": 2, "seuNumero": "A1"}
	stripped := withoutFields(payload, []string{"modalidade"})

	assert.Equal(t, map[string]any{"numeroContrato": 2, "seuNumero": "A1"}, stripped)
	assert.Contains(t, payload, "modalidade")
}

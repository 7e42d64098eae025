package boleto

import (
	"testing"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectedFieldsStructured(t *testing.T) {
	body := []byte(`{"mensagens":[{"codigo":"4001","mensagem":"Propriedade não permitida","campo":"modalidade"},{"codigo":"especieDocumento","mensagem":"x"}]}`)
	assert.Equal(t, []string{"modalidade", "especieDocumento"}, rejectedFields(body))
}

func TestRejectedFieldsFallsBackToText(t *testing.T) {
	body := []byte(`{"message":"Unrecognized field NUMEROCONTRATO and numeroContaCorrente"}`)
	assert.Equal(t, []string{"numeroContrato", "numeroContaCorrente"}, rejectedFields(body))

	// Structured messages without a known field still fall back to the text.
	body = []byte(`{"mensagens":[{"codigo":"9","mensagem":"campo modalidade inesperado"}]}`)
	assert.Equal(t, []string{"modalidade"}, rejectedFields(body))

	assert.Empty(t, rejectedFields([]byte("Not Acceptable")))
	assert.Empty(t, rejectedFields(nil))
}

func signedToken(t *testing.T, claims map[string]any) string {
	token := jwt.New()
	for k, v := range claims {
		require.NoError(t, token.Set(k, v))
	}
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte("irrelevant")))
	require.NoError(t, err)
	return string(signed)
}

func TestMissingScopes(t *testing.T) {
	missing, err := missingScopes(signedToken(t, map[string]any{"scp": []string{"boletos_inclusao", "boletos_consulta"}}), ScopeBoletoCreate)
	require.NoError(t, err)
	assert.Empty(t, missing)

	missing, err = missingScopes(signedToken(t, map[string]any{"scope": "cob.read cob.write"}), ScopeBoletoCreate)
	require.NoError(t, err)
	assert.Equal(t, []string{ScopeBoletoCreate}, missing)

	missing, err = missingScopes(signedToken(t, map[string]any{"scope": "cob.read boletos_inclusao"}), ScopeBoletoCreate)
	require.NoError(t, err)
	assert.Empty(t, missing)

	_, err = missingScopes("opaque-token", ScopeBoletoCreate)
	assert.Error(t, err)
}

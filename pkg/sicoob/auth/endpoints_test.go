package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEndpoints(t *testing.T) {
	tokenURL := "https://auth.sicoob.com.br/auth/realms/cooperado/protocol/openid-connect/token"

	endpoints := ResolveEndpoints(tokenURL, "", "")
	assert.Equal(t, tokenURL, endpoints.Token)
	assert.Equal(t, tokenURL+"/validate", endpoints.Validate)
	assert.Equal(t, "https://auth.sicoob.com.br/auth/realms/cooperado/protocol/openid-connect/", endpoints.Base)

	endpoints = ResolveEndpoints(tokenURL, "https://auth.example.com/introspect", "https://auth.example.com/api")
	assert.Equal(t, "https://auth.example.com/introspect", endpoints.Validate)
	assert.Equal(t, "https://auth.example.com/api/", endpoints.Base)
}

func TestDeriveBaseURL(t *testing.T) {
	assert.Equal(t, "https://host/oauth/", deriveBaseURL("https://host/oauth/token"))
	assert.Equal(t, "https://host/oauth/", deriveBaseURL("https://host/oauth/token?x=1"))
	assert.Equal(t, "https://host/oauth2/", deriveBaseURL("https://host/oauth2"))

	// Unparseable or relative URLs fall back to the input.
	assert.Equal(t, "not a url", deriveBaseURL("not a url"))
	assert.Equal(t, "", deriveBaseURL(""))
}

func TestDeriveValidateURL(t *testing.T) {
	assert.Equal(t, "https://host/oauth/token/validate", deriveValidateURL("https://host/oauth/token"))

	// Underivable URLs fall back to the input.
	assert.Equal(t, "https://host/oauth/access", deriveValidateURL("https://host/oauth/access"))
	assert.Equal(t, "::", deriveValidateURL("::"))
	assert.Equal(t, "", deriveValidateURL(""))
}

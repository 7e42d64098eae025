package model_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/stretchr/testify/assert"
)

func TestErrorKind(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"certificate", model.ErrInvalidPKCS12, http.StatusInternalServerError, "CERTIFICATE_ERROR"},
		{"auth", model.ErrTokenRequestFailed, http.StatusUnauthorized, "AUTH_ERROR"},
		{"validation", fmt.Errorf("%w: %q", model.ErrInvalidChargeType, "CARTAO"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"webhook", model.ErrInvalidSignature, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", &model.RemoteError{Status: 404, Err: model.ErrRemoteNotFound}, http.StatusNotFound, "NOT_FOUND_ERROR"},
		{"rate limit", &model.RateLimitError{RetryAfter: 3}, http.StatusTooManyRequests, "RATE_LIMIT_ERROR"},
		{"server status kept", &model.ServerError{Status: http.StatusServiceUnavailable}, http.StatusServiceUnavailable, "SERVER_ERROR"},
		{"wrapped server", fmt.Errorf("listing: %w", model.ErrServer), http.StatusBadGateway, "SERVER_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := model.ErrorKind(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestErrorDetails(t *testing.T) {
	assert.Equal(t, map[string]any{"title": "x"}, model.ErrorDetails(&model.ServerError{Status: 500, Body: []byte(`{"title":"x"}`)}))
	assert.Equal(t, "Not Acceptable", model.ErrorDetails(&model.RemoteError{Status: 406, Body: []byte("Not Acceptable"), Err: model.ErrInvalidBoletoPayload}))
	assert.Equal(t, map[string]int{"retryAfter": 7}, model.ErrorDetails(&model.RateLimitError{RetryAfter: 7}))
	assert.Equal(t, []string{"modalidade"}, model.ErrorDetails(model.WithDetails(model.ErrInvalidBoletoPayload, []string{"modalidade"})))
	assert.Nil(t, model.ErrorDetails(errors.New("plain")))
	assert.Nil(t, model.WithDetails(nil, "ignored"))
}

func TestRemoteStatus(t *testing.T) {
	assert.Equal(t, 406, model.RemoteStatus(fmt.Errorf("create: %w", &model.RemoteError{Status: 406, Err: model.ErrInvalidBoletoPayload})))
	assert.Equal(t, 502, model.RemoteStatus(&model.ServerError{Status: 502}))
	assert.Equal(t, 429, model.RemoteStatus(&model.RateLimitError{}))
	assert.Equal(t, 0, model.RemoteStatus(errors.New("local")))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "rate limited by bank API, retry after 3s", (&model.RateLimitError{RetryAfter: 3}).Error())
	assert.Equal(t, "rate limited by bank API", (&model.RateLimitError{}).Error())
	assert.Equal(t, "recurso não encontrado (status 404)", (&model.RemoteError{Status: 404, Err: model.ErrRemoteNotFound}).Error())
	assert.Equal(t, "tipo de cobrança inválido", model.ErrInvalidChargeType.Error())
}

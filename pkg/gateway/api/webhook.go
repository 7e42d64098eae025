package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/openebl/sicoob-gateway/pkg/gateway/middleware"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/sirupsen/logrus"
)

func (a *API) receiveWebhook(w http.ResponseWriter, r *http.Request) {
	raw, ok := r.Context().Value(middleware.RAW_BODY).([]byte)
	if !ok {
		var err error
		if raw, err = io.ReadAll(r.Body); err != nil {
			writeError(w, errMalformedBody)
			return
		}
	}

	err := a.webhook.ProcessWebhook(r.Context(), raw, r.Header.Get(middleware.SignatureHeader))
	if errors.Is(err, model.ErrValidation) {
		writeError(w, err)
		return
	}
	if err != nil {
		logrus.Errorf("failed to process webhook: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Erro ao processar webhook", Code: "INTERNAL_ERROR"})
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "Webhook processado"})
}

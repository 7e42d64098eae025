package api

import (
	"net/http"

	"github.com/openebl/sicoob-gateway/pkg/gateway/storage"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
)

func (a *API) createCobranca(w http.ResponseWriter, r *http.Request) {
	var req model.CobrancaData
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	cobranca, err := a.cobranca.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	a.recordCobranca(r, req, cobranca)
	writeData(w, http.StatusCreated, cobranca)
}

func (a *API) getCobranca(w http.ResponseWriter, r *http.Request) {
	cobranca, err := a.cobranca.Query(r.Context(), pathParam(r, "id"), chargeType(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, cobranca)
}

func (a *API) updateCobranca(w http.ResponseWriter, r *http.Request) {
	var req model.CobrancaData
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Tipo == "" {
		req.Tipo = chargeType(r)
	}

	cobranca, err := a.cobranca.Update(r.Context(), pathParam(r, "id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	a.recordCobranca(r, req, cobranca)
	writeData(w, http.StatusOK, cobranca)
}

func (a *API) cancelCobranca(w http.ResponseWriter, r *http.Request) {
	if err := a.cobranca.Cancel(r.Context(), pathParam(r, "id"), chargeType(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listCobrancas(w http.ResponseWriter, r *http.Request) {
	page, err := positiveQuery(r, "pagina", defaultPage)
	if err != nil {
		writeError(w, err)
		return
	}

	list, err := a.cobranca.List(r.Context(), chargeType(r), page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (a *API) recordCobranca(r *http.Request, req model.CobrancaData, cobranca model.Cobranca) {
	switch {
	case cobranca.Pix != nil:
		tipo := storage.ChargeTypePixImmediate
		if req.Pix != nil && req.Pix.Modalidade == model.PixModalityDueDate {
			tipo = storage.ChargeTypePixDueDate
		}
		a.recordCharge(r.Context(), cobranca.Pix.Txid, tipo, cobranca.Pix)
	case cobranca.Boleto != nil:
		a.recordCharge(r.Context(), cobranca.Boleto.NossoNumero, storage.ChargeTypeBoleto, cobranca.Boleto)
	}
}

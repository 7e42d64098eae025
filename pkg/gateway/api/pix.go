package api

import (
	"net/http"

	"github.com/openebl/sicoob-gateway/pkg/gateway/storage"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
)

func (a *API) createImmediateCharge(w http.ResponseWriter, r *http.Request) {
	var req model.CobrancaImediata
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	charge, err := a.pix.CreateImmediateCharge(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	a.recordCharge(r.Context(), charge.Txid, storage.ChargeTypePixImmediate, charge)
	writeData(w, http.StatusCreated, charge)
}

func (a *API) createDueDateCharge(w http.ResponseWriter, r *http.Request) {
	var req model.CobrancaVencimento
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	charge, err := a.pix.CreateDueDateCharge(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	a.recordCharge(r.Context(), charge.Txid, storage.ChargeTypePixDueDate, charge)
	writeData(w, http.StatusCreated, charge)
}

func (a *API) getPixCharge(w http.ResponseWriter, r *http.Request) {
	charge, err := a.pix.GetCharge(r.Context(), pathParam(r, "txid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, charge)
}

func (a *API) cancelPixCharge(w http.ResponseWriter, r *http.Request) {
	if err := a.pix.CancelCharge(r.Context(), pathParam(r, "txid")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listPixCharges(w http.ResponseWriter, r *http.Request) {
	page, err := positiveQuery(r, "pagina", defaultPage)
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := positiveQuery(r, "limite", defaultLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	query := r.URL.Query()
	list, err := a.pix.ListCharges(r.Context(), model.PixListFilter{
		Status:   model.PixChargeStatus(query.Get("status")),
		Start:    query.Get("inicio"),
		End:      query.Get("fim"),
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (a *API) getQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := a.pix.GetQRCode(r.Context(), pathParam(r, "txid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, qrCode)
}

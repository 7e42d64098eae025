package api

import (
	"fmt"
	"net/http"

	"github.com/openebl/sicoob-gateway/pkg/gateway/storage"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/sirupsen/logrus"
)

func (a *API) createBoleto(w http.ResponseWriter, r *http.Request) {
	var req model.BoletoV3
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	boleto, err := a.boleto.CreateBoleto(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	a.recordCharge(r.Context(), boleto.NossoNumero, storage.ChargeTypeBoleto, boleto)
	writeData(w, http.StatusCreated, boleto)
}

func (a *API) generateBoleto(w http.ResponseWriter, r *http.Request) {
	var req model.DadosBoleto
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	boleto, err := a.boleto.GenerateBoleto(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	a.recordCharge(r.Context(), boleto.NossoNumero, storage.ChargeTypeBoleto, boleto)
	writeData(w, http.StatusCreated, boleto)
}

func (a *API) getBoleto(w http.ResponseWriter, r *http.Request) {
	boleto, err := a.boleto.GetBoleto(r.Context(), pathParam(r, "nossoNumero"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, boleto)
}

func (a *API) cancelBoleto(w http.ResponseWriter, r *http.Request) {
	if err := a.boleto.CancelBoleto(r.Context(), pathParam(r, "nossoNumero")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listBoletos(w http.ResponseWriter, r *http.Request) {
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
	list, err := a.boleto.ListBoletos(r.Context(), model.BoletoListFilter{
		Status:     model.BoletoStatus(query.Get("status")),
		DataInicio: query.Get("dataInicio"),
		DataFim:    query.Get("dataFim"),
		Pagina:     page,
		Limite:     limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (a *API) downloadBoletoPDF(w http.ResponseWriter, r *http.Request) {
	nossoNumero := pathParam(r, "nossoNumero")
	pdf, err := a.boleto.DownloadPDF(r.Context(), nossoNumero)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"boleto-%s.pdf\"", nossoNumero))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		logrus.Warnf("failed to write boleto %s PDF: %v", nossoNumero, err)
	}
}

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

func pathParam(r *http.Request, name string) string {
	return strings.TrimSpace(mux.Vars(r)[name])
}

// positiveQuery reads a positive integer query parameter, falling back to def when it is absent.
func positiveQuery(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("parâmetro %s deve ser um inteiro positivo%w", name, model.ErrValidation)
	}
	return v, nil
}

// chargeType reads ?tipo=, defaulting to PIX. Matching is case-insensitive.
func chargeType(r *http.Request) model.ChargeType {
	tipo := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("tipo")))
	if tipo == "" {
		return model.ChargeTypePix
	}
	return model.ChargeType(tipo)
}

package api

import (
	"net/http"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// health reports whether the gateway can still authenticate against the bank.
func (a *API) health(w http.ResponseWriter, r *http.Request) {
	now := a.now().Unix()
	token, err := a.tokens.GetAccessToken(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "down", Timestamp: now, Error: err.Error()})
		return
	}
	if !a.tokens.ValidateToken(r.Context(), token) {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded", Timestamp: now})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: now})
}

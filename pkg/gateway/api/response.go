package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/sirupsen/logrus"
)

type successResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

var errMalformedBody = fmt.Errorf("corpo da requisição inválido%w", model.ErrValidation)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("failed to encode/write response: %v", err)
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successResponse{Success: true, Data: data})
}

// writeError maps err onto the error envelope. Errors outside the model taxonomy do not leak their message.
func writeError(w http.ResponseWriter, err error) {
	status, code := model.ErrorKind(err)
	resp := errorResponse{
		Error:   err.Error(),
		Code:    code,
		Details: model.ErrorDetails(err),
	}
	if code == "INTERNAL_ERROR" {
		logrus.Errorf("unhandled error: %v", err)
		resp.Error = "Erro interno do servidor"
		resp.Details = nil
	}
	writeJSON(w, status, resp)
}

func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: corpo vazio", errMalformedBody)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return nil
}

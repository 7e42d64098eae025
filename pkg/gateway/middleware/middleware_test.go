package middleware_test

import (
	"net/http"
	"time"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

var OkHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
})

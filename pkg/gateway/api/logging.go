package api

import (
	"net/http"
	"time"

	"github.com/openebl/sicoob-gateway/pkg/gateway/middleware"
	"github.com/openebl/sicoob-gateway/pkg/util"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-Id"

// statusRecorder remembers the response status and, for failures, the body written.
type statusRecorder struct {
	http.ResponseWriter
	status int
	body   []byte
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status >= http.StatusBadRequest && len(r.body) < 1024 {
		r.body = append(r.body, b...)
	}
	return r.ResponseWriter.Write(b)
}

// Log tags every request with an X-Request-Id and logs its outcome. 5xx responses are logged as errors.
func Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = util.NewUUID()
		}
		w.Header().Set(RequestIDHeader, requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(recorder, r)

		entry := logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     recorder.status,
			"client_ip":  middleware.ClientIP(r),
			"duration":   time.Since(start).String(),
		})
		switch {
		case recorder.status >= http.StatusInternalServerError:
			entry.Errorf("request failed: %s", recorder.body)
		case recorder.status >= http.StatusBadRequest:
			entry.Warnf("request rejected: %s", recorder.body)
		default:
			entry.Debug("request served")
		}
	})
}

package middleware

import (
	"net/http"
	"time"

	"github.com/telhawk-systems/telhawk-audit/common/logging"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// AccessLog logs one line per request with status and duration.
func AccessLog(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.InfoContext(r.Context(), "HTTP request",
				"method", r.Method,
				logging.Path(r.URL.Path),
				"status", rec.status,
				logging.Duration(time.Since(start).Milliseconds()),
			)
		})
	}
}

package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/telhawk-systems/telhawk-audit/common/logging"
	"github.com/telhawk-systems/telhawk-audit/common/middleware"
	"github.com/telhawk-systems/telhawk-audit/core/internal/handlers"
)

// Options controls optional routes.
type Options struct {
	// MetricsPath exposes Prometheus metrics when non-empty.
	MetricsPath string
	// Logger enables access logging when set.
	Logger *logging.Logger
}

// NewRouter wires HTTP routes for the decoder service.
func NewRouter(h *handlers.ProcessorHandler, opts Options) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/decode", h.Decode)
	mux.HandleFunc("/api/v1/event-types/{ref}", h.EventType)
	mux.HandleFunc("/api/v1/field-types/{name}", h.FieldType)
	mux.HandleFunc("/healthz", h.Health)
	if opts.MetricsPath != "" {
		mux.Handle(opts.MetricsPath, promhttp.Handler())
	}

	var handler http.Handler = mux
	if opts.Logger != nil {
		handler = middleware.AccessLog(opts.Logger)(handler)
	}
	return middleware.RequestID(handler)
}

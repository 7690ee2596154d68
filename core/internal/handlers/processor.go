package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/telhawk-systems/telhawk-audit/common/httputil"
	"github.com/telhawk-systems/telhawk-audit/core/internal/pipeline"
	"github.com/telhawk-systems/telhawk-audit/core/internal/service"
	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit"
)

const maxBodyBytes = 10 << 20

// ProcessorHandler manages decoding and lookup HTTP endpoints.
type ProcessorHandler struct {
	processor *service.Processor
	decoder   *audit.Decoder
}

// NewProcessorHandler constructs a new handler. The decoder is used for
// the lookup endpoints and should be the one the processor's pipeline uses.
func NewProcessorHandler(p *service.Processor, d *audit.Decoder) *ProcessorHandler {
	return &ProcessorHandler{processor: p, decoder: d}
}

// BatchResponse is returned when the request body is a JSON array.
type BatchResponse struct {
	Records []*pipeline.Result `json:"records"`
	Errors  []ItemError        `json:"errors,omitempty"`
}

// ItemError reports an envelope in a batch that could not be decoded.
type ItemError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// EventTypeResponse describes a message type.
type EventTypeResponse struct {
	ID        uint32 `json:"id"`
	Name      string `json:"name"`
	Known     bool   `json:"known"`
	Multipart bool   `json:"multipart"`
}

// FieldTypeResponse describes a field name's declared type.
type FieldTypeResponse struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Known bool   `json:"known"`
}

// Decode handles POST /api/v1/decode. The body is a single envelope or a
// JSON array of envelopes.
func (h *ProcessorHandler) Decode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w, http.MethodPost)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		httputil.WriteError(w, http.StatusRequestEntityTooLarge, "body_too_large", err.Error())
		return
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		h.decodeBatch(w, r, trimmed)
		return
	}

	res, err := h.processor.Decode(r.Context(), service.SourceHTTP, trimmed)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid_envelope", err.Error())
		return
	}

	serialized, err := pipeline.MarshalResult(res)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "serialization_failed", err.Error())
		return
	}

	httputil.WriteRaw(w, http.StatusOK, serialized)
}

func (h *ProcessorHandler) decodeBatch(w http.ResponseWriter, r *http.Request, body []byte) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	resp := BatchResponse{Records: make([]*pipeline.Result, 0, len(items))}
	for i, item := range items {
		res, err := h.processor.Decode(r.Context(), service.SourceHTTP, item)
		if err != nil {
			resp.Errors = append(resp.Errors, ItemError{Index: i, Message: err.Error()})
			continue
		}
		resp.Records = append(resp.Records, res)
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

// EventType handles GET /api/v1/event-types/{ref}, where ref is a numeric
// id, a canonical name or the UNKNOWN[n] form.
func (h *ProcessorHandler) EventType(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w, http.MethodGet)
		return
	}

	resolver := h.decoder.Resolver()
	id, err := parseEventRef(resolver, r.PathValue("ref"))
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "unknown_event_type", err.Error())
		return
	}

	httputil.WriteJSON(w, http.StatusOK, EventTypeResponse{
		ID:        id,
		Name:      resolver.Name(id),
		Known:     resolver.Known(id),
		Multipart: audit.IsMultipart(id),
	})
}

// FieldType handles GET /api/v1/field-types/{name}. The optional event
// query parameter classifies the name as it would be inside a record of
// that type.
func (h *ProcessorHandler) FieldType(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w, http.MethodGet)
		return
	}

	name := r.PathValue("name")
	classifier := h.decoder.Classifier()
	ft, known := classifier.Classify([]byte(name))
	if ref := r.URL.Query().Get("event"); ref != "" {
		id, err := parseEventRef(h.decoder.Resolver(), ref)
		if err != nil {
			httputil.WriteError(w, http.StatusNotFound, "unknown_event_type", err.Error())
			return
		}
		ft, known = classifier.ClassifyIn(id, []byte(name))
	}
	httputil.WriteJSON(w, http.StatusOK, FieldTypeResponse{Name: name, Type: ft.String(), Known: known})
}

// Health handles GET /healthz.
func (h *ProcessorHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w, http.MethodGet)
		return
	}

	stats := h.processor.Health()
	status := http.StatusOK
	if stats.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	httputil.WriteJSON(w, status, stats)
}

func parseEventRef(resolver *audit.Resolver, ref string) (uint32, error) {
	if n, err := strconv.ParseUint(ref, 10, 32); err == nil {
		return uint32(n), nil
	}
	return resolver.Parse(ref)
}

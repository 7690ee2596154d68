package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telhawk-systems/telhawk-audit/common/logging"
	"github.com/telhawk-systems/telhawk-audit/core/internal/handlers"
	"github.com/telhawk-systems/telhawk-audit/core/internal/pipeline"
	"github.com/telhawk-systems/telhawk-audit/core/internal/server"
	"github.com/telhawk-systems/telhawk-audit/core/internal/service"
	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := logging.NewWithWriter(&bytes.Buffer{}, slog.LevelInfo, "text")
	decoder := audit.NewDecoder(nil, audit.FallbackEncoded)
	processor := service.NewProcessor(pipeline.New(decoder, logger), nil, nil)
	return server.NewRouter(handlers.NewProcessorHandler(processor, decoder), server.Options{MetricsPath: "/metrics", Logger: logger})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestDecode_Single(t *testing.T) {
	h := setupRouter(t)

	rec := do(t, h, http.MethodPost, "/api/v1/decode", `{
		"id": "abc",
		"type_name": "SYSCALL",
		"fields": [
			{"name": "syscall", "value": "59"},
			{"name": "key", "value": "\\x41\\x42"},
			{"name": "items", "value": "12a"}
		]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"id": "abc",
		"type": "SYSCALL",
		"type_id": 1300,
		"fields": [
			{"name": "syscall", "type": "numeric decimal", "kind": "dec", "value": 59},
			{"name": "key", "type": "encoded", "kind": "text", "value": "AB"},
			{"name": "items", "type": "numeric decimal", "kind": "failed", "value": "12a", "error": "invalid syntax"}
		],
		"failures": ["items"],
		"failure_count": 1
	}`, rec.Body.String())
}

func TestDecode_Batch(t *testing.T) {
	h := setupRouter(t)

	rec := do(t, h, http.MethodPost, "/api/v1/decode", `[
		{"type": 1302, "fields": [{"name": "mode", "value": "0100644"}]},
		{"fields": []},
		{"type": 999999, "fields": []}
	]`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Records []struct {
			Type   string `json:"type"`
			Fields []struct {
				Value any `json:"value"`
			} `json:"fields"`
		} `json:"records"`
		Errors []handlers.ItemError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 2)
	assert.Equal(t, "PATH", resp.Records[0].Type)
	assert.Equal(t, "0o100644", resp.Records[0].Fields[0].Value)
	assert.Equal(t, "UNKNOWN[999999]", resp.Records[1].Type)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, 1, resp.Errors[0].Index)
}

func TestDecode_Errors(t *testing.T) {
	h := setupRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/decode", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))

	rec = do(t, h, http.MethodPost, "/api/v1/decode", `{"type":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_envelope")

	rec = do(t, h, http.MethodPost, "/api/v1/decode", `{"type_name": "NOPE"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOPE")
}

func TestEventType(t *testing.T) {
	h := setupRouter(t)

	tests := []struct {
		path string
		want handlers.EventTypeResponse
	}{
		{"/api/v1/event-types/1300", handlers.EventTypeResponse{ID: 1300, Name: "SYSCALL", Known: true, Multipart: true}},
		{"/api/v1/event-types/USER_AUTH", handlers.EventTypeResponse{ID: 1100, Name: "USER_AUTH", Known: true}},
		{"/api/v1/event-types/UNKNOWN%5B42%5D", handlers.EventTypeResponse{ID: 42, Name: "UNKNOWN[42]"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, rec.Code)
			var got handlers.EventTypeResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	rec := do(t, h, http.MethodGet, "/api/v1/event-types/NOT_A_TYPE", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFieldType(t *testing.T) {
	h := setupRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/field-types/mode", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got handlers.FieldTypeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, handlers.FieldTypeResponse{Name: "mode", Type: "numeric octal", Known: true}, got)

	rec = do(t, h, http.MethodGet, "/api/v1/field-types/bogus", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Known)
	assert.Equal(t, "encoded", got.Type)

	rec = do(t, h, http.MethodGet, "/api/v1/field-types/a0?event=SYSCALL", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, handlers.FieldTypeResponse{Name: "a0", Type: "numeric hexadecimal", Known: true}, got)

	rec = do(t, h, http.MethodGet, "/api/v1/field-types/a1_len?event=1309", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "numeric decimal", got.Type)

	rec = do(t, h, http.MethodGet, "/api/v1/field-types/a0?event=NOPE", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	h := setupRouter(t)

	rec := do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats service.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, "ok", stats.Status)

	rec = do(t, h, http.MethodPost, "/healthz", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMetricsRoute(t *testing.T) {
	h := setupRouter(t)
	do(t, h, http.MethodPost, "/api/v1/decode", `{"type": 1300, "fields": [{"name": "pid", "value": "1"}]}`)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "telhawk_audit_records_decoded_total")
}

func TestRequestIDHeader(t *testing.T) {
	h := setupRouter(t)

	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Len(t, rec.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "trace-7")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "trace-7", rec.Header().Get("X-Request-ID"))
}

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		level  slog.Level
		format string
	}{
		{
			name:   "json format with info level",
			level:  slog.LevelInfo,
			format: "json",
		},
		{
			name:   "text format with debug level",
			level:  slog.LevelDebug,
			format: "text",
		},
		{
			name:   "default format (json) with error level",
			level:  slog.LevelError,
			format: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.level, tt.format)
			if logger == nil {
				t.Fatal("expected non-nil logger")
			}
			if logger.Logger == nil {
				t.Fatal("expected non-nil underlying logger")
			}
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelInfo, "text")
	logger.Info("decoded", "records", 3)

	output := buf.String()
	if !strings.Contains(output, "msg=decoded") {
		t.Errorf("expected text output, got: %s", output)
	}
	if !strings.Contains(output, "records=3") {
		t.Errorf("expected records attribute, got: %s", output)
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if logger.Logger == nil {
		t.Fatal("expected non-nil underlying logger")
	}
}

func TestRecordIDContext(t *testing.T) {
	ctx := ContextWithRecordID(context.Background(), "rec-1")
	if got := RecordIDFromContext(ctx); got != "rec-1" {
		t.Errorf("expected rec-1, got %q", got)
	}
	if got := RecordIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty record id, got %q", got)
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger := &Logger{Logger: slog.New(handler)}

	tests := []struct {
		name           string
		ctx            context.Context
		expectRecordID bool
	}{
		{
			name:           "context with record ID",
			ctx:            ContextWithRecordID(context.Background(), "test-rec-123"),
			expectRecordID: true,
		},
		{
			name:           "context without record ID",
			ctx:            context.Background(),
			expectRecordID: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			logger.WithContext(tt.ctx).Info("test message")

			hasID := strings.Contains(buf.String(), `"record_id":"test-rec-123"`)
			if hasID != tt.expectRecordID {
				t.Errorf("record id present = %v, want %v; output: %s", hasID, tt.expectRecordID, buf.String())
			}
		})
	}
}

func TestInfoContext(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger := &Logger{Logger: slog.New(handler)}

	ctx := ContextWithRecordID(context.Background(), "info-test-123")
	logger.InfoContext(ctx, "test info message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test info message") {
		t.Errorf("expected message in output, got: %s", output)
	}
	if !strings.Contains(output, "info-test-123") {
		t.Errorf("expected record ID in output, got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("expected INFO level in output, got: %s", output)
	}
}

func TestLevelsFiltered(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})
	logger := &Logger{Logger: slog.New(handler)}

	ctx := context.Background()
	logger.DebugContext(ctx, "hidden debug")
	logger.InfoContext(ctx, "hidden info")
	logger.WarnContext(ctx, "shown warn")
	logger.ErrorContext(ctx, "shown error")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("expected debug/info to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "shown warn") || !strings.Contains(output, "shown error") {
		t.Errorf("expected warn and error in output, got: %s", output)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger := &Logger{Logger: slog.New(handler)}

	enrichedLogger := logger.With(Service("audit-core"))
	if enrichedLogger == nil {
		t.Fatal("expected non-nil logger from With()")
	}

	enrichedLogger.Info("test message")
	if !strings.Contains(buf.String(), `"service":"audit-core"`) {
		t.Errorf("expected service field in output, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

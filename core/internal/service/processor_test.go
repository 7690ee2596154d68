package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telhawk-systems/telhawk-audit/common/dlq"
	"github.com/telhawk-systems/telhawk-audit/common/logging"
	"github.com/telhawk-systems/telhawk-audit/common/messaging/messagingtest"
	"github.com/telhawk-systems/telhawk-audit/core/internal/pipeline"
	"github.com/telhawk-systems/telhawk-audit/core/internal/service"
	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit"
)

func newProcessor(t *testing.T, queue *dlq.Queue) *service.Processor {
	t.Helper()
	logger := logging.NewWithWriter(&bytes.Buffer{}, slog.LevelInfo, "text")
	pipe := pipeline.New(audit.NewDecoder(nil, audit.FallbackEncoded), logger)
	return service.NewProcessor(pipe, nil, queue)
}

func TestProcessor_Decode(t *testing.T) {
	p := newProcessor(t, nil)
	ctx := context.Background()

	res, err := p.Decode(ctx, service.SourceHTTP, []byte(`{"type":1300,"fields":[{"name":"pid","value":"42"}]}`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.Record.Fields[0].Value.Int)

	_, err = p.Decode(ctx, service.SourceHTTP, []byte(`{"type":1300,"fields":[{"name":"pid","value":"4x"}]}`))
	require.NoError(t, err)

	_, err = p.Decode(ctx, service.SourceHTTP, []byte(`not json`))
	require.Error(t, err)

	_, err = p.Decode(ctx, service.SourceHTTP, []byte(`{"fields":[]}`))
	require.Error(t, err)

	stats := p.Health()
	assert.Equal(t, "ok", stats.Status)
	assert.Equal(t, uint64(2), stats.Processed)
	assert.Equal(t, uint64(2), stats.Rejected)
	assert.Equal(t, uint64(1), stats.WithFailures)
	assert.False(t, stats.Messaging.Enabled)
	assert.False(t, stats.DLQ.Enabled)
}

func TestProcessor_DeadLetter(t *testing.T) {
	queue, err := dlq.NewQueue(t.TempDir(), logging.NewWithWriter(&bytes.Buffer{}, slog.LevelInfo, "text"))
	require.NoError(t, err)
	p := newProcessor(t, queue)

	p.DeadLetter(context.Background(), service.SourceNATS, "audit.raw", []byte("bad"), errors.New("decode envelope"))

	entries, err := queue.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, service.SourceNATS, entries[0].Source)
	assert.Equal(t, 1, p.Health().DLQ.PendingFiles)
}

func TestProcessor_HealthDegradedWhenBrokerDown(t *testing.T) {
	client := messagingtest.NewClient()
	logger := logging.NewWithWriter(&bytes.Buffer{}, slog.LevelInfo, "text")
	p := service.NewProcessor(pipeline.New(audit.NewDecoder(nil, audit.FallbackEncoded), logger), client, nil)

	assert.Equal(t, "ok", p.Health().Status)
	_ = client.Close()
	assert.Equal(t, "degraded", p.Health().Status)
}

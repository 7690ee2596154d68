package dlq

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telhawk-systems/telhawk-audit/common/logging"
)

func newTestQueue(t *testing.T) *Queue {
	t.Helper()
	var buf bytes.Buffer
	q, err := NewQueue(t.TempDir(), logging.NewWithWriter(&buf, slog.LevelDebug, "text"))
	require.NoError(t, err)
	return q
}

func TestQueue_WriteAndList(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	id1, err := q.Write(ctx, "nats", "audit.raw", []byte(`{"type":`), errors.New("unexpected end of JSON input"))
	require.NoError(t, err)
	id2, err := q.Write(ctx, "nats", "audit.raw", []byte{0xff}, errors.New("invalid character"))
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	entries, err := q.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byID := map[string]Entry{}
	for _, e := range entries {
		byID[e.ID] = e
	}
	assert.Equal(t, []byte(`{"type":`), byID[id1].Payload)
	assert.Equal(t, "unexpected end of JSON input", byID[id1].Error)
	assert.Equal(t, "audit.raw", byID[id1].Subject)
	assert.Equal(t, []byte{0xff}, byID[id2].Payload)

	limited, err := q.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	stats := q.Stats()
	assert.True(t, stats.Enabled)
	assert.Equal(t, uint64(2), stats.Written)
	assert.Equal(t, 2, stats.PendingFiles)
}

func TestQueue_Delete(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Write(ctx, "http", "", []byte("x"), errors.New("bad"))
	require.NoError(t, err)

	require.NoError(t, q.Delete(ctx, id))
	assert.ErrorIs(t, q.Delete(ctx, id), ErrNotFound)

	entries, err := q.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestQueue_PurgeIgnoresForeignFiles(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(q.basePath+"/README", []byte("keep"), 0o644))
	for range 3 {
		_, err := q.Write(ctx, "nats", "audit.raw", []byte("x"), errors.New("bad"))
		require.NoError(t, err)
	}

	deleted, err := q.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
	assert.FileExists(t, q.basePath+"/README")
	assert.Equal(t, 0, q.Stats().PendingFiles)
}

func TestQueue_Nil(t *testing.T) {
	var q *Queue
	ctx := context.Background()

	id, err := q.Write(ctx, "nats", "", nil, errors.New("bad"))
	assert.NoError(t, err)
	assert.Empty(t, id)
	assert.False(t, q.Stats().Enabled)

	_, err = q.List(ctx, 0)
	assert.ErrorIs(t, err, ErrDisabled)
	_, err = q.Purge(ctx)
	assert.ErrorIs(t, err, ErrDisabled)
}

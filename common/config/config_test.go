package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUDIT_CONFIG_DIR", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "encoded", cfg.Decoder.UnknownFieldPolicy)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.False(t, cfg.NATS.Enabled)
	assert.Equal(t, "audit.raw", cfg.NATS.RawSubject)
	assert.Equal(t, "audit.decoded", cfg.NATS.DecodedSubject)
	assert.Equal(t, "audit-decoder", cfg.NATS.QueueGroup)
	assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
	assert.Empty(t, cfg.NATS.SigningKey)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.DLQ.Enabled)
	assert.Equal(t, "/var/lib/telhawk-audit/dlq", cfg.DLQ.BasePath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
decoder:
  unknown_field_policy: unknown
server:
  port: 9000
  read_timeout: 5s
nats:
  enabled: true
  url: nats://localhost:4222
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "unknown", cfg.Decoder.UnknownFieldPolicy)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.True(t, cfg.NATS.Enabled)
	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	assert.Equal(t, "debug", cfg.Logging.Level)

	policy, err := cfg.Decoder.Policy()
	require.NoError(t, err)
	assert.Equal(t, audit.FallbackUnknown, policy)
}

func TestLoad_ConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: 7000\n"), 0o644))
	t.Setenv("AUDIT_CONFIG_DIR", dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AUDIT_CONFIG_DIR", t.TempDir())
	t.Setenv("AUDIT_SERVER_PORT", "9100")
	t.Setenv("AUDIT_DECODER_UNKNOWN_FIELD_POLICY", "unknown")
	t.Setenv("AUDIT_NATS_SIGNING_KEY", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "unknown", cfg.Decoder.UnknownFieldPolicy)
	assert.Equal(t, "s3cret", cfg.NATS.SigningKey)
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPolicy(t *testing.T) {
	t.Setenv("AUDIT_CONFIG_DIR", t.TempDir())
	t.Setenv("AUDIT_DECODER_UNKNOWN_FIELD_POLICY", "drop")

	_, err := Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, audit.ErrUnknownPolicy)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Server.Port = 9200
	cfg.Decoder.UnknownFieldPolicy = "unknown"
	cfg.NATS.ReconnectWait = 5 * time.Second
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

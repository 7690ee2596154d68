// Package config provides configuration loading for the audit decoder
// service and CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit"
)

// DefaultConfigDir is used when AUDIT_CONFIG_DIR is not set.
const DefaultConfigDir = "/etc/telhawk-audit"

// Config is the master configuration struct.
type Config struct {
	Decoder DecoderConfig `mapstructure:"decoder" yaml:"decoder"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	NATS    NATSConfig    `mapstructure:"nats" yaml:"nats"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
	DLQ     DLQConfig     `mapstructure:"dlq" yaml:"dlq"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// DecoderConfig holds decoding policy settings
type DecoderConfig struct {
	// UnknownFieldPolicy is "encoded" or "unknown".
	UnknownFieldPolicy string `mapstructure:"unknown_field_policy" yaml:"unknown_field_policy"`
}

// Policy converts UnknownFieldPolicy into an audit.FallbackPolicy.
func (d DecoderConfig) Policy() (audit.FallbackPolicy, error) {
	p, err := audit.ParseFallbackPolicy(d.UnknownFieldPolicy)
	if err != nil {
		return 0, fmt.Errorf("decoder.unknown_field_policy: %w", err)
	}
	return p, nil
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int           `mapstructure:"port" yaml:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
}

// NATSConfig holds NATS relay configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url" yaml:"url"`
	Enabled        bool          `mapstructure:"enabled" yaml:"enabled"`
	MaxReconnects  int           `mapstructure:"max_reconnects" yaml:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait" yaml:"reconnect_wait"`
	RawSubject     string        `mapstructure:"raw_subject" yaml:"raw_subject"`
	DecodedSubject string        `mapstructure:"decoded_subject" yaml:"decoded_subject"`
	QueueGroup     string        `mapstructure:"queue_group" yaml:"queue_group"`
	// SigningKey signs decoded records when non-empty.
	SigningKey string `mapstructure:"signing_key" yaml:"signing_key,omitempty"`
}

// MetricsConfig holds Prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// DLQConfig holds dead-letter queue settings for rejected envelopes
type DLQConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	BasePath string `mapstructure:"base_path" yaml:"base_path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Load reads configuration from path, or from $AUDIT_CONFIG_DIR/config.yaml
// when path is empty, and applies AUDIT_* environment overrides
// (e.g. AUDIT_DECODER_UNKNOWN_FIELD_POLICY). A missing default file is not
// an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	explicit := path != ""
	if !explicit {
		configDir := os.Getenv("AUDIT_CONFIG_DIR")
		if configDir == "" {
			configDir = DefaultConfigDir
		}
		path = filepath.Join(configDir, "config.yaml")
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("AUDIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if explicit || !missing {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Default config file not found - continue with defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if _, err := cfg.Decoder.Policy(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults are static and always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Save writes cfg to path as YAML, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// setDefaults sets all default configuration values
func setDefaults(v *viper.Viper) {
	// Decoder defaults
	v.SetDefault("decoder.unknown_field_policy", "encoded")

	// Server defaults
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")

	// NATS defaults
	v.SetDefault("nats.url", "nats://nats:4222")
	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.max_reconnects", -1)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.raw_subject", "audit.raw")
	v.SetDefault("nats.decoded_subject", "audit.decoded")
	v.SetDefault("nats.queue_group", "audit-decoder")
	v.SetDefault("nats.signing_key", "")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// DLQ defaults
	v.SetDefault("dlq.enabled", false)
	v.SetDefault("dlq.base_path", "/var/lib/telhawk-audit/dlq")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "fridgy",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  5 * time.Second,
			MaxRequestSize:  DefaultMaxRequestSize,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Storage: StorageConfig{
			Backend: "json",
			Path:    "data/inventory.json",
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown environment",
			mutate:  func(c *Config) { c.App.Environment = "staging" },
			wantErr: "app.environment must be one of: local dev qa prod test",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port must be at most 65535",
		},
		{
			name:    "request timeout too short",
			mutate:  func(c *Config) { c.Server.RequestTimeout = time.Millisecond },
			wantErr: "server.request_timeout must be at least",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "log.level must be one of",
		},
		{
			name:   "trace log level",
			mutate: func(c *Config) { c.Log.Level = "trace" },
		},
		{
			name:    "log file without path",
			mutate:  func(c *Config) { c.Log.File = LogFileConfig{Enabled: true} },
			wantErr: "log.file.path is required when Enabled true",
		},
		{
			name:    "telemetry without endpoint",
			mutate:  func(c *Config) { c.Telemetry = TelemetryConfig{Enabled: true, ServiceName: "fridgy"} },
			wantErr: "telemetry.endpoint is required when Enabled true",
		},
		{
			name:    "sampling rate above one",
			mutate:  func(c *Config) { c.Telemetry.SamplingRate = 1.5 },
			wantErr: "telemetry.sampling_rate must be at most 1",
		},
		{
			name:    "unknown storage backend",
			mutate:  func(c *Config) { c.Storage.Backend = "postgres" },
			wantErr: "storage.backend must be one of: json yaml sqlite",
		},
		{
			name:    "missing storage path",
			mutate:  func(c *Config) { c.Storage.Path = "" },
			wantErr: "storage.path is required",
		},
		{
			name:   "sqlite backend",
			mutate: func(c *Config) { c.Storage = StorageConfig{Backend: "sqlite", Path: "data/fridgy.db"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.App.Name = ""
	cfg.Storage.Backend = ""

	err := cfg.Validate()
	require.Error(t, err)

	assert.Contains(t, err.Error(), "config validation failed")
	assert.Contains(t, err.Error(), "app.name is required")
	assert.Contains(t, err.Error(), "storage.backend is required")
}

func TestFormatFieldPath(t *testing.T) {
	tests := []struct {
		namespace string
		want      string
	}{
		{"Config.server.port", "server.port"},
		{"Config.log.file.max_size", "log.file.max_size"},
		{"Config.storage.backend", "storage.backend"},
		{"Config", "config"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFieldPath(tt.namespace))
		})
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:      "postgres://localhost:5432/feedbackhub",
			MaxConns: 25,
			MinConns: 5,
		},
		Stream: StreamConfig{
			DefaultInterval: 3 * time.Second,
			MinInterval:     100 * time.Millisecond,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()
	require.NoError(t, validConfig().Validate())
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"empty dsn", func(c *Config) { c.Database.DSN = "  " }},
		{"min conns above max", func(c *Config) { c.Database.MinConns = 50 }},
		{"zero min interval", func(c *Config) { c.Stream.MinInterval = 0 }},
		{"default below min interval", func(c *Config) { c.Stream.DefaultInterval = time.Millisecond }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"negative complexity", func(c *Config) { c.GraphQL.ComplexityLimit = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost:5432/feedbackhub")
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Stream.DefaultInterval)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Database.MigrateOnStart)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost:5432/feedbackhub")
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	require.Error(t, err)
}

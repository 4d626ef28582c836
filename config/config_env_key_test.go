package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"sqlitePath": "data/pumpdesk.db",
		},
		"auth": map[string]any{
			"internalToken":      "",
			"statusClearRetries": 3,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_SQLITEPATH", want: "storage.sqlitePath"},
		{envKey: "AUTH_INTERNALTOKEN", want: "auth.internalToken"},
		{envKey: "AUTH_STATUSCLEARRETRIES", want: "auth.statusClearRetries"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesFileWithEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  serviceName: pumpdesk
  log:
    level: info
http:
  port: 8080
  timeouts:
    readTimeout: 10s
storage:
  driver: sqlite
auth:
  internalToken: from-file
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))
	t.Chdir(dir)
	t.Setenv("AUTH_INTERNALTOKEN", "from-env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "pumpdesk", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "10s", cfg.HTTP.Timeouts.ReadTimeout.String())
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "from-env", cfg.Auth.InternalToken)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	assert.ErrorContains(t, err, "missing.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, defaultSQLitePath, cfg.Storage.SQLitePath)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "Bearer", cfg.Auth.BearerScheme)
	assert.Equal(t, defaultStatusClearRetries, cfg.Auth.StatusClearRetries)
	assert.Equal(t, defaultMinPasswordLength, cfg.Auth.MinPasswordLength)
	require.NotNil(t, cfg.Metrics)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}
